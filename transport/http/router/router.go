package router

import (
	"github.com/go-chi/chi/v5"

	"frontdesk/internal/handlers/guest"
	"frontdesk/internal/handlers/room"
)

type DomainHandlers struct {
	Guest guest.Handler
	Room  room.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
