package guest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/guest/model/dto"
	"frontdesk/internal/domains/guest/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"
)

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.RegisterGuest)
		routerGroup.Get("/", handler.GetGuests)
	})
}

// RegisterGuest handles one intake submission.
// @Summary Register a guest
// @Description Register a guest with its booking and payment in a single submission.
// @Tags Guest
// @Accept json
// @Produce json
// @Param request body dto.RegisterGuestRequest true "Register Guest Request"
// @Success 200 {object} response.Message "Guest added successfully!"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/guests [post]
func (handler *Handler) RegisterGuest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterGuest")
	defer scope.End()

	req := dto.RegisterGuestRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Register(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register guest")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Guest registered successfully")

	response.WithMessage(writer, http.StatusOK, "Guest added successfully!")
}

// GetGuests lists every guest with its bookings and payments.
// @Summary Get all guests
// @Description Retrieve all guests with their bookings and payments grouped per guest.
// @Tags Guest
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetGuestsResponse "List of guests"
// @Failure 500 {object} response.Error
// @Router /api/guests [get]
func (handler *Handler) GetGuests(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuests")
	defer scope.End()

	guests, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guests")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Guests retrieved successfully")

	response.WithJSON(writer, http.StatusOK, guests)
}
