package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/guest/model/dto"
	"frontdesk/internal/domains/guest/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
)

const (
	cacheGetAllGuest = "guest:gets"
)

type Guest interface {
	Register(ctx context.Context, req dto.RegisterGuestRequest) error
	GetAll(ctx context.Context) (dto.GetGuestsResponse, error)
}

type serviceImpl struct {
	repo   repository.Guest
	cfg    *config.Config
	cache  cache.RedisCache
	broker kafka.Client
	otel   otel.Otel
}

func New(repo repository.Guest, cfg *config.Config, cache cache.RedisCache, broker kafka.Client, otel otel.Otel) Guest {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		broker: broker,
		otel:   otel,
	}
}

// Register validates one intake submission and persists its guest, booking
// and payment rows atomically. The submitted amount is revalidated against
// the stay length; a mismatch rejects the whole submission before any write.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterGuestRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	registration, err := req.ToRegistration()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse registration request")

		return failure.BadRequestFromString("invalid date format: dates must be YYYY-MM-DD") // nolint:wrapcheck
	}

	nights := shared.StayNights(registration.Booking.CheckIn, registration.Booking.CheckOut)
	if nights < 0 {
		return failure.BadRequestFromString("check_out must not be before check_in") // nolint:wrapcheck
	}

	if expected := nights * s.cfg.Billing.DailyRate; req.Amount != expected {
		log.Warn().
			Int64("submitted", req.Amount).
			Int64("expected", expected).
			Int64("nights", nights).
			Msg("submitted amount does not match the stay length")

		return failure.BadRequestFromString("amount does not match the stay length") // nolint:wrapcheck
	}

	if err = s.repo.Register(ctx, registration); err != nil {
		log.Error().Err(err).Msg("failed to register guest")

		return failure.InternalServerError // nolint:wrapcheck
	}

	scope.AddEvent("Guest registered: " + registration.Guest.ID)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllGuest)

		s.publishRegistered(c, registration.Guest.ID, req)
	}()

	return nil
}

// publishRegistered emits the guest.registered event. Delivery is best
// effort: the registration is already committed, failures are only logged.
func (s *serviceImpl) publishRegistered(ctx context.Context, guestID string, req dto.RegisterGuestRequest) {
	if !s.cfg.Kafka.Enable {
		return
	}

	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".guest.registered")
	defer scope.End()

	event := dto.GuestRegisteredEvent{
		GuestID:     guestID,
		GuestName:   req.GuestName,
		RoomNumber:  req.RoomNumber,
		RoomType:    req.RoomType,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		Amount:      req.Amount,
		PaymentDate: req.PaymentDate,
	}

	err := s.broker.SendMessages(ctx, s.cfg.Kafka.Topics.GuestRegistered, kafka.Message{
		Key:   guestID,
		Value: event,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("guestID", guestID).Msg("failed to publish guest registered event")
	}
}

// GetAll lists every guest with its bookings and payments regrouped from the
// fan-out join rows.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllGuest)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guests")

		return res, nil
	}

	rows, err := s.repo.GetDetails(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest details")

		return res, failure.InternalServerError // nolint:wrapcheck
	}

	res.FromRows(rows)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guests to cache")
		}
	}()

	return res, nil
}
