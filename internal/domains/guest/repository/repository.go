package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	bookingRepo "frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/guest/model"
	paymentRepo "frontdesk/internal/domains/payment/repository"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/logger"
	gRepo "frontdesk/shared/repository"
)

// insertGuestQuery resolves the room reference inline: the first room matching
// the requested (number, type) pair, or NULL when none exists. The guest row
// is inserted either way.
const insertGuestQuery = `
	INSERT INTO guests (id, name, email, phone, address, room_id)
	VALUES (:id, :name, :email, :phone, :address,
		(SELECT id FROM rooms WHERE room_number = :room_number AND type = :room_type LIMIT 1))`

// detailsQuery fans out one row per (booking, payment) combination per guest;
// unmatched sides come back NULL. Ordering keeps rows of the same guest
// adjacent for regrouping.
const detailsQuery = `
	SELECT
		guests.id,
		guests.name AS guest_name,
		guests.email,
		guests.phone,
		guests.address,
		rooms.room_number,
		rooms.type AS room_type,
		bookings.id AS booking_id,
		bookings.check_in,
		bookings.check_out,
		payments.id AS payment_id,
		payments.amount,
		payments.payment_date
	FROM guests
	LEFT JOIN rooms ON guests.room_id = rooms.id
	LEFT JOIN bookings ON guests.id = bookings.guest_id
	LEFT JOIN payments ON guests.id = payments.guest_id
	ORDER BY guests.id, bookings.check_in, payments.payment_date`

type Guest interface {
	Register(ctx context.Context, registration model.Registration) error
	GetDetails(ctx context.Context) ([]model.DetailRow, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Guest]
	db       *postgres.Connection
	otel     otel.Otel
	bookings bookingRepo.Booking
	payments paymentRepo.Payment
}

func New(db *postgres.Connection, otel otel.Otel, bookings bookingRepo.Booking, payments paymentRepo.Payment) Guest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Guest](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
		bookings:   bookings,
		payments:   payments,
	}
}

// Register inserts the guest, booking and payment rows of one intake inside a
// single transaction. Either all three rows commit or none do.
func (repo *repositoryImpl) Register(ctx context.Context, registration model.Registration) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin registration transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	scope.SetAttribute(constant.OtelQueryAttributeKey, insertGuestQuery)

	_, err = tx.NamedExecContext(ctx, insertGuestQuery, map[string]any{
		"id":          registration.Guest.ID,
		"name":        registration.Guest.Name,
		"email":       registration.Guest.Email,
		"phone":       registration.Guest.Phone,
		"address":     registration.Guest.Address,
		"room_number": registration.RoomNumber,
		"room_type":   registration.RoomType,
	})
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	if err = repo.bookings.InsertTx(ctx, tx, registration.Booking); err != nil {
		return fmt.Errorf("failed to insert registration booking: %w", err)
	}

	if err = repo.payments.InsertTx(ctx, tx, registration.Payment); err != nil {
		return fmt.Errorf("failed to insert registration payment: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit registration transaction: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) GetDetails(ctx context.Context) ([]model.DetailRow, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.GetDetails")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, detailsQuery)

	var rows []model.DetailRow

	err := repo.db.Read.SelectContext(ctx, &rows, detailsQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rows, fmt.Errorf("failed to get guest details (%s): %w", model.EntityName, err)
	}

	return rows, nil
}
