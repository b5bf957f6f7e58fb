package model

import (
	"time"

	bookingModel "frontdesk/internal/domains/booking/model"
	paymentModel "frontdesk/internal/domains/payment/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID      = "id"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldAddress = "address"
	FieldRoomID  = "room_id"
)

// Guest is a person registered for a stay. RoomID is nil when the requested
// room number and type matched no existing room at intake time.
type Guest struct {
	ID      string  `db:"id"`
	Name    string  `db:"name"`
	Email   string  `db:"email"`
	Phone   string  `db:"phone"`
	Address string  `db:"address"`
	RoomID  *string `db:"room_id"`
}

// Registration bundles the three rows produced by one intake submission. The
// room reference is carried as the requested (number, type) pair and resolved
// against the rooms table at insert time.
type Registration struct {
	Guest      Guest
	RoomNumber string
	RoomType   string
	Booking    bookingModel.Booking
	Payment    paymentModel.Payment
}

// DetailRow is one row of the guest listing join. A guest with several
// bookings or payments fans out into one row per combination; sides without a
// match come back as nil.
type DetailRow struct {
	ID          string     `db:"id"`
	GuestName   string     `db:"guest_name"`
	Email       string     `db:"email"`
	Phone       string     `db:"phone"`
	Address     string     `db:"address"`
	RoomNumber  *string    `db:"room_number"`
	RoomType    *string    `db:"room_type"`
	BookingID   *string    `db:"booking_id"`
	CheckIn     *time.Time `db:"check_in"`
	CheckOut    *time.Time `db:"check_out"`
	PaymentID   *string    `db:"payment_id"`
	Amount      *int64     `db:"amount"`
	PaymentDate *time.Time `db:"payment_date"`
}
