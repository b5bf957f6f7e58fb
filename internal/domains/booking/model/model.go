package model

import (
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID       = "id"
	FieldGuestID  = "guest_id"
	FieldCheckIn  = "check_in"
	FieldCheckOut = "check_out"
)

// Booking is a stay interval tied to one guest. Bookings are written once at
// intake and never updated.
type Booking struct {
	ID       string    `db:"id"`
	GuestID  string    `db:"guest_id"`
	CheckIn  time.Time `db:"check_in"`
	CheckOut time.Time `db:"check_out"`
}
