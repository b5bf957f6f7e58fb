package model

import (
	"time"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID          = "id"
	FieldGuestID     = "guest_id"
	FieldAmount      = "amount"
	FieldPaymentDate = "payment_date"
)

// Payment is a charge record tied to one guest, written once at intake.
type Payment struct {
	ID          string    `db:"id"`
	GuestID     string    `db:"guest_id"`
	Amount      int64     `db:"amount"`
	PaymentDate time.Time `db:"payment_date"`
}
