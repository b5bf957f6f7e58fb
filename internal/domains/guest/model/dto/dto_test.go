package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/internal/domains/guest/model"
	"frontdesk/internal/domains/guest/model/dto"
)

func TestRegisterGuestRequest_ToRegistration(t *testing.T) {
	req := dto.RegisterGuestRequest{
		GuestName:   "John Doe",
		Email:       "john@example.com",
		Phone:       "08123456789",
		Address:     "Jl. Sudirman No. 1",
		RoomNumber:  "101",
		RoomType:    "Deluxe",
		CheckIn:     "2026-01-01",
		CheckOut:    "2026-01-04",
		Amount:      15000,
		PaymentDate: "2026-01-01",
	}

	registration, err := req.ToRegistration()

	require.NoError(t, err)

	assert.NotEmpty(t, registration.Guest.ID, "expected guest ID to be generated")
	assert.Equal(t, req.GuestName, registration.Guest.Name)
	assert.Equal(t, req.Email, registration.Guest.Email)
	assert.Equal(t, req.Phone, registration.Guest.Phone)
	assert.Equal(t, req.Address, registration.Guest.Address)
	assert.Equal(t, req.RoomNumber, registration.RoomNumber)
	assert.Equal(t, req.RoomType, registration.RoomType)

	assert.NotEmpty(t, registration.Booking.ID, "expected booking ID to be generated")
	assert.Equal(t, registration.Guest.ID, registration.Booking.GuestID)
	assert.Equal(t, "2026-01-01", registration.Booking.CheckIn.Format("2006-01-02"))
	assert.Equal(t, "2026-01-04", registration.Booking.CheckOut.Format("2006-01-02"))

	assert.NotEmpty(t, registration.Payment.ID, "expected payment ID to be generated")
	assert.Equal(t, registration.Guest.ID, registration.Payment.GuestID)
	assert.Equal(t, req.Amount, registration.Payment.Amount)
	assert.Equal(t, "2026-01-01", registration.Payment.PaymentDate.Format("2006-01-02"))
}

func TestRegisterGuestRequest_ToRegistrationInvalidDate(t *testing.T) {
	req := dto.RegisterGuestRequest{
		CheckIn:     "not-a-date",
		CheckOut:    "2026-01-04",
		PaymentDate: "2026-01-01",
	}

	_, err := req.ToRegistration()

	assert.Error(t, err)
}

func TestGetGuestsResponse_FromRows(t *testing.T) {
	roomNumber := "101"
	roomType := "Deluxe"
	bookingOne := "booking-1"
	bookingTwo := "booking-2"
	paymentOne := "payment-1"
	checkIn := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)
	amount := int64(15000)

	base := model.DetailRow{
		ID:          "guest-1",
		GuestName:   "John Doe",
		Email:       "john@example.com",
		Phone:       "08123456789",
		Address:     "Jl. Sudirman No. 1",
		RoomNumber:  &roomNumber,
		RoomType:    &roomType,
		CheckIn:     &checkIn,
		CheckOut:    &checkOut,
		PaymentID:   &paymentOne,
		Amount:      &amount,
		PaymentDate: &checkIn,
	}

	rowOne := base
	rowOne.BookingID = &bookingOne

	rowTwo := base
	rowTwo.BookingID = &bookingTwo

	var res dto.GetGuestsResponse
	res.FromRows([]model.DetailRow{rowOne, rowTwo})

	require.Len(t, res.Guests, 1)
	assert.Equal(t, 1, res.TotalData)

	guest := res.Guests[0]
	assert.Equal(t, "guest-1", guest.ID)
	assert.Equal(t, "John Doe", guest.GuestName)
	require.NotNil(t, guest.RoomNumber)
	assert.Equal(t, "101", *guest.RoomNumber)

	require.Len(t, guest.Bookings, 2)
	assert.Equal(t, "booking-1", guest.Bookings[0].ID)
	assert.Equal(t, "2026-01-01", guest.Bookings[0].CheckIn)
	assert.Equal(t, "2026-01-04", guest.Bookings[0].CheckOut)
	assert.Equal(t, "booking-2", guest.Bookings[1].ID)

	require.Len(t, guest.Payments, 1, "expected the repeated payment to be deduplicated")
	assert.Equal(t, "payment-1", guest.Payments[0].ID)
	assert.Equal(t, int64(15000), guest.Payments[0].Amount)
}

func TestGetGuestsResponse_FromRowsUnassignedGuest(t *testing.T) {
	rows := []model.DetailRow{
		{
			ID:        "guest-1",
			GuestName: "Jane Doe",
			Email:     "jane@example.com",
			Phone:     "08123456780",
			Address:   "Jl. Thamrin No. 2",
		},
	}

	var res dto.GetGuestsResponse
	res.FromRows(rows)

	require.Len(t, res.Guests, 1)

	guest := res.Guests[0]
	assert.Nil(t, guest.RoomNumber)
	assert.Nil(t, guest.RoomType)
	assert.Empty(t, guest.Bookings)
	assert.Empty(t, guest.Payments)
}

func TestGetGuestsResponse_FromRowsEmpty(t *testing.T) {
	var res dto.GetGuestsResponse
	res.FromRows(nil)

	assert.NotNil(t, res.Guests, "expected an empty list, not null")
	assert.Empty(t, res.Guests)
	assert.Zero(t, res.TotalData)
}
