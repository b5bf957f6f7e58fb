package dto

import (
	"github.com/google/uuid"

	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/guest/model"
	paymentModel "frontdesk/internal/domains/payment/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
)

// RegisterGuestRequest is one intake submission: the guest, the requested
// room, the stay interval and the payment, all from a single form. The form
// additionally collects an id_card field that is never submitted; unknown
// keys in the body are ignored either way.
type RegisterGuestRequest struct {
	GuestName   string `json:"guest_name"   validate:"required,max=100"`
	Email       string `json:"email"        validate:"required,email,max=100"`
	Phone       string `json:"phone"        validate:"required,max=20"`
	Address     string `json:"address"      validate:"required,max=200"`
	RoomNumber  string `json:"room_number"  validate:"required,max=10"`
	RoomType    string `json:"room_type"    validate:"required,max=50"`
	CheckIn     string `json:"check_in"     validate:"required,datetime=2006-01-02"`
	CheckOut    string `json:"check_out"    validate:"required,datetime=2006-01-02"`
	Amount      int64  `json:"amount"       validate:"required,gt=0"`
	PaymentDate string `json:"payment_date" validate:"required,datetime=2006-01-02"`
}

// ToRegistration converts the request into the three rows of one intake. The
// booking and payment reference the freshly generated guest id.
func (r *RegisterGuestRequest) ToRegistration() (model.Registration, error) {
	checkIn, err := timezone.Parse(constant.DateOnlyFormat, r.CheckIn)
	if err != nil {
		return model.Registration{}, err
	}

	checkOut, err := timezone.Parse(constant.DateOnlyFormat, r.CheckOut)
	if err != nil {
		return model.Registration{}, err
	}

	paymentDate, err := timezone.Parse(constant.DateOnlyFormat, r.PaymentDate)
	if err != nil {
		return model.Registration{}, err
	}

	guestID := uuid.NewString()

	return model.Registration{
		Guest: model.Guest{
			ID:      guestID,
			Name:    r.GuestName,
			Email:   r.Email,
			Phone:   r.Phone,
			Address: r.Address,
		},
		RoomNumber: r.RoomNumber,
		RoomType:   r.RoomType,
		Booking: bookingModel.Booking{
			ID:       uuid.NewString(),
			GuestID:  guestID,
			CheckIn:  checkIn,
			CheckOut: checkOut,
		},
		Payment: paymentModel.Payment{
			ID:          uuid.NewString(),
			GuestID:     guestID,
			Amount:      r.Amount,
			PaymentDate: paymentDate,
		},
	}, nil
}

type BookingResponse struct {
	ID       string `json:"id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

type PaymentResponse struct {
	ID          string `json:"id"`
	Amount      int64  `json:"amount"`
	PaymentDate string `json:"payment_date"`
}

type GuestResponse struct {
	ID         string            `json:"id"`
	GuestName  string            `json:"guest_name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Address    string            `json:"address"`
	RoomNumber *string           `json:"room_number"`
	RoomType   *string           `json:"room_type"`
	Bookings   []BookingResponse `json:"bookings"`
	Payments   []PaymentResponse `json:"payments"`
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalData int             `json:"total_data"`
}

// FromRows regroups the fan-out join rows into one record per guest with its
// bookings and payments deduplicated by id. Row order determines guest order.
func (r *GetGuestsResponse) FromRows(rows []model.DetailRow) {
	r.Guests = []GuestResponse{}

	index := map[string]int{}
	seenBookings := map[string]bool{}
	seenPayments := map[string]bool{}

	for _, row := range rows {
		pos, ok := index[row.ID]
		if !ok {
			r.Guests = append(r.Guests, GuestResponse{
				ID:         row.ID,
				GuestName:  row.GuestName,
				Email:      row.Email,
				Phone:      row.Phone,
				Address:    row.Address,
				RoomNumber: row.RoomNumber,
				RoomType:   row.RoomType,
				Bookings:   []BookingResponse{},
				Payments:   []PaymentResponse{},
			})

			pos = len(r.Guests) - 1
			index[row.ID] = pos
		}

		guest := &r.Guests[pos]

		if row.BookingID != nil && !seenBookings[*row.BookingID] {
			seenBookings[*row.BookingID] = true

			guest.Bookings = append(guest.Bookings, BookingResponse{
				ID:       *row.BookingID,
				CheckIn:  timezone.Format(*row.CheckIn, constant.DateOnlyFormat),
				CheckOut: timezone.Format(*row.CheckOut, constant.DateOnlyFormat),
			})
		}

		if row.PaymentID != nil && !seenPayments[*row.PaymentID] {
			seenPayments[*row.PaymentID] = true

			guest.Payments = append(guest.Payments, PaymentResponse{
				ID:          *row.PaymentID,
				Amount:      *row.Amount,
				PaymentDate: timezone.Format(*row.PaymentDate, constant.DateOnlyFormat),
			})
		}
	}

	r.TotalData = len(r.Guests)
}

// GuestRegisteredEvent is published to Kafka after a registration commits.
type GuestRegisteredEvent struct {
	GuestID     string `json:"guest_id"`
	GuestName   string `json:"guest_name"`
	RoomNumber  string `json:"room_number"`
	RoomType    string `json:"room_type"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Amount      int64  `json:"amount"`
	PaymentDate string `json:"payment_date"`
}
