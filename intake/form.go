// Package intake implements the front-desk registration form: an explicit
// form-state object whose amount field is derived from the stay interval and
// which submits the whole intake as a single request.
package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
)

const (
	defaultBaseURL   = "http://localhost:5000"
	defaultDailyRate = 5000

	registerPath = "/api/guests"
)

// Field names accepted by Set.
const (
	FieldGuestName   = "guest_name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldAddress     = "address"
	FieldIDCard      = "id_card"
	FieldRoomNumber  = "room_number"
	FieldRoomType    = "room_type"
	FieldCheckIn     = "check_in"
	FieldCheckOut    = "check_out"
	FieldPaymentDate = "payment_date"
)

// Fields is the state of one registration form. Amount is derived, never set
// directly: it is nil until both stay dates parse and the interval is not
// negative. IDCard is collected at the desk but never submitted.
type Fields struct {
	GuestName   string `json:"guest_name"   validate:"required"`
	Email       string `json:"email"        validate:"required,email"`
	Phone       string `json:"phone"        validate:"required"`
	Address     string `json:"address"      validate:"required"`
	IDCard      string `json:"-"`
	RoomNumber  string `json:"room_number"  validate:"required"`
	RoomType    string `json:"room_type"    validate:"required"`
	CheckIn     string `json:"check_in"     validate:"required,datetime=2006-01-02"`
	CheckOut    string `json:"check_out"    validate:"required,datetime=2006-01-02"`
	Amount      *int64 `json:"amount"       validate:"required"`
	PaymentDate string `json:"payment_date" validate:"required,datetime=2006-01-02"`
}

type Options struct {
	BaseURL   string
	DailyRate int64
	Client    *http.Client
	// OnRefresh runs after a successful submission, once the form has been
	// reset.
	OnRefresh func()
}

type Form struct {
	baseURL   string
	dailyRate int64
	client    *http.Client
	onRefresh func()
	fields    Fields
}

func New(opts Options) *Form {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}

	if opts.DailyRate == 0 {
		opts.DailyRate = defaultDailyRate
	}

	if opts.Client == nil {
		opts.Client = http.DefaultClient
	}

	return &Form{
		baseURL:   opts.BaseURL,
		dailyRate: opts.DailyRate,
		client:    opts.Client,
		onRefresh: opts.OnRefresh,
	}
}

// Set updates one field by name. Changing either stay date re-derives the
// amount; unknown field names are ignored.
func (f *Form) Set(field, value string) {
	switch field {
	case FieldGuestName:
		f.fields.GuestName = value
	case FieldEmail:
		f.fields.Email = value
	case FieldPhone:
		f.fields.Phone = value
	case FieldAddress:
		f.fields.Address = value
	case FieldIDCard:
		f.fields.IDCard = value
	case FieldRoomNumber:
		f.fields.RoomNumber = value
	case FieldRoomType:
		f.fields.RoomType = value
	case FieldCheckIn:
		f.fields.CheckIn = value
		f.deriveAmount()
	case FieldCheckOut:
		f.fields.CheckOut = value
		f.deriveAmount()
	case FieldPaymentDate:
		f.fields.PaymentDate = value
	}
}

// Values returns a copy of the current form state.
func (f *Form) Values() Fields {
	return f.fields
}

// Amount returns the derived amount, or nil while the stay dates are
// incomplete or inverted.
func (f *Form) Amount() *int64 {
	return f.fields.Amount
}

// Reset clears every field, including the derived amount.
func (f *Form) Reset() {
	f.fields = Fields{}
}

func (f *Form) deriveAmount() {
	checkIn, errIn := time.Parse(constant.DateOnlyFormat, f.fields.CheckIn)
	checkOut, errOut := time.Parse(constant.DateOnlyFormat, f.fields.CheckOut)

	if errIn != nil || errOut != nil {
		f.fields.Amount = nil

		return
	}

	nights := shared.StayNights(checkIn, checkOut)
	if nights < 0 {
		f.fields.Amount = nil

		return
	}

	amount := nights * f.dailyRate
	f.fields.Amount = &amount
}

// Submit posts the whole intake as one request. On success the form is reset
// and the refresh callback runs; on any failure the entered fields are kept
// so the submission can be corrected and retried.
func (f *Form) Submit(ctx context.Context) error {
	if err := validator.ValidateStruct(&f.fields); err != nil {
		return fmt.Errorf("form is incomplete: %w", err)
	}

	payload, err := json.Marshal(f.fields)
	if err != nil {
		return fmt.Errorf("failed to encode form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+registerPath, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to submit registration: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)

		return fmt.Errorf("registration rejected (%d): %s", resp.StatusCode, string(body))
	}

	f.Reset()

	if f.onRefresh != nil {
		f.onRefresh()
	}

	return nil
}
