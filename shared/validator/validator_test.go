package validator_test

import (
	"strings"
	"testing"

	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
)

type intakeTestStruct struct {
	GuestName string `validate:"required"                     json:"guest_name"`
	Email     string `validate:"required,email"               json:"email"`
	CheckIn   string `validate:"required,datetime=2006-01-02" json:"check_in"`
	Amount    int64  `validate:"required,gt=0"                json:"amount"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *intakeTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &intakeTestStruct{
				GuestName: "Jane Doe",
				Email:     "jane@x.com",
				CheckIn:   "2024-01-01",
				Amount:    15000,
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &intakeTestStruct{
				Email:   "jane@x.com",
				CheckIn: "2024-01-01",
				Amount:  15000,
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &intakeTestStruct{
				GuestName: "Jane Doe",
				Email:     "not-an-email",
				CheckIn:   "2024-01-01",
				Amount:    15000,
			},
			expectError: true,
		},
		{
			name: "malformed date",
			data: &intakeTestStruct{
				GuestName: "Jane Doe",
				Email:     "jane@x.com",
				CheckIn:   "01/01/2024",
				Amount:    15000,
			},
			expectError: true,
		},
		{
			name: "zero amount fails required",
			data: &intakeTestStruct{
				GuestName: "Jane Doe",
				Email:     "jane@x.com",
				CheckIn:   "2024-01-01",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate_DecodesAndValidates(t *testing.T) {
	body := strings.NewReader(`{"guest_name":"Jane Doe","email":"jane@x.com","check_in":"2024-01-01","amount":15000}`)

	data := intakeTestStruct{}
	if err := validator.Validate(body, &data); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if data.GuestName != "Jane Doe" {
		t.Errorf("expected guest name to be decoded, got %q", data.GuestName)
	}
}

func TestValidate_BadJSON(t *testing.T) {
	body := strings.NewReader(`{"guest_name":`)

	data := intakeTestStruct{}
	err := validator.Validate(body, &data)

	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}

	if failure.GetCode(err) != 400 {
		t.Errorf("expected 400 failure code, got %d", failure.GetCode(err))
	}
}

func TestValidate_MissingFieldIs400(t *testing.T) {
	body := strings.NewReader(`{"email":"jane@x.com","check_in":"2024-01-01","amount":15000}`)

	data := intakeTestStruct{}
	err := validator.Validate(body, &data)

	if err == nil {
		t.Fatal("expected validation error for missing guest_name")
	}

	if failure.GetCode(err) != 400 {
		t.Errorf("expected 400 failure code, got %d", failure.GetCode(err))
	}

	if !strings.Contains(err.Error(), "GuestName") {
		t.Errorf("expected message to name the missing field, got %q", err.Error())
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("jane@x.com", "required,email"); err != nil {
		t.Errorf("expected valid email to pass, got: %v", err)
	}

	if err := validator.ValidateVar("", "required"); err == nil {
		t.Error("expected empty required var to fail")
	}
}
