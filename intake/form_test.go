package intake_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/intake"
)

func fillForm(form *intake.Form) {
	form.Set(intake.FieldGuestName, "John Doe")
	form.Set(intake.FieldEmail, "john@example.com")
	form.Set(intake.FieldPhone, "08123456789")
	form.Set(intake.FieldAddress, "Jl. Sudirman No. 1")
	form.Set(intake.FieldIDCard, "3171234567890001")
	form.Set(intake.FieldRoomNumber, "101")
	form.Set(intake.FieldRoomType, "Deluxe")
	form.Set(intake.FieldCheckIn, "2026-01-01")
	form.Set(intake.FieldCheckOut, "2026-01-04")
	form.Set(intake.FieldPaymentDate, "2026-01-01")
}

func TestForm_DeriveAmount(t *testing.T) {
	tests := []struct {
		name       string
		checkIn    string
		checkOut   string
		wantAmount *int64
	}{
		{
			name:       "three night stay",
			checkIn:    "2026-01-01",
			checkOut:   "2026-01-04",
			wantAmount: int64Ptr(15000),
		},
		{
			name:       "same day stay",
			checkIn:    "2026-01-01",
			checkOut:   "2026-01-01",
			wantAmount: int64Ptr(0),
		},
		{
			name:       "check out before check in clears the amount",
			checkIn:    "2026-01-04",
			checkOut:   "2026-01-01",
			wantAmount: nil,
		},
		{
			name:       "missing check out keeps the amount empty",
			checkIn:    "2026-01-01",
			checkOut:   "",
			wantAmount: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := intake.New(intake.Options{})

			form.Set(intake.FieldCheckIn, tt.checkIn)
			form.Set(intake.FieldCheckOut, tt.checkOut)

			if tt.wantAmount == nil {
				assert.Nil(t, form.Amount())
			} else {
				require.NotNil(t, form.Amount())
				assert.Equal(t, *tt.wantAmount, *form.Amount())
			}
		})
	}
}

func TestForm_AmountRecomputedOnDateChange(t *testing.T) {
	form := intake.New(intake.Options{})

	form.Set(intake.FieldCheckIn, "2026-01-01")
	form.Set(intake.FieldCheckOut, "2026-01-04")
	require.NotNil(t, form.Amount())
	assert.Equal(t, int64(15000), *form.Amount())

	// Inverting the interval clears the derived amount.
	form.Set(intake.FieldCheckOut, "2025-12-31")
	assert.Nil(t, form.Amount())

	form.Set(intake.FieldCheckOut, "2026-01-02")
	require.NotNil(t, form.Amount())
	assert.Equal(t, int64(5000), *form.Amount())
}

func TestForm_SubmitIncomplete(t *testing.T) {
	form := intake.New(intake.Options{})

	form.Set(intake.FieldGuestName, "John Doe")

	err := form.Submit(context.Background())

	assert.Error(t, err)
}

func TestForm_SubmitSuccessResetsForm(t *testing.T) {
	refreshed := false

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/guests", r.URL.Path)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"Guest added successfully!"}`))
	}))
	defer server.Close()

	form := intake.New(intake.Options{
		BaseURL: server.URL,
		OnRefresh: func() {
			refreshed = true
		},
	})

	fillForm(form)

	err := form.Submit(context.Background())

	assert.NoError(t, err)
	assert.True(t, refreshed)
	assert.Equal(t, intake.Fields{}, form.Values())
}

func TestForm_SubmitFailureKeepsFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal server error"}`))
	}))
	defer server.Close()

	form := intake.New(intake.Options{BaseURL: server.URL})

	fillForm(form)

	err := form.Submit(context.Background())

	assert.Error(t, err)
	assert.Equal(t, "John Doe", form.Values().GuestName)
	assert.Equal(t, "2026-01-04", form.Values().CheckOut)
	require.NotNil(t, form.Amount())
	assert.Equal(t, int64(15000), *form.Amount())
}

func int64Ptr(v int64) *int64 {
	return &v
}
