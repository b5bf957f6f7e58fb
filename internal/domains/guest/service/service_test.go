package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	guestMocks "frontdesk/internal/domains/guest/mocks"
	"frontdesk/internal/domains/guest/model"
	"frontdesk/internal/domains/guest/model/dto"
	"frontdesk/internal/domains/guest/service"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/failure"
)

func validRequest() dto.RegisterGuestRequest {
	return dto.RegisterGuestRequest{
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
}

func TestGuestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Billing.DailyRate = 5000
	cfg.Kafka.Enable = false

	svc := service.New(mockRepo, cfg, mockCache, nil, mockOtel)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	tests := []struct {
		name      string
		mutate    func(req *dto.RegisterGuestRequest)
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "successful registration",
			mutate: func(req *dto.RegisterGuestRequest) {},
			setupMock: func() {
				mockRepo.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "malformed check in date",
			mutate: func(req *dto.RegisterGuestRequest) {
				req.CheckIn = "01-01-2026"
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "check out before check in",
			mutate: func(req *dto.RegisterGuestRequest) {
				req.CheckIn = "2026-01-04"
				req.CheckOut = "2026-01-01"
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "amount does not match the stay length",
			mutate: func(req *dto.RegisterGuestRequest) {
				req.Amount = 10000
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "repository error",
			mutate: func(req *dto.RegisterGuestRequest) {},
			setupMock: func() {
				mockRepo.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := validRequest()
			tt.mutate(&req)

			err := svc.Register(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGuestService_RegisterZeroNights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Billing.DailyRate = 5000

	svc := service.New(mockRepo, cfg, mockCache, nil, mockOtel)

	// Same-day stay: the expected amount is zero, so any positive submitted
	// amount is a mismatch.
	req := validRequest()
	req.CheckOut = req.CheckIn
	req.Amount = 5000

	err := svc.Register(context.Background(), req)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestGuestService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, nil, mockOtel)

	roomNumber := "101"
	roomType := "Deluxe"
	bookingOne := "booking-1"
	bookingTwo := "booking-2"
	paymentOne := "payment-1"
	checkIn := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)
	amount := int64(15000)

	// Two bookings and one payment fan out into two join rows for the same
	// guest; the payment repeats on both rows.
	rows := []model.DetailRow{
		{
			ID:          "guest-1",
			GuestName:   "John Doe",
			Email:       "john@example.com",
			Phone:       "08123456789",
			Address:     "Jl. Sudirman No. 1",
			RoomNumber:  &roomNumber,
			RoomType:    &roomType,
			BookingID:   &bookingOne,
			CheckIn:     &checkIn,
			CheckOut:    &checkOut,
			PaymentID:   &paymentOne,
			Amount:      &amount,
			PaymentDate: &checkIn,
		},
		{
			ID:          "guest-1",
			GuestName:   "John Doe",
			Email:       "john@example.com",
			Phone:       "08123456789",
			Address:     "Jl. Sudirman No. 1",
			RoomNumber:  &roomNumber,
			RoomType:    &roomType,
			BookingID:   &bookingTwo,
			CheckIn:     &checkIn,
			CheckOut:    &checkOut,
			PaymentID:   &paymentOne,
			Amount:      &amount,
			PaymentDate: &checkIn,
		},
	}

	tests := []struct {
		name         string
		setupMock    func()
		wantErr      bool
		wantGuests   int
		wantBookings int
		wantPayments int
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, rows regrouped per guest",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetDetails(gomock.Any()).
					Return(rows, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:      false,
			wantGuests:   1,
			wantBookings: 2,
			wantPayments: 1,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetDetails(gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetAll(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)

			if tt.wantGuests > 0 {
				assert.Len(t, result.Guests, tt.wantGuests)
				assert.Len(t, result.Guests[0].Bookings, tt.wantBookings)
				assert.Len(t, result.Guests[0].Payments, tt.wantPayments)
				assert.Equal(t, tt.wantGuests, result.TotalData)
			}
		})
	}
}
