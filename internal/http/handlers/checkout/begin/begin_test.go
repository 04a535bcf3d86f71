package begin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/monicarachel101026-prog/Nailora/internal/models"
	"github.com/monicarachel101026-prog/Nailora/internal/services/booking"
	"github.com/monicarachel101026-prog/Nailora/internal/services/checkout"
)

// Мок сервиса оплаты
type CheckoutServiceMock struct {
	mock.Mock
}

func (m *CheckoutServiceMock) BeginBooking(ctx context.Context, details models.BookingDetails) *checkout.Checkout {
	args := m.Called(ctx, details)
	return args.Get(0).(*checkout.Checkout)
}

func (m *CheckoutServiceMock) BeginSubscription(ctx context.Context, plan, method string) *checkout.Checkout {
	args := m.Called(ctx, plan, method)
	return args.Get(0).(*checkout.Checkout)
}

// Мок сервиса записи
type BookingServiceMock struct {
	mock.Mock
}

func (m *BookingServiceMock) Current(ctx context.Context) (*models.BookingDetails, error) {
	args := m.Called(ctx)
	details, _ := args.Get(0).(*models.BookingDetails)
	return details, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestBeginHandler_ServeHTTP(t *testing.T) {
	logger := newNoopLogger()

	t.Run("booking checkout snapshots current booking", func(t *testing.T) {
		serviceMock := new(CheckoutServiceMock)
		bookingsMock := new(BookingServiceMock)
		handler := New(logger, serviceMock, bookingsMock)

		details := &models.BookingDetails{ArtistName: "Sari Nails", ArtistPrice: "150K-300K"}
		bookingsMock.On("Current", mock.Anything).Return(details, nil).Once()
		serviceMock.On("BeginBooking", mock.Anything, *details).
			Return(&checkout.Checkout{ID: "c1", Kind: checkout.KindBooking, State: checkout.StateCheckout}).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout",
			bytes.NewReader([]byte(`{"kind":"booking"}`)))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Status string `json:"status"`
			Data   struct {
				Checkout checkout.Checkout `json:"checkout"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "OK", resp.Status)
		assert.Equal(t, "c1", resp.Data.Checkout.ID)
		assert.Equal(t, checkout.StateCheckout, resp.Data.Checkout.State)
		serviceMock.AssertExpectations(t)
		bookingsMock.AssertExpectations(t)
	})

	t.Run("booking checkout without booking is a conflict", func(t *testing.T) {
		serviceMock := new(CheckoutServiceMock)
		bookingsMock := new(BookingServiceMock)
		handler := New(logger, serviceMock, bookingsMock)

		bookingsMock.On("Current", mock.Anything).Return(nil, booking.ErrNoBooking).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout",
			bytes.NewReader([]byte(`{"kind":"booking"}`)))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		serviceMock.AssertNotCalled(t, "BeginBooking", mock.Anything, mock.Anything)
	})

	t.Run("booking read failure is an internal error", func(t *testing.T) {
		serviceMock := new(CheckoutServiceMock)
		bookingsMock := new(BookingServiceMock)
		handler := New(logger, serviceMock, bookingsMock)

		bookingsMock.On("Current", mock.Anything).Return(nil, errors.New("storage error")).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout",
			bytes.NewReader([]byte(`{"kind":"booking"}`)))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		serviceMock.AssertNotCalled(t, "BeginBooking", mock.Anything, mock.Anything)
	})

	t.Run("subscription checkout carries plan and method", func(t *testing.T) {
		serviceMock := new(CheckoutServiceMock)
		bookingsMock := new(BookingServiceMock)
		handler := New(logger, serviceMock, bookingsMock)

		serviceMock.On("BeginSubscription", mock.Anything, "monthly", "gopay").
			Return(&checkout.Checkout{ID: "c2", Kind: checkout.KindSubscription, State: checkout.StateCheckout}).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout",
			bytes.NewReader([]byte(`{"kind":"subscription","plan":"monthly","method":"gopay"}`)))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		serviceMock.AssertExpectations(t)
	})

	t.Run("subscription checkout requires a plan", func(t *testing.T) {
		serviceMock := new(CheckoutServiceMock)
		bookingsMock := new(BookingServiceMock)
		handler := New(logger, serviceMock, bookingsMock)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout",
			bytes.NewReader([]byte(`{"kind":"subscription"}`)))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		serviceMock.AssertNotCalled(t, "BeginSubscription", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown kind is rejected by validation", func(t *testing.T) {
		serviceMock := new(CheckoutServiceMock)
		bookingsMock := new(BookingServiceMock)
		handler := New(logger, serviceMock, bookingsMock)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout",
			bytes.NewReader([]byte(`{"kind":"gift-card"}`)))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}
