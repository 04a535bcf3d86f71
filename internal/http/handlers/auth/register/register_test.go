package register

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
	"github.com/monicarachel101026-prog/Nailora/internal/services/session"
)

// Мок сессионного сервиса с методом Register
type SessionServiceMock struct {
	mock.Mock
}

func (m *SessionServiceMock) Register(ctx context.Context, req models.DummyRegister) (*models.User, string, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*models.User)
	return user, args.String(1), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRegisterHandler_ServeHTTP(t *testing.T) {
	serviceMock := new(SessionServiceMock)
	logger := newNoopLogger()

	handler := New(logger, serviceMock)

	anaUser := &models.User{ID: "u1", Name: "Ana", Email: "ana@example.com"}

	tests := []struct {
		name           string
		requestBody    interface{}
		mockUser       *models.User
		mockToken      string
		mockErr        error
		callsService   bool
		wantStatusCode int
		wantError      string
		wantStatus     string
	}{
		{
			name: "valid registration",
			requestBody: models.DummyRegister{
				Name:     "Ana",
				Email:    "ana@example.com",
				Password: "password123",
			},
			mockUser:       anaUser,
			mockToken:      "jwt-token",
			callsService:   true,
			wantStatusCode: http.StatusOK,
			wantStatus:     "OK",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
			wantStatus:     "Error",
		},
		{
			name: "validation error - missing password",
			requestBody: models.DummyRegister{
				Name:  "Ana",
				Email: "ana@example.com",
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field Password is a required field",
			wantStatus:     "Error",
		},
		{
			name: "validation error - malformed email",
			requestBody: models.DummyRegister{
				Name:     "Ana",
				Email:    "ana",
				Password: "password123",
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field Email must be a valid email",
			wantStatus:     "Error",
		},
		{
			name: "email already taken",
			requestBody: models.DummyRegister{
				Name:     "Ana",
				Email:    "ana@example.com",
				Password: "password123",
			},
			mockErr:        session.ErrEmailTaken,
			callsService:   true,
			wantStatusCode: http.StatusConflict,
			wantError:      "email already registered",
			wantStatus:     "Error",
		},
		{
			name: "storage failure",
			requestBody: models.DummyRegister{
				Name:     "Ana",
				Email:    "ana@example.com",
				Password: "password123",
			},
			mockErr:        errors.New("storage error"),
			callsService:   true,
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "failed to register user",
			wantStatus:     "Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock.ExpectedCalls = nil
			serviceMock.Calls = nil

			if tt.callsService {
				serviceMock.On("Register", mock.Anything, mock.Anything).
					Return(tt.mockUser, tt.mockToken, tt.mockErr).Once()
			}

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/register", bytes.NewReader(bodyBytes))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var resp struct {
				Status string         `json:"status"`
				Error  string         `json:"error"`
				Data   map[string]any `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantError, resp.Error)
			if tt.wantStatusCode == http.StatusOK {
				assert.Equal(t, "jwt-token", resp.Data["token"])
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
