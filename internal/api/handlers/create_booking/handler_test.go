package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuebook/booking-engine/internal/api/middleware"
	"github.com/venuebook/booking-engine/internal/domain"
	createBooking "github.com/venuebook/booking-engine/internal/usecase/create_booking"
	"github.com/venuebook/booking-engine/pkg/money"
)

type fakeUseCase struct {
	resp    *createBooking.Response
	err     error
	lastReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"hall_id": 7,
	"start_time": "2099-01-10T10:00:00Z",
	"end_time": "2099-01-10T14:00:00Z",
	"guests": 50,
	"note": "birthday party"
}`

func doRequest(t *testing.T, uc CreateBookingUseCase, body string, withUser bool) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if withUser {
		ctx := context.WithValue(req.Context(), middleware.UserIDKey, int64(42))
		req = req.WithContext(ctx)
	}

	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		BookingID:  555,
		BookingRef: "BK-A1B2C3D4",
		HallID:     7,
		HallName:   "Grand Ballroom",
		Hours:      4,
		GuestCount: 50,
		Status:     string(domain.StatusPending),
		Pricing: domain.PricingResult{
			Base:       money.FromRupees(4000),
			Tax:        money.FromRupees(720),
			ServiceFee: money.FromRupees(300),
			Total:      money.FromRupees(5020),
		},
	}}

	rec := doRequest(t, uc, validBody, true)

	assert.Equal(t, http.StatusCreated, rec.Code)

	// Идентичность пользователя дошла до use case из контекста
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, int64(42), uc.lastReq.UserID)
	assert.Equal(t, int64(7), uc.lastReq.HallID)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "BK-A1B2C3D4", resp.BookingRef)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, int64(502000), resp.Pricing.Total)
	assert.Equal(t, "₹5,020", resp.Pricing.TotalFormatted)
}

func TestHandle_Unauthorized(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, validBody, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_BadBody(t *testing.T) {
	t.Run("not json", func(t *testing.T) {
		rec := doRequest(t, &fakeUseCase{}, `not json`, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown field", func(t *testing.T) {
		rec := doRequest(t, &fakeUseCase{}, `{"hall_id": 7, "surprise": true}`, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad time format", func(t *testing.T) {
		body := `{"hall_id": 7, "start_time": "10:00", "end_time": "14:00", "guests": 50}`
		rec := doRequest(t, &fakeUseCase{}, body, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "slot conflict carries detail verbatim",
			err:        &createBooking.SlotUnavailableError{Detail: "Time slot not available"},
			wantStatus: http.StatusConflict,
			wantDetail: "Time slot not available",
		},
		{
			name:       "invalid interval",
			err:        createBooking.ErrInvalidInterval,
			wantStatus: http.StatusBadRequest,
			wantDetail: msgInvalidInterval,
		},
		{
			name:       "past date",
			err:        createBooking.ErrPastDate,
			wantStatus: http.StatusBadRequest,
			wantDetail: msgPastDate,
		},
		{
			name:       "capacity exceeded",
			err:        createBooking.ErrCapacityExceeded,
			wantStatus: http.StatusBadRequest,
			wantDetail: msgCapacityExceeded,
		},
		{
			name:       "hall not found",
			err:        createBooking.ErrHallNotFound,
			wantStatus: http.StatusNotFound,
			wantDetail: msgHallNotFound,
		},
		{
			name:       "submission in flight",
			err:        createBooking.ErrSubmissionInFlight,
			wantStatus: http.StatusConflict,
			wantDetail: msgInFlight,
		},
		{
			name:       "store unavailable",
			err:        createBooking.ErrNetwork,
			wantStatus: http.StatusBadGateway,
			wantDetail: msgStoreUnavailable,
		},
		{
			name:       "internal error",
			err:        createBooking.ErrInternal,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody, true)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantDetail != "" {
				var errResp struct {
					Detail string `json:"detail"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
				assert.Equal(t, tt.wantDetail, errResp.Detail)
			}
		})
	}
}
