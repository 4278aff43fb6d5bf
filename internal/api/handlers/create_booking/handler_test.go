package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/domain"
	createBooking "github.com/m04kA/SMC-HotelService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"guestId":        "G-001",
		"firstName":      "Anna",
		"lastName":       "Smith",
		"dateOfBirth":    "1990-05-21",
		"roomType":       "standard",
		"roomNumber":     "101",
		"numberOfGuests": 2,
		"checkIn":        "2026-09-10",
		"checkOut":       "2026-09-15",
	}
}

func doRequest(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		Reference:      "abc1234567",
		GuestID:        "G-001",
		FirstName:      "Anna",
		LastName:       "Smith",
		DateOfBirth:    time.Date(1990, 5, 21, 0, 0, 0, 0, time.UTC),
		RoomType:       domain.RoomTypeStandard,
		RoomNumber:     "101",
		NumberOfGuests: 2,
		CheckIn:        time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:       time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt:      time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, validBody())
	require.Equal(t, http.StatusOK, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "abc1234567", resp.Reference)
	assert.Equal(t, "standard", resp.RoomType)
	assert.Equal(t, "2026-09-10", resp.CheckIn)
	assert.Equal(t, "2026-09-15", resp.CheckOut)
	assert.Equal(t, "2026-09-01T12:00:00Z", resp.CreatedAt)

	// Запрос докатился до use case с разобранными датами
	require.NotNil(t, uc.got)
	assert.Equal(t, domain.RoomTypeStandard, uc.got.RoomType)
	assert.Equal(t, 2, uc.got.Guests)
}

func TestHandler_InvalidBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_InvalidDates(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	body := validBody()
	body["checkIn"] = "10.09.2026"

	rec := doRequest(t, h, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid input", err: createBooking.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "guest mismatch", err: createBooking.ErrGuestMismatch, wantStatus: http.StatusBadRequest},
		{name: "room not found", err: createBooking.ErrRoomNotFound, wantStatus: http.StatusBadRequest},
		{name: "room type mismatch", err: createBooking.ErrRoomTypeMismatch, wantStatus: http.StatusBadRequest},
		{name: "underage guest", err: domain.ErrGuestUnderage, wantStatus: http.StatusBadRequest},
		{name: "too many guests", err: domain.ErrTooManyGuests, wantStatus: http.StatusBadRequest},
		{name: "stay too long", err: domain.ErrStayTooLong, wantStatus: http.StatusBadRequest},
		{name: "insufficient notice", err: domain.ErrInsufficientNotice, wantStatus: http.StatusBadRequest},
		{name: "room unavailable", err: domain.ErrRoomUnavailable, wantStatus: http.StatusBadRequest},
		{name: "internal error", err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tc.err}, nopLogger{})

			rec := doRequest(t, h, validBody())
			require.Equal(t, tc.wantStatus, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantStatus, resp.Code)
			assert.NotEmpty(t, resp.Message)
		})
	}
}
