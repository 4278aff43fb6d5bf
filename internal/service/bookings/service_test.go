package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*domain.Booking)}
}

func (r *fakeBookingRepo) GetByReference(_ context.Context, reference string) (*domain.Booking, error) {
	b, ok := r.bookings[reference]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) ListForGuest(_ context.Context, guestID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.GuestID == guestID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) Update(_ context.Context, b *domain.Booking) error {
	if _, ok := r.bookings[b.Reference]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	copied := *b
	r.bookings[b.Reference] = &copied
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, reference string) error {
	if _, ok := r.bookings[reference]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(r.bookings, reference)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedBooking(repo *fakeBookingRepo, reference, guestID string) {
	repo.bookings[reference] = &domain.Booking{
		Reference:      reference,
		GuestID:        guestID,
		FirstName:      "Anna",
		LastName:       "Smith",
		DateOfBirth:    date(1990, 5, 21),
		RoomType:       domain.RoomTypeStandard,
		RoomNumber:     "101",
		NumberOfGuests: 2,
		CheckIn:        date(2026, 9, 10),
		CheckOut:       date(2026, 9, 15),
		CreatedAt:      date(2026, 9, 1),
	}
}

func TestService_GetByReference(t *testing.T) {
	repo := newFakeBookingRepo()
	seedBooking(repo, "ref0000001", "G-001")
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByReference(context.Background(), "ref0000001")
	require.NoError(t, err)
	assert.Equal(t, "ref0000001", resp.Reference)
	assert.Equal(t, "2026-09-10", resp.CheckIn)
	assert.Equal(t, "2026-09-15", resp.CheckOut)

	_, err = svc.GetByReference(context.Background(), "missing")
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetGuestBookings(t *testing.T) {
	repo := newFakeBookingRepo()
	seedBooking(repo, "ref0000001", "G-001")
	seedBooking(repo, "ref0000002", "G-001")
	seedBooking(repo, "ref0000003", "G-002")
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetGuestBookings(context.Background(), "G-001")
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	// Гость без бронирований получает пустой список, а не ошибку
	resp, err = svc.GetGuestBookings(context.Background(), "G-999")
	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)
}

func TestService_Cancel(t *testing.T) {
	repo := newFakeBookingRepo()
	seedBooking(repo, "ref0000001", "G-001")
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), "ref0000001")
	require.NoError(t, err)

	// После отмены бронирование больше не находится
	_, err = svc.GetByReference(context.Background(), "ref0000001")
	require.ErrorIs(t, err, ErrBookingNotFound)

	// Повторная отмена — not found
	err = svc.Cancel(context.Background(), "ref0000001")
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_CheckIn(t *testing.T) {
	repo := newFakeBookingRepo()
	seedBooking(repo, "ref0000001", "G-001")
	svc := NewService(repo, nopLogger{})

	resp, err := svc.CheckIn(context.Background(), "ref0000001")
	require.NoError(t, err)
	assert.True(t, resp.CheckedIn)
	assert.False(t, resp.CheckedOut)

	// Повторный check-in идемпотентен
	resp, err = svc.CheckIn(context.Background(), "ref0000001")
	require.NoError(t, err)
	assert.True(t, resp.CheckedIn)

	_, err = svc.CheckIn(context.Background(), "missing")
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_CheckOut(t *testing.T) {
	repo := newFakeBookingRepo()
	seedBooking(repo, "ref0000001", "G-001")
	svc := NewService(repo, nopLogger{})

	resp, err := svc.CheckOut(context.Background(), "ref0000001")
	require.NoError(t, err)
	assert.True(t, resp.CheckedOut)

	// Флаг check-in не затрагивается
	assert.False(t, resp.CheckedIn)

	_, err = svc.CheckOut(context.Background(), "missing")
	require.ErrorIs(t, err, ErrBookingNotFound)
}
