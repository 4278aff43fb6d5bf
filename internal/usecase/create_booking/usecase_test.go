package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	guestRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/guest"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
)

// --- Фейки для тестов ---

type fakeGuestRepo struct {
	guests map[string]*domain.Guest
}

func newFakeGuestRepo() *fakeGuestRepo {
	return &fakeGuestRepo{guests: make(map[string]*domain.Guest)}
}

func (r *fakeGuestRepo) Create(_ context.Context, g *domain.Guest) error {
	r.guests[g.ID] = g
	return nil
}

func (r *fakeGuestRepo) GetByID(_ context.Context, id string) (*domain.Guest, error) {
	g, ok := r.guests[id]
	if !ok {
		return nil, guestRepo.ErrGuestNotFound
	}
	return g, nil
}

type fakeRoomRepo struct {
	rooms map[string]*domain.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[string]*domain.Room)}
}

func (r *fakeRoomRepo) GetByNumber(_ context.Context, number string) (*domain.Room, error) {
	room, ok := r.rooms[number]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) error {
	r.bookings = append(r.bookings, b)
	return nil
}

func (r *fakeBookingRepo) ListForRoom(_ context.Context, roomNumber string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.RoomNumber == roomNumber && !b.Cancelled {
			out = append(out, b)
		}
	}
	return out, nil
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fixedTimeProvider возвращает фиксированное время
type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- Вспомогательные функции ---

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type env struct {
	uc       *UseCase
	guests   *fakeGuestRepo
	rooms    *fakeRoomRepo
	bookings *fakeBookingRepo
}

func newEnv(now time.Time) *env {
	e := &env{
		guests:   newFakeGuestRepo(),
		rooms:    newFakeRoomRepo(),
		bookings: &fakeBookingRepo{},
	}
	e.rooms.rooms["101"] = &domain.Room{Number: "101", Type: domain.RoomTypeStandard}
	e.rooms.rooms["151"] = &domain.Room{Number: "151", Type: domain.RoomTypeDeluxe}

	e.uc = NewUseCase(e.bookings, e.guests, e.rooms, domain.NewBookingPolicy(), &fakeTxManager{}, nopLogger{})
	e.uc.timeProvider = &fixedTimeProvider{now: now}
	return e
}

func validRequest() *Request {
	return &Request{
		GuestID:     "G-001",
		FirstName:   "Anna",
		LastName:    "Smith",
		DateOfBirth: date(1990, 5, 21),
		RoomType:    domain.RoomTypeStandard,
		RoomNumber:  "101",
		Guests:      2,
		CheckIn:     date(2026, 9, 10),
		CheckOut:    date(2026, 9, 15),
	}
}

// --- Тесты ---

func TestUseCase_Execute_Success(t *testing.T) {
	e := newEnv(date(2026, 9, 1))

	resp, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Len(t, resp.Reference, referenceLength)
	assert.Equal(t, "G-001", resp.GuestID)
	assert.Equal(t, "Anna", resp.FirstName)
	assert.Equal(t, domain.RoomTypeStandard, resp.RoomType)
	assert.Equal(t, "101", resp.RoomNumber)
	assert.Equal(t, 2, resp.NumberOfGuests)
	assert.False(t, resp.Paid)
	assert.False(t, resp.Cancelled)

	// Гость создан вместе с бронированием
	guest, err := e.guests.GetByID(context.Background(), "G-001")
	require.NoError(t, err)
	assert.Equal(t, "Smith", guest.LastName)

	require.Len(t, e.bookings.bookings, 1)
}

func TestUseCase_Execute_UniqueReferences(t *testing.T) {
	e := newEnv(date(2026, 9, 1))

	first, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.RoomNumber = "151"
	second.RoomType = domain.RoomTypeDeluxe

	resp, err := e.uc.Execute(context.Background(), second)
	require.NoError(t, err)
	assert.NotEqual(t, first.Reference, resp.Reference)
}

func TestUseCase_Execute_ReusesExistingGuest(t *testing.T) {
	e := newEnv(date(2026, 9, 1))
	e.guests.guests["G-001"] = &domain.Guest{
		ID:          "G-001",
		FirstName:   "Anna",
		LastName:    "Smith",
		DateOfBirth: date(1990, 5, 21),
	}

	_, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Len(t, e.guests.guests, 1)
}

func TestUseCase_Execute_GuestMismatch(t *testing.T) {
	e := newEnv(date(2026, 9, 1))
	e.guests.guests["G-001"] = &domain.Guest{
		ID:          "G-001",
		FirstName:   "Anna",
		LastName:    "Jones", // другая фамилия
		DateOfBirth: date(1990, 5, 21),
	}

	_, err := e.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrGuestMismatch)
	assert.Empty(t, e.bookings.bookings)
}

func TestUseCase_Execute_RoomNotFound(t *testing.T) {
	e := newEnv(date(2026, 9, 1))

	req := validRequest()
	req.RoomNumber = "999"

	_, err := e.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrRoomNotFound)
}

func TestUseCase_Execute_RoomTypeMismatch(t *testing.T) {
	e := newEnv(date(2026, 9, 1))

	req := validRequest()
	req.RoomType = domain.RoomTypeSuite // комната 101 — standard

	_, err := e.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrRoomTypeMismatch)
}

func TestUseCase_Execute_OverlapRejected(t *testing.T) {
	e := newEnv(date(2026, 9, 1))
	e.bookings.bookings = append(e.bookings.bookings, &domain.Booking{
		Reference:  "existing01",
		RoomNumber: "101",
		CheckIn:    date(2026, 9, 12),
		CheckOut:   date(2026, 9, 20),
	})

	_, err := e.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, domain.ErrRoomUnavailable)
	assert.ErrorIs(t, err, domain.ErrPolicyViolation)
	assert.Len(t, e.bookings.bookings, 1)
}

func TestUseCase_Execute_CancelledBookingDoesNotBlock(t *testing.T) {
	e := newEnv(date(2026, 9, 1))
	e.bookings.bookings = append(e.bookings.bookings, &domain.Booking{
		Reference:  "existing01",
		RoomNumber: "101",
		CheckIn:    date(2026, 9, 12),
		CheckOut:   date(2026, 9, 20),
		Cancelled:  true,
	})

	_, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestUseCase_Execute_PolicyViolations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{
			name: "underage guest",
			mutate: func(req *Request) {
				req.DateOfBirth = date(2010, 1, 1)
			},
			wantErr: domain.ErrGuestUnderage,
		},
		{
			name: "too many guests",
			mutate: func(req *Request) {
				req.Guests = 5
			},
			wantErr: domain.ErrTooManyGuests,
		},
		{
			name: "stay too long",
			mutate: func(req *Request) {
				req.CheckOut = date(2026, 10, 11) // 31 ночь
			},
			wantErr: domain.ErrStayTooLong,
		},
		{
			name: "insufficient notice",
			mutate: func(req *Request) {
				req.CheckIn = date(2026, 9, 1)
				req.CheckOut = date(2026, 9, 3)
			},
			wantErr: domain.ErrInsufficientNotice,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newEnv(date(2026, 9, 1))

			req := validRequest()
			tc.mutate(req)

			_, err := e.uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, e.bookings.bookings)
		})
	}
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "missing guest id", mutate: func(req *Request) { req.GuestID = "" }},
		{name: "missing name", mutate: func(req *Request) { req.FirstName = "" }},
		{name: "unknown room type", mutate: func(req *Request) { req.RoomType = "penthouse" }},
		{name: "zero guests", mutate: func(req *Request) { req.Guests = 0 }},
		{name: "checkout before checkin", mutate: func(req *Request) {
			req.CheckIn = date(2026, 9, 15)
			req.CheckOut = date(2026, 9, 10)
		}},
		{name: "checkout equals checkin", mutate: func(req *Request) {
			req.CheckOut = req.CheckIn
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newEnv(date(2026, 9, 1))

			req := validRequest()
			tc.mutate(req)

			_, err := e.uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
