package get_available_rooms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

type fakeRoomRepo struct {
	rooms []*domain.Room
}

func (r *fakeRoomRepo) ListAll(_ context.Context) ([]*domain.Room, error) {
	return r.rooms, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (r *fakeBookingRepo) ListBetween(_ context.Context, start, end time.Time) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.CheckIn.Before(end) && b.CheckOut.After(start) {
			out = append(out, b)
		}
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func roomNumbers(resp *Response) []string {
	out := make([]string, 0, len(resp.Rooms))
	for _, r := range resp.Rooms {
		out = append(out, r.Number)
	}
	return out
}

func TestUseCase_Execute(t *testing.T) {
	rooms := &fakeRoomRepo{rooms: []*domain.Room{
		{Number: "101", Type: domain.RoomTypeStandard},
		{Number: "102", Type: domain.RoomTypeStandard},
		{Number: "151", Type: domain.RoomTypeDeluxe},
	}}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		// Пересекает интервал — комната 101 занята
		{Reference: "ref0000001", RoomNumber: "101", CheckIn: date(2026, 9, 12), CheckOut: date(2026, 9, 20)},
		// Отмененное бронирование не блокирует комнату
		{Reference: "ref0000002", RoomNumber: "102", CheckIn: date(2026, 9, 12), CheckOut: date(2026, 9, 20), Cancelled: true},
		// Заканчивается ровно в start — не пересекает
		{Reference: "ref0000003", RoomNumber: "151", CheckIn: date(2026, 9, 1), CheckOut: date(2026, 9, 10)},
	}}

	uc := NewUseCase(rooms, bookings, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Start: date(2026, 9, 10),
		End:   date(2026, 9, 15),
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"102", "151"}, roomNumbers(resp))
}

func TestUseCase_Execute_RoomInfo(t *testing.T) {
	rooms := &fakeRoomRepo{rooms: []*domain.Room{
		{Number: "151", Type: domain.RoomTypeDeluxe},
	}}

	uc := NewUseCase(rooms, &fakeBookingRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Start: date(2026, 9, 10),
		End:   date(2026, 9, 15),
	})
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 1)

	info := resp.Rooms[0]
	assert.Equal(t, "151", info.Number)
	assert.Equal(t, domain.RoomTypeDeluxe, info.RoomType)
	assert.Equal(t, 3, info.Capacity)
	assert.Equal(t, 200, info.Price)
}

func TestUseCase_Execute_InvalidRange(t *testing.T) {
	uc := NewUseCase(&fakeRoomRepo{}, &fakeBookingRepo{}, nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "end before start", req: &Request{Start: date(2026, 9, 15), End: date(2026, 9, 10)}},
		{name: "equal dates", req: &Request{Start: date(2026, 9, 10), End: date(2026, 9, 10)}},
		{name: "zero start", req: &Request{End: date(2026, 9, 10)}},
		{name: "zero end", req: &Request{Start: date(2026, 9, 10)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			require.ErrorIs(t, err, ErrInvalidDateRange)
		})
	}
}
