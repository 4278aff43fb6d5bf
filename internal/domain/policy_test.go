package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGuest() *Guest {
	return &Guest{
		ID:          "G-001",
		FirstName:   "Anna",
		LastName:    "Smith",
		DateOfBirth: date(1990, 5, 21),
	}
}

func validCandidate() *Booking {
	return &Booking{
		Reference:      "ref0000001",
		GuestID:        "G-001",
		RoomType:       RoomTypeStandard,
		RoomNumber:     "101",
		NumberOfGuests: 2,
		CheckIn:        date(2026, 9, 10),
		CheckOut:       date(2026, 9, 15),
	}
}

func TestBookingPolicy_ValidateNewBooking(t *testing.T) {
	policy := NewBookingPolicy()
	now := date(2026, 9, 1)

	t.Run("valid booking passes", func(t *testing.T) {
		err := policy.ValidateNewBooking(validGuest(), nil, validCandidate(), now)
		require.NoError(t, err)
	})

	t.Run("underage guest rejected", func(t *testing.T) {
		guest := validGuest()
		guest.DateOfBirth = date(2010, 1, 1)

		err := policy.ValidateNewBooking(guest, nil, validCandidate(), now)
		require.ErrorIs(t, err, ErrGuestUnderage)
		assert.ErrorIs(t, err, ErrPolicyViolation)
	})

	t.Run("too many guests rejected", func(t *testing.T) {
		candidate := validCandidate()
		candidate.NumberOfGuests = 5

		err := policy.ValidateNewBooking(validGuest(), nil, candidate, now)
		require.ErrorIs(t, err, ErrTooManyGuests)
	})

	t.Run("four guests allowed", func(t *testing.T) {
		candidate := validCandidate()
		candidate.NumberOfGuests = 4

		err := policy.ValidateNewBooking(validGuest(), nil, candidate, now)
		require.NoError(t, err)
	})

	t.Run("stay longer than thirty nights rejected", func(t *testing.T) {
		candidate := validCandidate()
		candidate.CheckIn = date(2026, 9, 10)
		candidate.CheckOut = date(2026, 10, 11) // 31 nights

		err := policy.ValidateNewBooking(validGuest(), nil, candidate, now)
		require.ErrorIs(t, err, ErrStayTooLong)
	})

	t.Run("exactly thirty nights allowed", func(t *testing.T) {
		candidate := validCandidate()
		candidate.CheckIn = date(2026, 9, 10)
		candidate.CheckOut = date(2026, 10, 10)

		err := policy.ValidateNewBooking(validGuest(), nil, candidate, now)
		require.NoError(t, err)
	})

	t.Run("check-in today rejected for insufficient notice", func(t *testing.T) {
		candidate := validCandidate()
		candidate.CheckIn = date(2026, 9, 1)
		candidate.CheckOut = date(2026, 9, 3)

		err := policy.ValidateNewBooking(validGuest(), nil, candidate, now)
		require.ErrorIs(t, err, ErrInsufficientNotice)
	})

	t.Run("check-in tomorrow rejected when now is past midnight", func(t *testing.T) {
		// Date-only check-in at 00:00 is before now+24h for any now after midnight
		candidate := validCandidate()
		candidate.CheckIn = date(2026, 9, 2)
		candidate.CheckOut = date(2026, 9, 4)

		err := policy.ValidateNewBooking(validGuest(), nil, candidate, date(2026, 9, 1).Add(6*time.Hour))
		require.ErrorIs(t, err, ErrInsufficientNotice)
	})

	t.Run("overlapping booking rejected", func(t *testing.T) {
		existing := []*Booking{
			{RoomNumber: "101", CheckIn: date(2026, 9, 12), CheckOut: date(2026, 9, 20)},
		}

		err := policy.ValidateNewBooking(validGuest(), existing, validCandidate(), now)
		require.ErrorIs(t, err, ErrRoomUnavailable)
	})

	t.Run("back to back bookings allowed", func(t *testing.T) {
		existing := []*Booking{
			{RoomNumber: "101", CheckIn: date(2026, 9, 15), CheckOut: date(2026, 9, 20)},
			{RoomNumber: "101", CheckIn: date(2026, 9, 5), CheckOut: date(2026, 9, 10)},
		}

		err := policy.ValidateNewBooking(validGuest(), existing, validCandidate(), now)
		require.NoError(t, err)
	})

	t.Run("age rule wins over overlap rule", func(t *testing.T) {
		guest := validGuest()
		guest.DateOfBirth = date(2010, 1, 1)
		existing := []*Booking{
			{RoomNumber: "101", CheckIn: date(2026, 9, 12), CheckOut: date(2026, 9, 20)},
		}

		err := policy.ValidateNewBooking(guest, existing, validCandidate(), now)
		require.ErrorIs(t, err, ErrGuestUnderage)
	})
}
