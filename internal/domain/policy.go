package domain

import (
	"fmt"
	"time"
)

// ErrPolicyViolation is the common ancestor of all booking policy errors.
// errors.Is(err, ErrPolicyViolation) matches any rejected rule.
var ErrPolicyViolation = fmt.Errorf("booking policy violation")

var (
	// ErrGuestUnderage the booking guest is younger than AdultAge
	ErrGuestUnderage = fmt.Errorf("%w: guest must be at least 18 years old", ErrPolicyViolation)

	// ErrTooManyGuests the booking exceeds MaxGuests
	ErrTooManyGuests = fmt.Errorf("%w: booking exceeds maximum guest count", ErrPolicyViolation)

	// ErrStayTooLong the stay exceeds MaxNights
	ErrStayTooLong = fmt.Errorf("%w: booking exceeds maximum stay length", ErrPolicyViolation)

	// ErrInsufficientNotice check-in is earlier than MinNoticeHours from now
	ErrInsufficientNotice = fmt.Errorf("%w: bookings require 24h notice", ErrPolicyViolation)

	// ErrRoomUnavailable the room is already booked for an overlapping window
	ErrRoomUnavailable = fmt.Errorf("%w: room already booked for these dates", ErrPolicyViolation)
)

// BookingPolicy is the stateless set of business rules gating booking
// creation. Rules run in a fixed order; the first failure wins.
type BookingPolicy struct{}

// NewBookingPolicy creates a new booking policy
func NewBookingPolicy() *BookingPolicy {
	return &BookingPolicy{}
}

// ValidateNewBooking checks the candidate booking against the policy rules.
// existing must contain the non-cancelled bookings for the candidate's room.
//
// The notice rule compares a date-only check-in against now+24h, so in
// practice it requires check-in to be tomorrow or later. Kept as is to match
// the established behavior.
func (p *BookingPolicy) ValidateNewBooking(guest *Guest, existing []*Booking, candidate *Booking, now time.Time) error {
	if !guest.IsAdult(now) {
		return ErrGuestUnderage
	}

	if candidate.NumberOfGuests > MaxGuests {
		return ErrTooManyGuests
	}

	if candidate.Duration() > MaxNights {
		return ErrStayTooLong
	}

	if candidate.CheckIn.Before(now.Add(MinNoticeHours * time.Hour)) {
		return ErrInsufficientNotice
	}

	for _, b := range existing {
		if b.Overlaps(candidate) {
			return ErrRoomUnavailable
		}
	}

	return nil
}
