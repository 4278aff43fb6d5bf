package domain

import "time"

// Booking represents a room reservation in the system
type Booking struct {
	Reference string
	GuestID   string

	// Denormalized guest snapshot for history
	FirstName   string
	LastName    string
	DateOfBirth time.Time

	RoomType       RoomType
	RoomNumber     string
	NumberOfGuests int

	CheckIn  time.Time
	CheckOut time.Time // exclusive

	Paid       bool
	Cancelled  bool
	CheckedIn  bool
	CheckedOut bool

	CreatedAt time.Time
}

// Duration returns the length of the stay in nights
func (b *Booking) Duration() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// Overlaps returns true if two bookings share at least one night under
// half-open [CheckIn, CheckOut) interval semantics. Symmetric.
func (b *Booking) Overlaps(other *Booking) bool {
	return b.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(b.CheckOut)
}
