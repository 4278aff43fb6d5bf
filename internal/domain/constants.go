package domain

// Booking policy constants
const (
	// MaxNights maximum stay length in nights
	MaxNights = 30

	// MinNoticeHours minimum lead time between booking creation and check-in
	MinNoticeHours = 24

	// MaxGuests maximum number of guests per booking
	MaxGuests = 4

	// AdultAge minimum age of the booking guest in years
	AdultAge = 18
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
