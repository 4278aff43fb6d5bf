package domain

import "time"

// Guest represents a registered hotel guest
type Guest struct {
	ID          string
	FirstName   string
	LastName    string
	DateOfBirth time.Time
}

// Age returns the guest's age in whole years as of the given moment,
// accounting for a birthday that has not been reached yet this year
func (g *Guest) Age(now time.Time) int {
	years := now.Year() - g.DateOfBirth.Year()
	if now.Month() < g.DateOfBirth.Month() ||
		(now.Month() == g.DateOfBirth.Month() && now.Day() < g.DateOfBirth.Day()) {
		years--
	}
	return years
}

// IsAdult returns true if the guest is at least AdultAge years old
func (g *Guest) IsAdult(now time.Time) bool {
	return g.Age(now) >= AdultAge
}
