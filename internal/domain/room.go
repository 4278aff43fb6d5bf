package domain

import "fmt"

// RoomType represents the category of a hotel room
type RoomType string

const (
	RoomTypeStandard RoomType = "standard"
	RoomTypeDeluxe   RoomType = "deluxe"
	RoomTypeSuite    RoomType = "suite"
)

// Capacity returns the maximum number of guests the room type can host
func (t RoomType) Capacity() int {
	switch t {
	case RoomTypeStandard:
		return 2
	case RoomTypeDeluxe:
		return 3
	case RoomTypeSuite:
		return 4
	default:
		return 0
	}
}

// Price returns the fixed nightly price of the room type
func (t RoomType) Price() int {
	switch t {
	case RoomTypeStandard:
		return 100
	case RoomTypeDeluxe:
		return 200
	case RoomTypeSuite:
		return 300
	default:
		return 0
	}
}

// IsValid returns true if the value is a known room type
func (t RoomType) IsValid() bool {
	switch t {
	case RoomTypeStandard, RoomTypeDeluxe, RoomTypeSuite:
		return true
	default:
		return false
	}
}

// ParseRoomType converts a string into a RoomType with validation
func ParseRoomType(s string) (RoomType, error) {
	t := RoomType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown room type %q", s)
	}
	return t, nil
}

// Room represents a hotel room. Rooms are created at seed time and
// immutable afterwards.
type Room struct {
	Number string
	Type   RoomType
}
