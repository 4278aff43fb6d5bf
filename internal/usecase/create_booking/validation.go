package create_booking

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.GuestID == "" {
		return fmt.Errorf("%w: guestID is required", ErrInvalidInput)
	}

	if req.FirstName == "" || req.LastName == "" {
		return fmt.Errorf("%w: guest name is required", ErrInvalidInput)
	}

	if req.DateOfBirth.IsZero() {
		return fmt.Errorf("%w: dateOfBirth is required", ErrInvalidInput)
	}

	if !req.RoomType.IsValid() {
		return fmt.Errorf("%w: unknown room type", ErrInvalidInput)
	}

	if req.RoomNumber == "" {
		return fmt.Errorf("%w: roomNumber is required", ErrInvalidInput)
	}

	if req.Guests <= 0 {
		return fmt.Errorf("%w: numberOfGuests must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	// Выезд строго позже заезда, иначе длительность не имеет смысла
	if !req.CheckOut.After(req.CheckIn) {
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidInput)
	}

	return nil
}

// sameDate проверяет, что две даты относятся к одному и тому же дню
func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
