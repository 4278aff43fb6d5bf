package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	Reference      string `json:"reference"`
	GuestID        string `json:"guestId"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	DateOfBirth    string `json:"dateOfBirth"` // "1990-05-21"
	RoomType       string `json:"roomType"`
	RoomNumber     string `json:"roomNumber"`
	NumberOfGuests int    `json:"numberOfGuests"`
	CheckIn        string `json:"checkIn"`  // "2025-10-15"
	CheckOut       string `json:"checkOut"` // "2025-10-18"
	Paid           bool   `json:"paid"`
	Cancelled      bool   `json:"cancelled"`
	CheckedIn      bool   `json:"checkedIn"`
	CheckedOut     bool   `json:"checkedOut"`
	CreatedAt      string `json:"createdAt"` // ISO 8601
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		Reference:      b.Reference,
		GuestID:        b.GuestID,
		FirstName:      b.FirstName,
		LastName:       b.LastName,
		DateOfBirth:    b.DateOfBirth.Format(domain.DateFormat),
		RoomType:       string(b.RoomType),
		RoomNumber:     b.RoomNumber,
		NumberOfGuests: b.NumberOfGuests,
		CheckIn:        b.CheckIn.Format(domain.DateFormat),
		CheckOut:       b.CheckOut.Format(domain.DateFormat),
		Paid:           b.Paid,
		Cancelled:      b.Cancelled,
		CheckedIn:      b.CheckedIn,
		CheckedOut:     b.CheckedOut,
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if bookingResp := FromDomainBooking(b); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
