package create_booking

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	createBooking "github.com/m04kA/SMC-HotelService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	GuestID        string `json:"guestId"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	DateOfBirth    string `json:"dateOfBirth"` // "1990-05-21"
	RoomType       string `json:"roomType"`    // "standard" | "deluxe" | "suite"
	RoomNumber     string `json:"roomNumber"`
	NumberOfGuests int    `json:"numberOfGuests"`
	CheckIn        string `json:"checkIn"`  // "2025-10-15"
	CheckOut       string `json:"checkOut"` // "2025-10-18"
	Paid           bool   `json:"paid"`
	Cancelled      bool   `json:"cancelled"`
	CheckedIn      bool   `json:"checkedIn"`
	CheckedOut     bool   `json:"checkedOut"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Reference      string `json:"reference"`
	GuestID        string `json:"guestId"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	DateOfBirth    string `json:"dateOfBirth"`
	RoomType       string `json:"roomType"`
	RoomNumber     string `json:"roomNumber"`
	NumberOfGuests int    `json:"numberOfGuests"`
	CheckIn        string `json:"checkIn"`
	CheckOut       string `json:"checkOut"`
	Paid           bool   `json:"paid"`
	Cancelled      bool   `json:"cancelled"`
	CheckedIn      bool   `json:"checkedIn"`
	CheckedOut     bool   `json:"checkedOut"`
	CreatedAt      string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	dateOfBirth, err := time.Parse(domain.DateFormat, r.DateOfBirth)
	if err != nil {
		return nil, err
	}

	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	roomType, err := domain.ParseRoomType(r.RoomType)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		GuestID:     r.GuestID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		DateOfBirth: dateOfBirth,
		RoomType:    roomType,
		RoomNumber:  r.RoomNumber,
		Guests:      r.NumberOfGuests,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Paid:        r.Paid,
		Cancelled:   r.Cancelled,
		CheckedIn:   r.CheckedIn,
		CheckedOut:  r.CheckedOut,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		Reference:      resp.Reference,
		GuestID:        resp.GuestID,
		FirstName:      resp.FirstName,
		LastName:       resp.LastName,
		DateOfBirth:    resp.DateOfBirth.Format(domain.DateFormat),
		RoomType:       string(resp.RoomType),
		RoomNumber:     resp.RoomNumber,
		NumberOfGuests: resp.NumberOfGuests,
		CheckIn:        resp.CheckIn.Format(domain.DateFormat),
		CheckOut:       resp.CheckOut.Format(domain.DateFormat),
		Paid:           resp.Paid,
		Cancelled:      resp.Cancelled,
		CheckedIn:      resp.CheckedIn,
		CheckedOut:     resp.CheckedOut,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
