package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// CreateGuestRequest запрос на регистрацию гостя
type CreateGuestRequest struct {
	ID          string
	FirstName   string
	LastName    string
	DateOfBirth time.Time
}

// GuestResponse ответ с данными гостя
type GuestResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"` // "1990-05-21"
}

// FromDomainGuest конвертирует domain модель в DTO
func FromDomainGuest(g *domain.Guest) *GuestResponse {
	if g == nil {
		return nil
	}

	return &GuestResponse{
		ID:          g.ID,
		FirstName:   g.FirstName,
		LastName:    g.LastName,
		DateOfBirth: g.DateOfBirth.Format(domain.DateFormat),
	}
}
