package create_guest

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/service/guests/models"
)

// CreateGuestRequest запрос на регистрацию гостя
type CreateGuestRequest struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"` // "1990-05-21"
}

// ToServiceRequest конвертирует API запрос в service запрос
func (r *CreateGuestRequest) ToServiceRequest() (*models.CreateGuestRequest, error) {
	if r.ID == "" {
		return nil, fmt.Errorf("id is required")
	}
	if r.FirstName == "" || r.LastName == "" {
		return nil, fmt.Errorf("firstName and lastName are required")
	}

	dateOfBirth, err := time.Parse(domain.DateFormat, r.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("invalid dateOfBirth %q: %w", r.DateOfBirth, err)
	}

	return &models.CreateGuestRequest{
		ID:          r.ID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		DateOfBirth: dateOfBirth,
	}, nil
}
