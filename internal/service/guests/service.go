package guests

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	guestRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/guest"
	"github.com/m04kA/SMC-HotelService/internal/service/guests/models"
)

// Service сервис для работы с гостями
type Service struct {
	guestRepo GuestRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса гостей
func NewService(guestRepo GuestRepository, logger Logger) *Service {
	return &Service{
		guestRepo: guestRepo,
		logger:    logger,
	}
}

// Create регистрирует нового гостя.
// Повторная регистрация существующего ID отклоняется: персональные данные
// гостя после создания неизменяемы.
func (s *Service) Create(ctx context.Context, req *models.CreateGuestRequest) (*models.GuestResponse, error) {
	s.logger.Info("CreateGuest: registering guest id=%s", req.ID)

	_, err := s.guestRepo.GetByID(ctx, req.ID)
	switch {
	case err == nil:
		s.logger.Warn("CreateGuest: guest id=%s already exists", req.ID)
		return nil, ErrGuestAlreadyExists
	case !errors.Is(err, guestRepo.ErrGuestNotFound):
		s.logger.Error("CreateGuest: repository error for id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	guest := &domain.Guest{
		ID:          req.ID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
	}

	if err := s.guestRepo.Create(ctx, guest); err != nil {
		s.logger.Error("CreateGuest: failed to create guest id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateGuest: successfully registered guest id=%s", req.ID)
	return models.FromDomainGuest(guest), nil
}
