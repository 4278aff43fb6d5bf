package rooms

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

// Service сервис для работы с комнатами
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// List возвращает все комнаты отеля без фильтрации
func (s *Service) List(ctx context.Context) (*models.RoomListResponse, error) {
	s.logger.Info("ListRooms: fetching all rooms")

	rooms, err := s.roomRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListRooms: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListRooms: successfully fetched %d rooms", len(rooms))
	return models.FromDomainRoomList(rooms), nil
}
