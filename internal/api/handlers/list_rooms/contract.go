package list_rooms

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

// RoomService интерфейс сервиса комнат
type RoomService interface {
	List(ctx context.Context) (*models.RoomListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
