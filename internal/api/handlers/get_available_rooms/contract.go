package get_available_rooms

import (
	"context"

	usecase "github.com/m04kA/SMC-HotelService/internal/usecase/get_available_rooms"
)

// GetAvailableRoomsUseCase интерфейс use case проверки доступности комнат
type GetAvailableRoomsUseCase interface {
	Execute(ctx context.Context, req *usecase.Request) (*usecase.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
