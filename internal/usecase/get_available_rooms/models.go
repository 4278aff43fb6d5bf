package get_available_rooms

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Request модель запроса на проверку доступности комнат
type Request struct {
	Start time.Time // Начало интервала (включительно)
	End   time.Time // Конец интервала (исключительно)
}

// RoomInfo информация о доступной комнате
type RoomInfo struct {
	Number   string
	RoomType domain.RoomType
	Capacity int
	Price    int
}

// Response модель ответа со списком доступных комнат
type Response struct {
	Rooms []RoomInfo
}
