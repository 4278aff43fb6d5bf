package create_booking

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	GuestID     string          // ID гостя
	FirstName   string          // Имя
	LastName    string          // Фамилия
	DateOfBirth time.Time       // Дата рождения (без времени)
	RoomType    domain.RoomType // Запрошенный тип комнаты
	RoomNumber  string          // Номер комнаты
	Guests      int             // Количество гостей
	CheckIn     time.Time       // Дата заезда
	CheckOut    time.Time       // Дата выезда (исключительно)

	// Начальные значения флагов (по умолчанию false)
	Paid       bool
	Cancelled  bool
	CheckedIn  bool
	CheckedOut bool
}

// Response модель ответа с созданным бронированием
type Response struct {
	Reference      string          // Сгенерированный референс бронирования
	GuestID        string          // ID гостя
	FirstName      string          // Имя (снапшот)
	LastName       string          // Фамилия (снапшот)
	DateOfBirth    time.Time       // Дата рождения (снапшот)
	RoomType       domain.RoomType // Тип комнаты
	RoomNumber     string          // Номер комнаты
	NumberOfGuests int             // Количество гостей
	CheckIn        time.Time       // Дата заезда
	CheckOut       time.Time       // Дата выезда
	Paid           bool
	Cancelled      bool
	CheckedIn      bool
	CheckedOut     bool
	CreatedAt      time.Time // Время создания
}

// fromDomainBooking конвертирует domain модель в ответ usecase
func fromDomainBooking(b *domain.Booking) *Response {
	return &Response{
		Reference:      b.Reference,
		GuestID:        b.GuestID,
		FirstName:      b.FirstName,
		LastName:       b.LastName,
		DateOfBirth:    b.DateOfBirth,
		RoomType:       b.RoomType,
		RoomNumber:     b.RoomNumber,
		NumberOfGuests: b.NumberOfGuests,
		CheckIn:        b.CheckIn,
		CheckOut:       b.CheckOut,
		Paid:           b.Paid,
		Cancelled:      b.Cancelled,
		CheckedIn:      b.CheckedIn,
		CheckedOut:     b.CheckedOut,
		CreatedAt:      b.CreatedAt,
	}
}
