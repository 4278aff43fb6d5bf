package create_booking

import "errors"

var (
	// ErrGuestMismatch возвращается при попытке переиспользовать ID гостя
	// с другими персональными данными
	ErrGuestMismatch = errors.New("create_booking: guest details mismatch")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomTypeMismatch возвращается, когда тип комнаты не совпадает с запрошенным
	ErrRoomTypeMismatch = errors.New("create_booking: room type mismatch")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
