package guests

import "errors"

var (
	// ErrGuestAlreadyExists возвращается при повторной регистрации гостя с тем же ID
	ErrGuestAlreadyExists = errors.New("guest already exists")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
