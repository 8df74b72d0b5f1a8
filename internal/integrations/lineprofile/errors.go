package lineprofile

import "errors"

var (
	// ErrUnauthorized возвращается, когда access token недействителен или истек
	ErrUnauthorized = errors.New("lineprofile client: invalid access token")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("lineprofile client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе LINE
	ErrInvalidResponse = errors.New("lineprofile client: invalid response")
)
