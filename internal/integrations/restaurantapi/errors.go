package restaurantapi

import "errors"

var (
	// ErrNotFound возвращается, когда запрошенный ресурс не найден (404)
	ErrNotFound = errors.New("restaurantapi client: resource not found")

	// ErrInternal возвращается при внутренних ошибках клиента (построение запроса, транспорт)
	ErrInternal = errors.New("restaurantapi client: internal error")

	// ErrUnexpectedStatus возвращается при не-2xx ответе бэкенда
	ErrUnexpectedStatus = errors.New("restaurantapi client: unexpected status code")

	// ErrUnsuccessful возвращается, когда бэкенд ответил {"success": false}
	ErrUnsuccessful = errors.New("restaurantapi client: backend reported failure")

	// ErrInvalidResponse возвращается, когда тело ответа не декодируется
	ErrInvalidResponse = errors.New("restaurantapi client: invalid response")

	// ErrInvalidShape возвращается, когда вместо списка пришло что-то другое
	ErrInvalidShape = errors.New("restaurantapi client: response is not a list")
)
