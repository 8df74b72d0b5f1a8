package restaurantapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// unwrap единственная точка разбора формы ответа
// Принимает как голый массив/объект, так и {"success": ..., "data": ...}
func unwrap(body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}

	// Голый массив или скаляр возвращаем как есть
	if trimmed[0] != '{' {
		return trimmed, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, fmt.Errorf("%w: failed to decode body: %v", ErrInvalidResponse, err)
	}

	if rawSuccess, ok := fields["success"]; ok {
		var success bool
		if err := json.Unmarshal(rawSuccess, &success); err == nil && !success {
			var failure ErrorResponse
			_ = json.Unmarshal(trimmed, &failure)
			return nil, fmt.Errorf("%w: %s", ErrUnsuccessful, failure.Text())
		}
	}

	if data, ok := fields["data"]; ok {
		return data, nil
	}

	// Объект без data - это сам ресурс
	return trimmed, nil
}

// decodeList разбирает тело ответа в список
// null трактуется как пустой список, объект или скаляр - как ErrInvalidShape
func decodeList[T any](body []byte) ([]T, error) {
	raw, err := unwrap(body)
	if err != nil {
		return nil, err
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []T{}, nil
	}
	if raw[0] != '[' {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidShape, describe(raw))
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: failed to decode list: %v", ErrInvalidResponse, err)
	}
	return items, nil
}

// decodeObject разбирает тело ответа в объект
// Пустое тело возвращает nil без ошибки
func decodeObject[T any](body []byte) (*T, error) {
	raw, err := unwrap(body)
	if err != nil {
		return nil, err
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	if raw[0] != '{' {
		return nil, fmt.Errorf("%w: expected object, got %s", ErrInvalidResponse, describe(raw))
	}

	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("%w: failed to decode object: %v", ErrInvalidResponse, err)
	}
	return &item, nil
}

func describe(raw []byte) string {
	switch raw[0] {
	case '{':
		return "object"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	default:
		return "scalar"
	}
}
