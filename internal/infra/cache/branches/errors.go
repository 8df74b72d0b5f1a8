package branches

import "errors"

var (
	// ErrCacheMiss возвращается, когда списка филиалов нет в кэше
	ErrCacheMiss = errors.New("branches cache: miss")

	// ErrCache возвращается при ошибке Redis или сериализации
	ErrCache = errors.New("branches cache: internal error")
)
