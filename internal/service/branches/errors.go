package branches

import "errors"

var (
	// ErrUpstream возвращается, когда бэкенд не отдал список филиалов
	ErrUpstream = errors.New("branches service: failed to load branches")
)
