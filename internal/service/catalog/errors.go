package catalog

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
