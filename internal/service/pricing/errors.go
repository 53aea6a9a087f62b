package pricing

import "errors"

var (
	// ErrActivityNotFound возвращается, когда активность не найдена
	ErrActivityNotFound = errors.New("pricing: activity not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("pricing: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("pricing: internal error")
)
