package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrActivityNotFound возвращается, когда активность не найдена
	ErrActivityNotFound = errors.New("get_available_slots: activity not found")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("get_available_slots: internal error")
)
