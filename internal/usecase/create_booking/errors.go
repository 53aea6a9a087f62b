package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrActivityNotFound возвращается, когда активность не найдена
	ErrActivityNotFound = errors.New("create_booking: activity not found")

	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("create_booking: resource not found")

	// ErrCapacityExceeded возвращается, когда группа не помещается на ресурс
	ErrCapacityExceeded = errors.New("create_booking: party size exceeds resource capacity")

	// ErrSlotConflict возвращается, когда запрошенный ресурс занят в это время
	ErrSlotConflict = errors.New("create_booking: requested time conflicts with an existing booking")

	// ErrNoResourceAvailable возвращается, когда все подходящие ресурсы заняты
	ErrNoResourceAvailable = errors.New("create_booking: no resource available for the requested time")

	// ErrDateInPast возвращается при попытке забронировать прошедшее время
	ErrDateInPast = errors.New("create_booking: start time is in the past")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("create_booking: internal error")
)
