package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrCannotCancel возвращается при попытке отменить уже отменённое бронирование
	ErrCannotCancel = errors.New("bookings: booking cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
