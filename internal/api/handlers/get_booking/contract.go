package get_booking

import (
	"context"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetByReference(ctx context.Context, reference string) (*models.BookingDetails, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
