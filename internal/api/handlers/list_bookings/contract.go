package list_bookings

import (
	"context"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	ListByEmail(ctx context.Context, email string) ([]*models.BookingDetails, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
