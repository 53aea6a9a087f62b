package cancel_booking

import (
	"context"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	Cancel(ctx context.Context, req *models.CancelRequest) (*models.BookingDetails, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
