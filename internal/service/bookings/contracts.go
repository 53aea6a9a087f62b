package bookings

import (
	"context"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64, reason string) error
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetResourceByID(ctx context.Context, id int64) (*domain.Resource, error)
	GetActivityByID(ctx context.Context, id int64) (*domain.Activity, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
