package get_available_slots

import (
	"context"
	"time"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetActivityByID(ctx context.Context, id int64) (*domain.Activity, error)
	ListResourcesByActivity(ctx context.Context, activityID int64, minCapacity *int) ([]*domain.Resource, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListForResourcesInRange(ctx context.Context, resourceIDs []int64, from, to time.Time) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
