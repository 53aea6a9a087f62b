package catalog

import (
	"context"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	ListActivities(ctx context.Context) ([]*domain.Activity, error)
	ListResourcesByActivity(ctx context.Context, activityID int64, minCapacity *int) ([]*domain.Resource, error)
	ListAddOns(ctx context.Context) ([]*domain.AddOn, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
