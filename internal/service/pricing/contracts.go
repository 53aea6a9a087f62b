package pricing

import (
	"context"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetActivityByID(ctx context.Context, id int64) (*domain.Activity, error)
	GetAddOnsByIDs(ctx context.Context, ids []int64) ([]*domain.AddOn, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
