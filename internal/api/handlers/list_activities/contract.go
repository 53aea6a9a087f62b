package list_activities

import (
	"context"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListActivities(ctx context.Context) ([]*models.ActivityInfo, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
