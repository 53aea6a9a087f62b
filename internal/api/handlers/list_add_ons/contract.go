package list_add_ons

import (
	"context"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListAddOns(ctx context.Context) ([]*models.AddOnInfo, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
