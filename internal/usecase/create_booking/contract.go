package create_booking

import (
	"context"
	"time"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/domain"
	"github.com/hartvaneindhoven/HVE-BookingService/internal/integrations/notifications"
	pricingModels "github.com/hartvaneindhoven/HVE-BookingService/internal/service/pricing/models"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetActivityByID(ctx context.Context, id int64) (*domain.Activity, error)
	GetResourceByID(ctx context.Context, id int64) (*domain.Resource, error)
	ListResourcesByActivity(ctx context.Context, activityID int64, minCapacity *int) ([]*domain.Resource, error)
	GetAddOnsByIDs(ctx context.Context, ids []int64) ([]*domain.AddOn, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	CreateAddOns(ctx context.Context, bookingID int64, addOnIDs []int64) error
	ListForResourcesInRange(ctx context.Context, resourceIDs []int64, from, to time.Time) ([]*domain.Booking, error)
}

// PricingService интерфейс сервиса расчёта цен
type PricingService interface {
	ComputeQuote(ctx context.Context, req *pricingModels.QuoteRequest) (*pricingModels.QuoteResponse, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// NotificationPublisher интерфейс публикации событий о бронированиях
type NotificationPublisher interface {
	PublishBookingCreated(ctx context.Context, event *notifications.BookingCreatedEvent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
