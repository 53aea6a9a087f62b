package create_booking

import (
	"time"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/domain"
	pricingModels "github.com/hartvaneindhoven/HVE-BookingService/internal/service/pricing/models"
)

// Request запрос на создание бронирования.
// Ровно одно из полей ResourceID / ActivityID должно быть задано: либо гость
// выбирает конкретную дорожку/комнату, либо сервис подбирает её сам.
type Request struct {
	Email           string
	GuestName       *string
	ResourceID      *int64
	ActivityID      *int64
	StartAt         time.Time // Абсолютный момент начала (UTC)
	DurationMinutes *int      // nil = длительность активности по умолчанию
	Size            int
	AddOnIDs        []int64
}

// Response созданное бронирование вместе с котировкой
type Response struct {
	ID              int64
	Reference       string
	Email           string
	GuestName       *string
	ResourceID      int64
	ResourceName    string
	ActivityID      int64
	ActivityName    string
	StartAt         time.Time
	EndAt           time.Time
	DurationMinutes int
	Size            int
	Status          domain.BookingStatus
	AddOnIDs        []int64
	Quote           *pricingModels.QuoteResponse
	CreatedAt       time.Time
}
