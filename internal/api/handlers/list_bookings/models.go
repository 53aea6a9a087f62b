package list_bookings

import (
	"time"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/service/bookings/models"
)

// BookingResponse одно бронирование в списке
type BookingResponse struct {
	ID              int64   `json:"id"`
	Reference       string  `json:"reference"`
	ResourceID      int64   `json:"resourceId"`
	ResourceName    string  `json:"resourceName,omitempty"`
	ActivityName    string  `json:"activityName,omitempty"`
	StartAt         string  `json:"startAt"`
	EndAt           string  `json:"endAt"`
	DurationMinutes int     `json:"durationMinutes"`
	Size            int     `json:"size"`
	Status          string  `json:"status"`
	AddOnIDs        []int64 `json:"addOnIds"`
	CreatedAt       string  `json:"createdAt"`
}

// ListBookingsResponse HTTP response model
type ListBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromServiceModels конвертирует модели сервиса в HTTP response
func FromServiceModels(details []*models.BookingDetails) *ListBookingsResponse {
	bookings := make([]BookingResponse, len(details))
	for i, d := range details {
		bookings[i] = BookingResponse{
			ID:              d.ID,
			Reference:       d.Reference,
			ResourceID:      d.ResourceID,
			ResourceName:    d.ResourceName,
			ActivityName:    d.ActivityName,
			StartAt:         d.StartAt.Format(time.RFC3339),
			EndAt:           d.EndAt.Format(time.RFC3339),
			DurationMinutes: d.DurationMinutes,
			Size:            d.Size,
			Status:          string(d.Status),
			AddOnIDs:        d.AddOnIDs,
			CreatedAt:       d.CreatedAt.Format(time.RFC3339),
		}
	}

	return &ListBookingsResponse{Bookings: bookings}
}
