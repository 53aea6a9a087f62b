package get_booking

import (
	"time"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 int64   `json:"id"`
	Reference          string  `json:"reference"`
	Email              string  `json:"email"`
	GuestName          *string `json:"guestName,omitempty"`
	ResourceID         int64   `json:"resourceId"`
	ResourceName       string  `json:"resourceName,omitempty"`
	ActivityID         int64   `json:"activityId,omitempty"`
	ActivityName       string  `json:"activityName,omitempty"`
	StartAt            string  `json:"startAt"`
	EndAt              string  `json:"endAt"`
	DurationMinutes    int     `json:"durationMinutes"`
	Size               int     `json:"size"`
	Status             string  `json:"status"`
	AddOnIDs           []int64 `json:"addOnIds"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
}

// FromServiceModel конвертирует модель сервиса в HTTP response
func FromServiceModel(details *models.BookingDetails) *BookingResponse {
	response := &BookingResponse{
		ID:                 details.ID,
		Reference:          details.Reference,
		Email:              details.Email,
		GuestName:          details.GuestName,
		ResourceID:         details.ResourceID,
		ResourceName:       details.ResourceName,
		ActivityID:         details.ActivityID,
		ActivityName:       details.ActivityName,
		StartAt:            details.StartAt.Format(time.RFC3339),
		EndAt:              details.EndAt.Format(time.RFC3339),
		DurationMinutes:    details.DurationMinutes,
		Size:               details.Size,
		Status:             string(details.Status),
		AddOnIDs:           details.AddOnIDs,
		CancellationReason: details.CancellationReason,
		CreatedAt:          details.CreatedAt.Format(time.RFC3339),
	}

	if details.CancelledAt != nil {
		cancelledAt := details.CancelledAt.Format(time.RFC3339)
		response.CancelledAt = &cancelledAt
	}

	return response
}
