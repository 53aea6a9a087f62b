package cancel_booking

import (
	"time"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Reference          string  `json:"reference"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
}

// FromServiceModel конвертирует модель сервиса в HTTP response
func FromServiceModel(details *models.BookingDetails) *CancelBookingResponse {
	response := &CancelBookingResponse{
		Reference:          details.Reference,
		Status:             string(details.Status),
		CancellationReason: details.CancellationReason,
	}

	if details.CancelledAt != nil {
		cancelledAt := details.CancelledAt.Format(time.RFC3339)
		response.CancelledAt = &cancelledAt
	}

	return response
}
