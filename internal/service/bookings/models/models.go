package models

import (
	"time"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/domain"
)

// BookingDetails бронирование, обогащённое названиями ресурса и активности
type BookingDetails struct {
	ID                 int64
	Reference          string
	Email              string
	GuestName          *string
	ResourceID         int64
	ResourceName       string
	ActivityID         int64
	ActivityName       string
	StartAt            time.Time
	EndAt              time.Time
	DurationMinutes    int
	Size               int
	Status             domain.BookingStatus
	AddOnIDs           []int64
	CancellationReason *string
	CancelledAt        *time.Time
	CreatedAt          time.Time
}

// CancelRequest запрос на отмену бронирования
type CancelRequest struct {
	Reference string
	Reason    string
}

// FromDomain собирает детали бронирования из доменных моделей
func FromDomain(booking *domain.Booking, resource *domain.Resource, activity *domain.Activity) *BookingDetails {
	details := &BookingDetails{
		ID:                 booking.ID,
		Reference:          booking.Reference,
		Email:              booking.Email,
		GuestName:          booking.GuestName,
		ResourceID:         booking.ResourceID,
		StartAt:            booking.StartAt,
		EndAt:              booking.EndAt(),
		DurationMinutes:    booking.DurationMinutes,
		Size:               booking.Size,
		Status:             booking.Status,
		AddOnIDs:           booking.AddOnIDs,
		CancellationReason: booking.CancellationReason,
		CancelledAt:        booking.CancelledAt,
		CreatedAt:          booking.CreatedAt,
	}

	if resource != nil {
		details.ResourceName = resource.Name
		details.ActivityID = resource.ActivityID
	}
	if activity != nil {
		details.ActivityName = activity.Name
	}

	return details
}
