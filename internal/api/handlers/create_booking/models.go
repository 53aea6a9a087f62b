package create_booking

import (
	"fmt"
	"time"

	pricingModels "github.com/hartvaneindhoven/HVE-BookingService/internal/service/pricing/models"
	createBooking "github.com/hartvaneindhoven/HVE-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Email           string  `json:"email"`
	GuestName       *string `json:"guestName,omitempty"`
	ResourceID      *int64  `json:"resourceId,omitempty"`
	ActivityID      *int64  `json:"activityId,omitempty"`
	StartAt         string  `json:"startAt"` // RFC3339, e.g. "2026-09-05T18:00:00Z"
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Size            int     `json:"size"`
	AddOnIDs        []int64 `json:"addOnIds,omitempty"`
}

// QuoteItemResponse строка котировки в HTTP ответе
type QuoteItemResponse struct {
	Label string `json:"label"`
	Cents int64  `json:"cents"`
}

// QuoteResponse котировка в HTTP ответе
type QuoteResponse struct {
	Peak        bool                `json:"peak"`
	BaseCents   int64               `json:"baseCents"`
	AddOnsCents int64               `json:"addOnsCents"`
	TotalCents  int64               `json:"totalCents"`
	Items       []QuoteItemResponse `json:"items"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64          `json:"id"`
	Reference       string         `json:"reference"`
	Email           string         `json:"email"`
	GuestName       *string        `json:"guestName,omitempty"`
	ResourceID      int64          `json:"resourceId"`
	ResourceName    string         `json:"resourceName"`
	ActivityID      int64          `json:"activityId"`
	ActivityName    string         `json:"activityName"`
	StartAt         string         `json:"startAt"`
	EndAt           string         `json:"endAt"`
	DurationMinutes int            `json:"durationMinutes"`
	Size            int            `json:"size"`
	Status          string         `json:"status"`
	AddOnIDs        []int64        `json:"addOnIds"`
	Quote           *QuoteResponse `json:"quote,omitempty"`
	CreatedAt       string         `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return nil, fmt.Errorf("parse startAt: %w", err)
	}

	return &createBooking.Request{
		Email:           r.Email,
		GuestName:       r.GuestName,
		ResourceID:      r.ResourceID,
		ActivityID:      r.ActivityID,
		StartAt:         startAt,
		DurationMinutes: r.DurationMinutes,
		Size:            r.Size,
		AddOnIDs:        r.AddOnIDs,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		Reference:       resp.Reference,
		Email:           resp.Email,
		GuestName:       resp.GuestName,
		ResourceID:      resp.ResourceID,
		ResourceName:    resp.ResourceName,
		ActivityID:      resp.ActivityID,
		ActivityName:    resp.ActivityName,
		StartAt:         resp.StartAt.Format(time.RFC3339),
		EndAt:           resp.EndAt.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		Size:            resp.Size,
		Status:          string(resp.Status),
		AddOnIDs:        resp.AddOnIDs,
		Quote:           fromQuote(resp.Quote),
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}

func fromQuote(quote *pricingModels.QuoteResponse) *QuoteResponse {
	if quote == nil {
		return nil
	}

	items := make([]QuoteItemResponse, len(quote.Items))
	for i, item := range quote.Items {
		items[i] = QuoteItemResponse{Label: item.Label, Cents: item.Cents}
	}

	return &QuoteResponse{
		Peak:        quote.Peak,
		BaseCents:   quote.BaseCents,
		AddOnsCents: quote.AddOnsCents,
		TotalCents:  quote.TotalCents,
		Items:       items,
	}
}
