package compute_quote

import (
	"fmt"
	"time"

	pricingModels "github.com/hartvaneindhoven/HVE-BookingService/internal/service/pricing/models"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	ActivityID      int64   `json:"activityId"`
	StartAt         string  `json:"startAt"` // RFC3339
	Size            int     `json:"size"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	AddOnIDs        []int64 `json:"addOnIds,omitempty"`
}

// QuoteItemResponse строка котировки
type QuoteItemResponse struct {
	Label string `json:"label"`
	Cents int64  `json:"cents"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	ActivityID      int64               `json:"activityId"`
	ActivityName    string              `json:"activityName"`
	StartAt         string              `json:"startAt"`
	Size            int                 `json:"size"`
	DurationMinutes int                 `json:"durationMinutes"`
	Peak            bool                `json:"peak"`
	BaseCents       int64               `json:"baseCents"`
	AddOnsCents     int64               `json:"addOnsCents"`
	TotalCents      int64               `json:"totalCents"`
	Items           []QuoteItemResponse `json:"items"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *QuoteRequest) ToServiceRequest() (*pricingModels.QuoteRequest, error) {
	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return nil, fmt.Errorf("parse startAt: %w", err)
	}

	return &pricingModels.QuoteRequest{
		ActivityID:      r.ActivityID,
		StartAt:         startAt,
		Size:            r.Size,
		DurationMinutes: r.DurationMinutes,
		AddOnIDs:        r.AddOnIDs,
	}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *pricingModels.QuoteResponse) *QuoteResponse {
	items := make([]QuoteItemResponse, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = QuoteItemResponse{Label: item.Label, Cents: item.Cents}
	}

	return &QuoteResponse{
		ActivityID:      resp.ActivityID,
		ActivityName:    resp.ActivityName,
		StartAt:         resp.StartAt.Format(time.RFC3339),
		Size:            resp.Size,
		DurationMinutes: resp.DurationMinutes,
		Peak:            resp.Peak,
		BaseCents:       resp.BaseCents,
		AddOnsCents:     resp.AddOnsCents,
		TotalCents:      resp.TotalCents,
		Items:           items,
	}
}
