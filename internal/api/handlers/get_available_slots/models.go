package get_available_slots

import (
	"github.com/hartvaneindhoven/HVE-BookingService/internal/domain"
	getAvailableSlots "github.com/hartvaneindhoven/HVE-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse один слот в HTTP ответе
type SlotResponse struct {
	Time      string `json:"time"` // "18:30"
	Remaining int    `json:"remaining"`
	Total     int    `json:"total"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ActivityID      int64          `json:"activityId"`
	Date            string         `json:"date"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			Time:      slot.StartTime.String(),
			Remaining: slot.Remaining,
			Total:     slot.Total,
		}
	}

	return &AvailableSlotsResponse{
		ActivityID:      resp.ActivityID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
