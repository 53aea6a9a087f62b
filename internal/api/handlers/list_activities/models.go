package list_activities

import (
	"github.com/hartvaneindhoven/HVE-BookingService/internal/service/catalog/models"
)

// ActivityResponse одна активность в списке
type ActivityResponse struct {
	ID              int64   `json:"id"`
	Slug            string  `json:"slug"`
	Name            string  `json:"name"`
	Summary         *string `json:"summary,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	ResourceCount   int     `json:"resourceCount"`
	MaxCapacity     int     `json:"maxCapacity"`
}

// ListActivitiesResponse HTTP response model
type ListActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
}

// FromServiceModels конвертирует модели сервиса в HTTP response
func FromServiceModels(infos []*models.ActivityInfo) *ListActivitiesResponse {
	activities := make([]ActivityResponse, len(infos))
	for i, info := range infos {
		activities[i] = ActivityResponse{
			ID:              info.ID,
			Slug:            info.Slug,
			Name:            info.Name,
			Summary:         info.Summary,
			DurationMinutes: info.DurationMinutes,
			ResourceCount:   info.ResourceCount,
			MaxCapacity:     info.MaxCapacity,
		}
	}

	return &ListActivitiesResponse{Activities: activities}
}
