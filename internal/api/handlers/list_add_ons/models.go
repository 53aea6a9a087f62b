package list_add_ons

import (
	"github.com/hartvaneindhoven/HVE-BookingService/internal/service/catalog/models"
)

// AddOnResponse одно дополнение в списке
type AddOnResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	PerPerson  bool   `json:"perPerson"`
}

// ListAddOnsResponse HTTP response model
type ListAddOnsResponse struct {
	AddOns []AddOnResponse `json:"addOns"`
}

// FromServiceModels конвертирует модели сервиса в HTTP response
func FromServiceModels(infos []*models.AddOnInfo) *ListAddOnsResponse {
	addOns := make([]AddOnResponse, len(infos))
	for i, info := range infos {
		addOns[i] = AddOnResponse{
			ID:         info.ID,
			Name:       info.Name,
			PriceCents: info.PriceCents,
			PerPerson:  info.PerPerson,
		}
	}

	return &ListAddOnsResponse{AddOns: addOns}
}
