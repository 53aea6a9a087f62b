package catalog

import (
	"context"
	"fmt"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/service/catalog/models"
)

// Service отдает справочные данные площадки: активности и дополнения.
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListActivities возвращает все активности со сводкой по ресурсам:
// сколько единиц можно бронировать и какая максимальная вместимость.
func (s *Service) ListActivities(ctx context.Context) ([]*models.ActivityInfo, error) {
	activities, err := s.catalogRepo.ListActivities(ctx)
	if err != nil {
		s.logger.Error("ListActivities: failed to list activities: %v", err)
		return nil, fmt.Errorf("%w: failed to list activities: %v", ErrInternal, err)
	}

	result := make([]*models.ActivityInfo, 0, len(activities))
	for _, activity := range activities {
		info := &models.ActivityInfo{
			ID:              activity.ID,
			Slug:            activity.Slug,
			Name:            activity.Name,
			Summary:         activity.Summary,
			DurationMinutes: activity.SessionMinutes(),
		}

		resources, err := s.catalogRepo.ListResourcesByActivity(ctx, activity.ID, nil)
		if err != nil {
			s.logger.Error("ListActivities: failed to list resources activity=%d: %v", activity.ID, err)
			return nil, fmt.Errorf("%w: failed to list resources: %v", ErrInternal, err)
		}

		info.ResourceCount = len(resources)
		for _, resource := range resources {
			if resource.Capacity > info.MaxCapacity {
				info.MaxCapacity = resource.Capacity
			}
		}

		result = append(result, info)
	}

	return result, nil
}

// ListAddOns возвращает все дополнения каталога
func (s *Service) ListAddOns(ctx context.Context) ([]*models.AddOnInfo, error) {
	addOns, err := s.catalogRepo.ListAddOns(ctx)
	if err != nil {
		s.logger.Error("ListAddOns: failed to list add-ons: %v", err)
		return nil, fmt.Errorf("%w: failed to list add-ons: %v", ErrInternal, err)
	}

	result := make([]*models.AddOnInfo, 0, len(addOns))
	for _, addOn := range addOns {
		result = append(result, &models.AddOnInfo{
			ID:         addOn.ID,
			Name:       addOn.Name,
			PriceCents: addOn.PriceCents,
			PerPerson:  addOn.PerPerson,
		})
	}

	return result, nil
}
