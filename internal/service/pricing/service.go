package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/domain"
	catalogRepo "github.com/hartvaneindhoven/HVE-BookingService/internal/infra/storage/catalog"
	"github.com/hartvaneindhoven/HVE-BookingService/internal/service/pricing/models"
)

// Service считает котировки: базовая стоимость по часовой ставке активности
// (peak/off-peak) плюс стоимость дополнений. Котировка никогда не
// сохраняется — она всегда пересчитывается из канонических входных данных.
type Service struct {
	catalogRepo CatalogRepository
	rules       map[string]domain.RateRule
	fallback    domain.RateRule
	peak        domain.PeakSchedule
	logger      Logger
}

// NewService создает новый экземпляр сервиса расчёта цен
func NewService(
	catalogRepo CatalogRepository,
	rules []domain.RateRule,
	fallback domain.RateRule,
	peak domain.PeakSchedule,
	logger Logger,
) *Service {
	ruleIndex := make(map[string]domain.RateRule, len(rules))
	for _, rule := range rules {
		ruleIndex[rule.Slug] = rule
	}

	return &Service{
		catalogRepo: catalogRepo,
		rules:       ruleIndex,
		fallback:    fallback,
		peak:        peak,
		logger:      logger,
	}
}

// ComputeQuote рассчитывает котировку. Детерминировано: одинаковые входные
// данные дают одинаковый результат, текущее время не участвует.
//
// Порядок строк — часть контракта: сначала базовая строка, затем дополнения
// в порядке запроса (письма и чеки рендерят список как есть). Неизвестные ID
// дополнений молча игнорируются.
func (s *Service) ComputeQuote(ctx context.Context, req *models.QuoteRequest) (*models.QuoteResponse, error) {
	if err := validateQuoteRequest(req); err != nil {
		s.logger.Warn("ComputeQuote: validation failed: %v", err)
		return nil, err
	}

	activity, err := s.catalogRepo.GetActivityByID(ctx, req.ActivityID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrActivityNotFound) {
			s.logger.Warn("ComputeQuote: activity id=%d not found", req.ActivityID)
			return nil, ErrActivityNotFound
		}
		s.logger.Error("ComputeQuote: failed to get activity id=%d: %v", req.ActivityID, err)
		return nil, fmt.Errorf("%w: failed to get activity: %v", ErrInternal, err)
	}

	durationMinutes := activity.SessionMinutes()
	if req.DurationMinutes != nil {
		durationMinutes = *req.DurationMinutes
	}

	peak := s.peak.IsPeak(req.StartAt)
	rule := s.rateFor(activity.Slug)

	baseCents := baseCostCents(rule, peak, durationMinutes, req.Size)

	items := make([]models.QuoteItem, 0, 1+len(req.AddOnIDs))
	items = append(items, models.QuoteItem{
		Label: baseLabel(activity.Name, rule.PerPerson, req.Size, durationMinutes),
		Cents: baseCents,
	})

	addOns, err := s.resolveAddOns(ctx, req.AddOnIDs)
	if err != nil {
		return nil, err
	}

	var addOnsCents int64
	for _, addOn := range addOns {
		cost := addOn.CostCents(req.Size)
		addOnsCents += cost
		items = append(items, models.QuoteItem{
			Label: addOnLabel(addOn, req.Size),
			Cents: cost,
		})
	}

	return &models.QuoteResponse{
		ActivityID:      activity.ID,
		ActivityName:    activity.Name,
		StartAt:         req.StartAt,
		Size:            req.Size,
		DurationMinutes: durationMinutes,
		Peak:            peak,
		BaseCents:       baseCents,
		AddOnsCents:     addOnsCents,
		TotalCents:      baseCents + addOnsCents,
		Items:           items,
	}, nil
}

// rateFor возвращает тарифное правило для slug активности.
// Активности вне таблицы тарифицируются по запасной ставке, чтобы котировка
// считалась всегда.
func (s *Service) rateFor(slug string) domain.RateRule {
	if rule, ok := s.rules[slug]; ok {
		return rule
	}
	return s.fallback
}

// resolveAddOns загружает дополнения и возвращает их в порядке запроса,
// без дубликатов. Неизвестные ID выпадают из результата.
func (s *Service) resolveAddOns(ctx context.Context, addOnIDs []int64) ([]*domain.AddOn, error) {
	if len(addOnIDs) == 0 {
		return nil, nil
	}

	found, err := s.catalogRepo.GetAddOnsByIDs(ctx, addOnIDs)
	if err != nil {
		s.logger.Error("ComputeQuote: failed to get add-ons: %v", err)
		return nil, fmt.Errorf("%w: failed to get add-ons: %v", ErrInternal, err)
	}

	byID := make(map[int64]*domain.AddOn, len(found))
	for _, addOn := range found {
		byID[addOn.ID] = addOn
	}

	ordered := make([]*domain.AddOn, 0, len(found))
	seen := make(map[int64]bool, len(addOnIDs))
	for _, id := range addOnIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		if addOn, ok := byID[id]; ok {
			ordered = append(ordered, addOn)
		}
	}

	return ordered, nil
}

// baseCostCents считает базовую стоимость в центах.
// Округление: половина вверх, единственный раз — здесь. Стоимость
// дополнений — точное целочисленное умножение без округления.
func baseCostCents(rule domain.RateRule, peak bool, durationMinutes, size int) int64 {
	multiplier := int64(1)
	if rule.PerPerson {
		multiplier = int64(size)
	}

	// hourly * duration/60 * multiplier, с округлением половины вверх
	total := rule.HourlyCents(peak) * int64(durationMinutes) * multiplier
	return (total + 30) / 60
}

func baseLabel(activityName string, perPerson bool, size, durationMinutes int) string {
	if perPerson {
		return fmt.Sprintf("%s x %d (%d min)", activityName, size, durationMinutes)
	}
	return fmt.Sprintf("%s (%d min)", activityName, durationMinutes)
}

func addOnLabel(addOn *domain.AddOn, size int) string {
	if addOn.PerPerson {
		return fmt.Sprintf("%s x %d", addOn.Name, size)
	}
	return addOn.Name
}

// validateQuoteRequest валидирует входные данные запроса
func validateQuoteRequest(req *models.QuoteRequest) error {
	if req.ActivityID <= 0 {
		return fmt.Errorf("%w: activityID must be positive", ErrInvalidInput)
	}

	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}

	if req.Size < domain.MinPartySize || req.Size > domain.MaxPartySize {
		return fmt.Errorf("%w: size must be between %d and %d", ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	if req.DurationMinutes != nil {
		if *req.DurationMinutes < domain.MinDurationMinutes || *req.DurationMinutes > domain.MaxDurationMinutes {
			return fmt.Errorf("%w: durationMinutes must be between %d and %d",
				ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
		}
	}

	return nil
}
