package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/domain"
	catalogRepo "github.com/hartvaneindhoven/HVE-BookingService/internal/infra/storage/catalog"
	"github.com/hartvaneindhoven/HVE-BookingService/internal/integrations/notifications"
	pricingService "github.com/hartvaneindhoven/HVE-BookingService/internal/service/pricing"
	pricingModels "github.com/hartvaneindhoven/HVE-BookingService/internal/service/pricing/models"
)

// UseCase оркеструет создание бронирования: выбор ресурса, атомарная проверка
// доступности и вставка, расчёт цены, уведомление.
//
// Критическая секция выполняется в SERIALIZABLE транзакции: кандидатные
// бронирования читаются с блокировкой FOR UPDATE, проверка пересечений и
// вставка происходят до коммита. Две конкурирующие заявки на один ресурс и
// время не могут пройти обе.
type UseCase struct {
	catalogRepo CatalogRepository
	bookingRepo BookingRepository
	pricing     PricingService
	txManager   TransactionManager
	publisher   NotificationPublisher
	logger      Logger

	now func() time.Time
}

// NewUseCase создает новый экземпляр usecase создания бронирования
func NewUseCase(
	catalogRepo CatalogRepository,
	bookingRepo BookingRepository,
	pricing PricingService,
	txManager TransactionManager,
	publisher NotificationPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo: catalogRepo,
		bookingRepo: bookingRepo,
		pricing:     pricing,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

// Execute создает бронирование.
//
// До транзакции — только чтения и расчёт котировки: при любой ошибке
// валидации или прайсинга в базе не появляется ни одной записи. Уведомление
// публикуется после коммита и не влияет на результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	if req.StartAt.Before(uc.now()) {
		return nil, ErrDateInPast
	}

	activity, candidates, err := uc.resolveCandidates(ctx, req)
	if err != nil {
		return nil, err
	}

	durationMinutes := activity.SessionMinutes()
	if req.DurationMinutes != nil {
		durationMinutes = *req.DurationMinutes
	}

	quote, err := uc.pricing.ComputeQuote(ctx, &pricingModels.QuoteRequest{
		ActivityID:      activity.ID,
		StartAt:         req.StartAt,
		Size:            req.Size,
		DurationMinutes: &durationMinutes,
		AddOnIDs:        req.AddOnIDs,
	})
	if err != nil {
		if errors.Is(err, pricingService.ErrActivityNotFound) {
			return nil, ErrActivityNotFound
		}
		if errors.Is(err, pricingService.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("CreateBooking: failed to compute quote: %v", err)
		return nil, fmt.Errorf("%w: failed to compute quote: %v", ErrInternal, err)
	}

	booking := &domain.Booking{
		Reference:       uuid.NewString(),
		Email:           req.Email,
		GuestName:       req.GuestName,
		StartAt:         req.StartAt.UTC(),
		DurationMinutes: durationMinutes,
		Size:            req.Size,
		Status:          domain.StatusPending,
	}

	var allocated *domain.Resource

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		resource, err := uc.allocate(txCtx, req, candidates, booking.StartAt, booking.EndAt())
		if err != nil {
			return err
		}
		allocated = resource
		booking.ResourceID = resource.ID

		if _, err := uc.bookingRepo.Create(txCtx, booking); err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		addOnIDs, err := uc.knownAddOnIDs(txCtx, req.AddOnIDs)
		if err != nil {
			return err
		}
		booking.AddOnIDs = addOnIDs

		if err := uc.bookingRepo.CreateAddOns(txCtx, booking.ID, addOnIDs); err != nil {
			return fmt.Errorf("%w: failed to create booking add-ons: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking ref=%s resource=%d start=%s created",
		booking.Reference, booking.ResourceID, booking.StartAt.Format(time.RFC3339))

	uc.notify(ctx, booking, activity, quote)

	return &Response{
		ID:              booking.ID,
		Reference:       booking.Reference,
		Email:           booking.Email,
		GuestName:       booking.GuestName,
		ResourceID:      allocated.ID,
		ResourceName:    allocated.Name,
		ActivityID:      activity.ID,
		ActivityName:    activity.Name,
		StartAt:         booking.StartAt,
		EndAt:           booking.EndAt(),
		DurationMinutes: booking.DurationMinutes,
		Size:            booking.Size,
		Status:          booking.Status,
		AddOnIDs:        booking.AddOnIDs,
		Quote:           quote,
		CreatedAt:       booking.CreatedAt,
	}, nil
}

// resolveCandidates определяет активность и список кандидатных ресурсов.
// Для явного ресурса кандидат один, и вместимость проверяется сразу.
// Для активности кандидаты отсортированы по id — аллокатор детерминирован.
func (uc *UseCase) resolveCandidates(ctx context.Context, req *Request) (*domain.Activity, []*domain.Resource, error) {
	if req.ResourceID != nil {
		resource, err := uc.catalogRepo.GetResourceByID(ctx, *req.ResourceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrResourceNotFound) {
				return nil, nil, ErrResourceNotFound
			}
			uc.logger.Error("CreateBooking: failed to get resource id=%d: %v", *req.ResourceID, err)
			return nil, nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
		}

		if !resource.Fits(req.Size) {
			return nil, nil, ErrCapacityExceeded
		}

		activity, err := uc.catalogRepo.GetActivityByID(ctx, resource.ActivityID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get activity id=%d: %v", resource.ActivityID, err)
			return nil, nil, fmt.Errorf("%w: failed to get activity: %v", ErrInternal, err)
		}

		return activity, []*domain.Resource{resource}, nil
	}

	activity, err := uc.catalogRepo.GetActivityByID(ctx, *req.ActivityID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrActivityNotFound) {
			return nil, nil, ErrActivityNotFound
		}
		uc.logger.Error("CreateBooking: failed to get activity id=%d: %v", *req.ActivityID, err)
		return nil, nil, fmt.Errorf("%w: failed to get activity: %v", ErrInternal, err)
	}

	candidates, err := uc.catalogRepo.ListResourcesByActivity(ctx, activity.ID, &req.Size)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list resources activity=%d: %v", activity.ID, err)
		return nil, nil, fmt.Errorf("%w: failed to list resources: %v", ErrInternal, err)
	}

	if len(candidates) == 0 {
		return nil, nil, ErrNoResourceAvailable
	}

	return activity, candidates, nil
}

// allocate выбирает свободный ресурс под полуинтервал [start, end).
// Вызывается внутри транзакции: чтение кандидатных бронирований блокирует их
// строки до коммита.
//
// Явный ресурс: занят — ErrSlotConflict. Подбор по активности: первый
// свободный в порядке id, все заняты — ErrNoResourceAvailable.
func (uc *UseCase) allocate(ctx context.Context, req *Request, candidates []*domain.Resource, start, end time.Time) (*domain.Resource, error) {
	resourceIDs := make([]int64, 0, len(candidates))
	for _, resource := range candidates {
		resourceIDs = append(resourceIDs, resource.ID)
	}

	bookings, err := uc.bookingRepo.ListForResourcesInRange(ctx, resourceIDs, start, end)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list candidate bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list candidate bookings: %v", ErrInternal, err)
	}

	busy := make(map[int64]bool, len(bookings))
	for _, booking := range bookings {
		if booking.IsActive() && booking.Overlaps(start, end) {
			busy[booking.ResourceID] = true
		}
	}

	for _, resource := range candidates {
		if !busy[resource.ID] {
			return resource, nil
		}
	}

	if req.ResourceID != nil {
		return nil, ErrSlotConflict
	}
	return nil, ErrNoResourceAvailable
}

// knownAddOnIDs сверяет запрошенные дополнения с каталогом: неизвестные ID
// отбрасываются, дубликаты схлопываются, порядок запроса сохраняется.
func (uc *UseCase) knownAddOnIDs(ctx context.Context, addOnIDs []int64) ([]int64, error) {
	if len(addOnIDs) == 0 {
		return []int64{}, nil
	}

	addOns, err := uc.catalogRepo.GetAddOnsByIDs(ctx, addOnIDs)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get add-ons: %v", err)
		return nil, fmt.Errorf("%w: failed to get add-ons: %v", ErrInternal, err)
	}

	known := make(map[int64]bool, len(addOns))
	for _, addOn := range addOns {
		known[addOn.ID] = true
	}

	result := make([]int64, 0, len(addOns))
	seen := make(map[int64]bool, len(addOnIDs))
	for _, id := range addOnIDs {
		if seen[id] || !known[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}

	return result, nil
}

// notify публикует событие booking.created. Ошибка публикации логируется и
// не влияет на результат бронирования.
func (uc *UseCase) notify(ctx context.Context, booking *domain.Booking, activity *domain.Activity, quote *pricingModels.QuoteResponse) {
	addOnLabels := make([]string, 0, len(quote.Items))
	for i, item := range quote.Items {
		if i == 0 {
			continue // первая строка — базовая
		}
		addOnLabels = append(addOnLabels, item.Label)
	}

	event := &notifications.BookingCreatedEvent{
		BookingID:    booking.ID,
		Reference:    booking.Reference,
		ActivityName: activity.Name,
		StartAt:      booking.StartAt,
		EndAt:        booking.EndAt(),
		Size:         booking.Size,
		AddOns:       addOnLabels,
		TotalCents:   quote.TotalCents,
		Recipient:    booking.Email,
	}

	if err := uc.publisher.PublishBookingCreated(ctx, event); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish booking.created ref=%s: %v", booking.Reference, err)
	}
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}

	if (req.ResourceID == nil) == (req.ActivityID == nil) {
		return fmt.Errorf("%w: exactly one of resourceId or activityId must be set", ErrInvalidInput)
	}

	if req.ResourceID != nil && *req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceId must be positive", ErrInvalidInput)
	}

	if req.ActivityID != nil && *req.ActivityID <= 0 {
		return fmt.Errorf("%w: activityId must be positive", ErrInvalidInput)
	}

	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}

	if req.Size < domain.MinPartySize || req.Size > domain.MaxPartySize {
		return fmt.Errorf("%w: size must be between %d and %d",
			ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	if req.DurationMinutes != nil {
		if *req.DurationMinutes < domain.MinDurationMinutes || *req.DurationMinutes > domain.MaxDurationMinutes {
			return fmt.Errorf("%w: durationMinutes must be between %d and %d",
				ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
		}
		if *req.DurationMinutes%domain.DurationStepMinutes != 0 {
			return fmt.Errorf("%w: durationMinutes must be a multiple of %d",
				ErrInvalidInput, domain.DurationStepMinutes)
		}
	}

	return nil
}
