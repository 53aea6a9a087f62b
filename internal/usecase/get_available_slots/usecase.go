package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/domain"
	catalogRepo "github.com/hartvaneindhoven/HVE-BookingService/internal/infra/storage/catalog"
)

// UseCase отвечает на вопрос "когда можно прийти": строит сетку кандидатов
// из часов работы и вычитает занятые ресурсы. Ответ консультативный — при
// создании бронирования доступность перепроверяется под блокировкой.
type UseCase struct {
	catalogRepo     CatalogRepository
	bookingRepo     BookingRepository
	schedule        domain.WeekSchedule
	intervalMinutes int
	logger          Logger
}

// NewUseCase создает новый экземпляр usecase получения доступных слотов
func NewUseCase(
	catalogRepo CatalogRepository,
	bookingRepo BookingRepository,
	schedule domain.WeekSchedule,
	intervalMinutes int,
	logger Logger,
) *UseCase {
	if intervalMinutes <= 0 {
		intervalMinutes = domain.DefaultSlotIntervalMinutes
	}

	return &UseCase{
		catalogRepo:     catalogRepo,
		bookingRepo:     bookingRepo,
		schedule:        schedule,
		intervalMinutes: intervalMinutes,
		logger:          logger,
	}
}

// Execute возвращает доступные слоты на день.
//
// Слот попадает в ответ, только если хотя бы один подходящий ресурс свободен
// на весь полуинтервал [start, start+duration) и сессия целиком умещается в
// часы работы. Соседние бронирования, касающиеся концами, не конфликтуют.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	activity, err := uc.catalogRepo.GetActivityByID(ctx, req.ActivityID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrActivityNotFound) {
			uc.logger.Warn("GetAvailableSlots: activity id=%d not found", req.ActivityID)
			return nil, ErrActivityNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get activity id=%d: %v", req.ActivityID, err)
		return nil, fmt.Errorf("%w: failed to get activity: %v", ErrInternal, err)
	}

	durationMinutes := activity.SessionMinutes()
	if req.DurationMinutes != nil {
		durationMinutes = *req.DurationMinutes
	}

	resources, err := uc.catalogRepo.ListResourcesByActivity(ctx, req.ActivityID, req.PartySize)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list resources activity=%d: %v", req.ActivityID, err)
		return nil, fmt.Errorf("%w: failed to list resources: %v", ErrInternal, err)
	}

	response := &Response{
		ActivityID:      req.ActivityID,
		Date:            req.Date,
		DurationMinutes: durationMinutes,
		Slots:           []Slot{},
	}

	// Группа крупнее любого ресурса: слотов нет, но это не ошибка
	if len(resources) == 0 {
		return response, nil
	}

	hours := uc.schedule.HoursFor(req.Date)
	dayStart := dayStartUTC(req.Date)
	openAt := dayStart.Add(time.Duration(hours.OpenHour) * time.Hour)
	closeAt := dayStart.Add(time.Duration(hours.CloseHour) * time.Hour)

	resourceIDs := make([]int64, 0, len(resources))
	for _, resource := range resources {
		resourceIDs = append(resourceIDs, resource.ID)
	}

	bookings, err := uc.bookingRepo.ListForResourcesInRange(ctx, resourceIDs, openAt, closeAt)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	bookingsByResource := make(map[int64][]*domain.Booking, len(resources))
	for _, booking := range bookings {
		bookingsByResource[booking.ResourceID] = append(bookingsByResource[booking.ResourceID], booking)
	}

	for _, startTime := range uc.schedule.Slots(req.Date, uc.intervalMinutes) {
		startMinutes, err := startTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: invalid slot time %q: %v", ErrInternal, startTime, err)
		}

		slotStart := dayStart.Add(time.Duration(startMinutes) * time.Minute)
		slotEnd := slotStart.Add(time.Duration(durationMinutes) * time.Minute)

		// Сессия должна закончиться не позже закрытия
		if slotEnd.After(closeAt) {
			continue
		}

		remaining := 0
		for _, resource := range resources {
			if resourceFree(bookingsByResource[resource.ID], slotStart, slotEnd) {
				remaining++
			}
		}

		if remaining == 0 {
			continue
		}

		response.Slots = append(response.Slots, Slot{
			StartTime: startTime,
			Remaining: remaining,
			Total:     len(resources),
		})
	}

	return response, nil
}

// resourceFree проверяет, что ни одно активное бронирование ресурса не
// пересекает полуинтервал [start, end)
func resourceFree(bookings []*domain.Booking, start, end time.Time) bool {
	for _, booking := range bookings {
		if booking.IsActive() && booking.Overlaps(start, end) {
			return false
		}
	}
	return true
}

// dayStartUTC возвращает полночь дня date на стене площадки
func dayStartUTC(date time.Time) time.Time {
	local := domain.VenueClock(date)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ActivityID <= 0 {
		return fmt.Errorf("%w: activityID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes != nil {
		if err := validateDuration(*req.DurationMinutes); err != nil {
			return err
		}
	}

	if req.PartySize != nil {
		if *req.PartySize < domain.MinPartySize || *req.PartySize > domain.MaxPartySize {
			return fmt.Errorf("%w: partySize must be between %d and %d",
				ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
		}
	}

	return nil
}

// validateDuration проверяет границы и шаг длительности
func validateDuration(durationMinutes int) error {
	if durationMinutes < domain.MinDurationMinutes || durationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	if durationMinutes%domain.DurationStepMinutes != 0 {
		return fmt.Errorf("%w: durationMinutes must be a multiple of %d",
			ErrInvalidInput, domain.DurationStepMinutes)
	}

	return nil
}
