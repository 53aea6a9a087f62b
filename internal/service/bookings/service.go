package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/domain"
	bookingRepo "github.com/hartvaneindhoven/HVE-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/hartvaneindhoven/HVE-BookingService/internal/infra/storage/catalog"
	"github.com/hartvaneindhoven/HVE-BookingService/internal/service/bookings/models"
)

// Service управляет жизненным циклом существующих бронирований: поиск по
// номеру брони, история гостя, отмена. Создание бронирований живёт в
// usecase/create_booking — там нужна транзакционная проверка доступности.
type Service struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// GetByReference получает бронирование по клиентскому номеру брони
func (s *Service) GetByReference(ctx context.Context, reference string) (*models.BookingDetails, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, fmt.Errorf("%w: reference is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByReference: failed to get booking ref=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	return s.enrich(ctx, booking), nil
}

// ListByEmail получает историю бронирований гостя, сначала новые
func (s *Service) ListByEmail(ctx context.Context, email string) ([]*models.BookingDetails, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListByEmail(ctx, email)
	if err != nil {
		s.logger.Error("ListByEmail: failed to list bookings email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	result := make([]*models.BookingDetails, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, s.enrich(ctx, booking))
	}

	return result, nil
}

// Cancel отменяет бронирование. Повторная отмена — ошибка. Отменённое
// бронирование сразу освобождает свой интервал для новых бронирований.
func (s *Service) Cancel(ctx context.Context, req *models.CancelRequest) (*models.BookingDetails, error) {
	if err := validateCancelRequest(req); err != nil {
		s.logger.Warn("Cancel: validation failed: %v", err)
		return nil, err
	}

	booking, err := s.bookingRepo.GetByReference(ctx, req.Reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: failed to get booking ref=%s: %v", req.Reference, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		return nil, ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, booking.ID, req.Reason); err != nil {
		s.logger.Error("Cancel: failed to cancel booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking ref=%s cancelled", booking.Reference)

	// Перечитываем, чтобы вернуть актуальные статус и метку отмены
	cancelled, err := s.bookingRepo.GetByReference(ctx, req.Reference)
	if err != nil {
		s.logger.Error("Cancel: failed to reload booking ref=%s: %v", req.Reference, err)
		return nil, fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
	}

	return s.enrich(ctx, cancelled), nil
}

// enrich дополняет бронирование названиями ресурса и активности.
// Ошибки каталога не фатальны: бронирование возвращается без названий.
func (s *Service) enrich(ctx context.Context, booking *domain.Booking) *models.BookingDetails {
	var resource *domain.Resource
	var activity *domain.Activity

	resource, err := s.catalogRepo.GetResourceByID(ctx, booking.ResourceID)
	if err != nil {
		if !errors.Is(err, catalogRepo.ErrResourceNotFound) {
			s.logger.Warn("enrich: failed to get resource id=%d: %v", booking.ResourceID, err)
		}
		return models.FromDomain(booking, nil, nil)
	}

	activity, err = s.catalogRepo.GetActivityByID(ctx, resource.ActivityID)
	if err != nil {
		if !errors.Is(err, catalogRepo.ErrActivityNotFound) {
			s.logger.Warn("enrich: failed to get activity id=%d: %v", resource.ActivityID, err)
		}
		return models.FromDomain(booking, resource, nil)
	}

	return models.FromDomain(booking, resource, activity)
}

// validateCancelRequest валидирует запрос на отмену
func validateCancelRequest(req *models.CancelRequest) error {
	req.Reference = strings.TrimSpace(req.Reference)
	if req.Reference == "" {
		return fmt.Errorf("%w: reference is required", ErrInvalidInput)
	}

	req.Reason = strings.TrimSpace(req.Reason)
	if len(req.Reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: reason must be at most %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	return nil
}
