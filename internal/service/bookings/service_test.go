package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/domain"
	bookingRepo "github.com/hartvaneindhoven/HVE-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/hartvaneindhoven/HVE-BookingService/internal/infra/storage/catalog"
	"github.com/hartvaneindhoven/HVE-BookingService/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
}

func (f *fakeBookingRepo) GetByReference(_ context.Context, reference string) (*domain.Booking, error) {
	booking, ok := f.bookings[reference]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingRepo) ListByEmail(_ context.Context, email string) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, booking := range f.bookings {
		if booking.Email == email {
			copied := *booking
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	for _, booking := range f.bookings {
		if booking.ID == id {
			now := time.Now()
			booking.Status = domain.StatusCancelled
			booking.CancellationReason = &reason
			booking.CancelledAt = &now
			return nil
		}
	}
	return bookingRepo.ErrBookingNotFound
}

type fakeCatalogRepo struct{}

func (fakeCatalogRepo) GetResourceByID(_ context.Context, id int64) (*domain.Resource, error) {
	if id != 101 {
		return nil, catalogRepo.ErrResourceNotFound
	}
	return &domain.Resource{ID: 101, ActivityID: 1, Name: "Lane 1", Capacity: 6}, nil
}

func (fakeCatalogRepo) GetActivityByID(_ context.Context, id int64) (*domain.Activity, error) {
	if id != 1 {
		return nil, catalogRepo.ErrActivityNotFound
	}
	return &domain.Activity{ID: 1, Slug: "bowlen", Name: "Bowlen", DurationMinutes: 60}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(status domain.BookingStatus) (*Service, *fakeBookingRepo) {
	repo := &fakeBookingRepo{
		bookings: map[string]*domain.Booking{
			"ref-1": {
				ID:              1,
				Reference:       "ref-1",
				Email:           "guest@example.com",
				ResourceID:      101,
				StartAt:         time.Date(2026, 9, 5, 18, 0, 0, 0, time.UTC),
				DurationMinutes: 60,
				Size:            4,
				Status:          status,
			},
		},
	}
	return NewService(repo, fakeCatalogRepo{}, nopLogger{}), repo
}

func TestGetByReference(t *testing.T) {
	svc, _ := newTestService(domain.StatusPending)

	details, err := svc.GetByReference(context.Background(), "ref-1")

	require.NoError(t, err)
	assert.Equal(t, "ref-1", details.Reference)
	assert.Equal(t, "Lane 1", details.ResourceName)
	assert.Equal(t, "Bowlen", details.ActivityName)
	assert.Equal(t, time.Date(2026, 9, 5, 19, 0, 0, 0, time.UTC), details.EndAt)
}

func TestGetByReference_NotFound(t *testing.T) {
	svc, _ := newTestService(domain.StatusPending)

	_, err := svc.GetByReference(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByReference_EmptyReference(t *testing.T) {
	svc, _ := newTestService(domain.StatusPending)

	_, err := svc.GetByReference(context.Background(), "  ")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListByEmail(t *testing.T) {
	svc, _ := newTestService(domain.StatusPending)

	result, err := svc.ListByEmail(context.Background(), "guest@example.com")

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "ref-1", result[0].Reference)
}

func TestListByEmail_Empty(t *testing.T) {
	svc, _ := newTestService(domain.StatusPending)

	result, err := svc.ListByEmail(context.Background(), "other@example.com")

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestCancel_FromPending(t *testing.T) {
	svc, repo := newTestService(domain.StatusPending)

	details, err := svc.Cancel(context.Background(), &models.CancelRequest{
		Reference: "ref-1",
		Reason:    "change of plans",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, details.Status)
	require.NotNil(t, details.CancellationReason)
	assert.Equal(t, "change of plans", *details.CancellationReason)
	assert.NotNil(t, details.CancelledAt)
	assert.Equal(t, domain.StatusCancelled, repo.bookings["ref-1"].Status)
}

func TestCancel_FromConfirmed(t *testing.T) {
	svc, _ := newTestService(domain.StatusConfirmed)

	details, err := svc.Cancel(context.Background(), &models.CancelRequest{Reference: "ref-1"})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, details.Status)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	svc, _ := newTestService(domain.StatusCancelled)

	_, err := svc.Cancel(context.Background(), &models.CancelRequest{Reference: "ref-1"})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_NotFound(t *testing.T) {
	svc, _ := newTestService(domain.StatusPending)

	_, err := svc.Cancel(context.Background(), &models.CancelRequest{Reference: "missing"})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_ReasonTooLong(t *testing.T) {
	svc, _ := newTestService(domain.StatusPending)

	longReason := make([]byte, domain.MaxCancellationReasonLength+1)
	for i := range longReason {
		longReason[i] = 'x'
	}

	_, err := svc.Cancel(context.Background(), &models.CancelRequest{
		Reference: "ref-1",
		Reason:    string(longReason),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
