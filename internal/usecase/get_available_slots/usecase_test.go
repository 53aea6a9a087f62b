package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/domain"
	catalogRepo "github.com/hartvaneindhoven/HVE-BookingService/internal/infra/storage/catalog"
	"github.com/hartvaneindhoven/HVE-BookingService/pkg/ptr"
	"github.com/hartvaneindhoven/HVE-BookingService/pkg/types"
)

type fakeCatalogRepo struct {
	activities map[int64]*domain.Activity
	resources  []*domain.Resource
}

func (f *fakeCatalogRepo) GetActivityByID(_ context.Context, id int64) (*domain.Activity, error) {
	activity, ok := f.activities[id]
	if !ok {
		return nil, catalogRepo.ErrActivityNotFound
	}
	return activity, nil
}

func (f *fakeCatalogRepo) ListResourcesByActivity(_ context.Context, activityID int64, minCapacity *int) ([]*domain.Resource, error) {
	result := make([]*domain.Resource, 0)
	for _, resource := range f.resources {
		if resource.ActivityID != activityID {
			continue
		}
		if minCapacity != nil && resource.Capacity < *minCapacity {
			continue
		}
		result = append(result, resource)
	}
	return result, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) ListForResourcesInRange(_ context.Context, resourceIDs []int64, from, to time.Time) ([]*domain.Booking, error) {
	wanted := make(map[int64]bool, len(resourceIDs))
	for _, id := range resourceIDs {
		wanted[id] = true
	}

	result := make([]*domain.Booking, 0)
	for _, booking := range f.bookings {
		if wanted[booking.ResourceID] && booking.IsActive() && booking.Overlaps(from, to) {
			result = append(result, booking)
		}
	}
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Две дорожки боулинга, Monday 12-22, сетка 30 минут
func newTestUseCase(bookings ...*domain.Booking) *UseCase {
	catalog := &fakeCatalogRepo{
		activities: map[int64]*domain.Activity{
			1: {ID: 1, Slug: "bowlen", Name: "Bowlen", DurationMinutes: 60},
		},
		resources: []*domain.Resource{
			{ID: 101, ActivityID: 1, Name: "Lane 1", Capacity: 6},
			{ID: 102, ActivityID: 1, Name: "Lane 2", Capacity: 6},
		},
	}

	return NewUseCase(
		catalog,
		&fakeBookingRepo{bookings: bookings},
		domain.DefaultWeekSchedule(),
		30,
		nopLogger{},
	)
}

var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func slotAt(t *testing.T, resp *Response, at types.TimeString) *Slot {
	t.Helper()
	for i := range resp.Slots {
		if resp.Slots[i].StartTime == at {
			return &resp.Slots[i]
		}
	}
	return nil
}

func TestExecute_AllSlotsFreeWhenNoBookings(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{ActivityID: 1, Date: monday})

	require.NoError(t, err)
	assert.Equal(t, 60, resp.DurationMinutes)

	// 12:00 .. 21:00 каждые 30 минут: последняя сессия должна закончиться к 22:00
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("12:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("21:00"), resp.Slots[len(resp.Slots)-1].StartTime)

	for _, slot := range resp.Slots {
		assert.Equal(t, 2, slot.Remaining)
		assert.Equal(t, 2, slot.Total)
	}
}

func TestExecute_RemainingCountsWithBookedLane(t *testing.T) {
	// Lane 1 занята 18:00-19:00
	uc := newTestUseCase(&domain.Booking{
		ID:              1,
		ResourceID:      101,
		StartAt:         monday.Add(18 * time.Hour),
		DurationMinutes: 60,
		Status:          domain.StatusPending,
	})

	resp, err := uc.Execute(context.Background(), &Request{ActivityID: 1, Date: monday})
	require.NoError(t, err)

	eighteen := slotAt(t, resp, "18:00")
	require.NotNil(t, eighteen)
	assert.Equal(t, 1, eighteen.Remaining)
	assert.Equal(t, 2, eighteen.Total)

	// 17:30 пересекает [18:00, 19:00) часовой сессией
	halfPast := slotAt(t, resp, "17:30")
	require.NotNil(t, halfPast)
	assert.Equal(t, 1, halfPast.Remaining)
}

func TestExecute_BoundaryTouchDoesNotConflict(t *testing.T) {
	// Обе дорожки заняты 18:00-19:00
	uc := newTestUseCase(
		&domain.Booking{ID: 1, ResourceID: 101, StartAt: monday.Add(18 * time.Hour), DurationMinutes: 60, Status: domain.StatusPending},
		&domain.Booking{ID: 2, ResourceID: 102, StartAt: monday.Add(18 * time.Hour), DurationMinutes: 60, Status: domain.StatusConfirmed},
	)

	resp, err := uc.Execute(context.Background(), &Request{ActivityID: 1, Date: monday})
	require.NoError(t, err)

	// 18:00 и 18:30 выпадают из ответа целиком
	assert.Nil(t, slotAt(t, resp, "18:00"))
	assert.Nil(t, slotAt(t, resp, "18:30"))

	// Сессия, заканчивающаяся ровно в 18:00, и стартующая ровно в 19:00 свободны
	seventeen := slotAt(t, resp, "17:00")
	require.NotNil(t, seventeen)
	assert.Equal(t, 2, seventeen.Remaining)

	nineteen := slotAt(t, resp, "19:00")
	require.NotNil(t, nineteen)
	assert.Equal(t, 2, nineteen.Remaining)
}

func TestExecute_CancelledBookingIgnored(t *testing.T) {
	uc := newTestUseCase(&domain.Booking{
		ID:              1,
		ResourceID:      101,
		StartAt:         monday.Add(18 * time.Hour),
		DurationMinutes: 60,
		Status:          domain.StatusCancelled,
	})

	resp, err := uc.Execute(context.Background(), &Request{ActivityID: 1, Date: monday})
	require.NoError(t, err)

	eighteen := slotAt(t, resp, "18:00")
	require.NotNil(t, eighteen)
	assert.Equal(t, 2, eighteen.Remaining)
}

func TestExecute_PartySizeExceedsAllCapacities(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		ActivityID: 1,
		Date:       monday,
		PartySize:  ptr.Ptr(8), // дорожки вмещают 6
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ActivityNotFound(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{ActivityID: 999, Date: monday})

	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestExecute_InvalidDuration(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{
		ActivityID:      1,
		Date:            monday,
		DurationMinutes: ptr.Ptr(17), // не кратно 5
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
