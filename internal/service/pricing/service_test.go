package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/domain"
	catalogRepo "github.com/hartvaneindhoven/HVE-BookingService/internal/infra/storage/catalog"
	"github.com/hartvaneindhoven/HVE-BookingService/internal/service/pricing/models"
	"github.com/hartvaneindhoven/HVE-BookingService/pkg/ptr"
)

type fakeCatalogRepo struct {
	activities map[int64]*domain.Activity
	addOns     map[int64]*domain.AddOn
}

func (f *fakeCatalogRepo) GetActivityByID(_ context.Context, id int64) (*domain.Activity, error) {
	activity, ok := f.activities[id]
	if !ok {
		return nil, catalogRepo.ErrActivityNotFound
	}
	return activity, nil
}

func (f *fakeCatalogRepo) GetAddOnsByIDs(_ context.Context, ids []int64) ([]*domain.AddOn, error) {
	result := make([]*domain.AddOn, 0, len(ids))
	seen := make(map[int64]bool)
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if addOn, ok := f.addOns[id]; ok {
			result = append(result, addOn)
		}
	}
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() *Service {
	repo := &fakeCatalogRepo{
		activities: map[int64]*domain.Activity{
			1: {ID: 1, Slug: "bowlen", Name: "Bowlen", DurationMinutes: 60},
			2: {ID: 2, Slug: "karaoke", Name: "Karaoke", DurationMinutes: 60},
			3: {ID: 3, Slug: "escape-hunt", Name: "Escape Hunt", DurationMinutes: 60},
		},
		addOns: map[int64]*domain.AddOn{
			10: {ID: 10, Name: "Drinks Package", PriceCents: 500, PerPerson: true},
			11: {ID: 11, Name: "Extra Time", PriceCents: 1000, PerPerson: false},
		},
	}

	return NewService(
		repo,
		domain.DefaultRateRules(),
		domain.DefaultFallbackRate(),
		domain.DefaultPeakSchedule(),
		nopLogger{},
	)
}

var (
	saturdayEvening  = time.Date(2026, 9, 5, 18, 0, 0, 0, time.UTC) // peak
	tuesdayAfternoon = time.Date(2026, 9, 8, 14, 0, 0, 0, time.UTC) // off-peak
)

func TestComputeQuote_BowlenSaturdayPeak(t *testing.T) {
	svc := newTestService()

	quote, err := svc.ComputeQuote(context.Background(), &models.QuoteRequest{
		ActivityID: 1,
		StartAt:    saturdayEvening,
		Size:       4,
	})

	require.NoError(t, err)
	assert.True(t, quote.Peak)
	assert.Equal(t, int64(3500), quote.BaseCents) // per-lane rate, size does not multiply
	assert.Equal(t, int64(3500), quote.TotalCents)
	require.Len(t, quote.Items, 1)
	assert.Equal(t, "Bowlen (60 min)", quote.Items[0].Label)
}

func TestComputeQuote_KaraokePerPersonOffPeak(t *testing.T) {
	svc := newTestService()

	quote, err := svc.ComputeQuote(context.Background(), &models.QuoteRequest{
		ActivityID: 2,
		StartAt:    tuesdayAfternoon,
		Size:       4,
	})

	require.NoError(t, err)
	assert.False(t, quote.Peak)
	assert.Equal(t, int64(4000), quote.BaseCents) // 1000 * 4 persons
	require.Len(t, quote.Items, 1)
	assert.Equal(t, "Karaoke x 4 (60 min)", quote.Items[0].Label)
}

func TestComputeQuote_AddOns(t *testing.T) {
	svc := newTestService()

	quote, err := svc.ComputeQuote(context.Background(), &models.QuoteRequest{
		ActivityID: 1,
		StartAt:    saturdayEvening,
		Size:       4,
		AddOnIDs:   []int64{10, 11},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3500), quote.BaseCents)
	assert.Equal(t, int64(3000), quote.AddOnsCents) // 500*4 + 1000
	assert.Equal(t, int64(6500), quote.TotalCents)

	require.Len(t, quote.Items, 3)
	assert.Equal(t, "Bowlen (60 min)", quote.Items[0].Label)
	assert.Equal(t, "Drinks Package x 4", quote.Items[1].Label)
	assert.Equal(t, int64(2000), quote.Items[1].Cents)
	assert.Equal(t, "Extra Time", quote.Items[2].Label)
	assert.Equal(t, int64(1000), quote.Items[2].Cents)
}

func TestComputeQuote_UnknownAddOnIgnored(t *testing.T) {
	svc := newTestService()

	quote, err := svc.ComputeQuote(context.Background(), &models.QuoteRequest{
		ActivityID: 1,
		StartAt:    saturdayEvening,
		Size:       2,
		AddOnIDs:   []int64{999, 10},
	})

	require.NoError(t, err)
	require.Len(t, quote.Items, 2) // базовая строка + Drinks, 999 выпал
	assert.Equal(t, "Drinks Package x 2", quote.Items[1].Label)
	assert.Equal(t, int64(3500+1000), quote.TotalCents)
}

func TestComputeQuote_AddOnOrderFollowsRequest(t *testing.T) {
	svc := newTestService()

	quote, err := svc.ComputeQuote(context.Background(), &models.QuoteRequest{
		ActivityID: 1,
		StartAt:    saturdayEvening,
		Size:       2,
		AddOnIDs:   []int64{11, 10},
	})

	require.NoError(t, err)
	require.Len(t, quote.Items, 3)
	assert.Equal(t, "Extra Time", quote.Items[1].Label)
	assert.Equal(t, "Drinks Package x 2", quote.Items[2].Label)
}

func TestComputeQuote_RoundingHalfUp(t *testing.T) {
	svc := newTestService()

	// Karaoke off-peak, 25 минут: 1000 * 25/60 = 416.67 -> 417
	quote, err := svc.ComputeQuote(context.Background(), &models.QuoteRequest{
		ActivityID:      2,
		StartAt:         tuesdayAfternoon,
		Size:            1,
		DurationMinutes: ptr.Ptr(25),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(417), quote.BaseCents)
}

func TestComputeQuote_FallbackRateForUnknownSlug(t *testing.T) {
	svc := newTestService()

	quote, err := svc.ComputeQuote(context.Background(), &models.QuoteRequest{
		ActivityID: 3, // escape-hunt отсутствует в таблице тарифов
		StartAt:    tuesdayAfternoon,
		Size:       3,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3000), quote.BaseCents) // 1000 p.p. fallback
}

func TestComputeQuote_Deterministic(t *testing.T) {
	svc := newTestService()

	req := &models.QuoteRequest{
		ActivityID: 2,
		StartAt:    saturdayEvening,
		Size:       5,
		AddOnIDs:   []int64{10},
	}

	first, err := svc.ComputeQuote(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.ComputeQuote(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeQuote_ActivityNotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.ComputeQuote(context.Background(), &models.QuoteRequest{
		ActivityID: 999,
		StartAt:    saturdayEvening,
		Size:       2,
	})

	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestComputeQuote_InvalidSize(t *testing.T) {
	svc := newTestService()

	for _, size := range []int{0, -1, 21} {
		_, err := svc.ComputeQuote(context.Background(), &models.QuoteRequest{
			ActivityID: 1,
			StartAt:    saturdayEvening,
			Size:       size,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}
