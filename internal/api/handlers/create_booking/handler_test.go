package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/domain"
	createBooking "github.com/hartvaneindhoven/HVE-BookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *createBooking.Request) (*createBooking.Response, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, useCase *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(useCase, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	recorder := httptest.NewRecorder()

	handler.Handle(recorder, req)
	return recorder
}

const validBody = `{"email":"guest@example.com","activityId":1,"startAt":"2026-09-05T18:00:00Z","size":4}`

func TestHandle_Created(t *testing.T) {
	start := time.Date(2026, 9, 5, 18, 0, 0, 0, time.UTC)
	useCase := &fakeUseCase{
		resp: &createBooking.Response{
			ID:              1,
			Reference:       "11111111-2222-3333-4444-555555555555",
			Email:           "guest@example.com",
			ResourceID:      101,
			ResourceName:    "Lane 1",
			ActivityID:      1,
			ActivityName:    "Bowlen",
			StartAt:         start,
			EndAt:           start.Add(time.Hour),
			DurationMinutes: 60,
			Size:            4,
			Status:          domain.StatusPending,
			AddOnIDs:        []int64{},
			CreatedAt:       start,
		},
	}

	recorder := doRequest(t, useCase, validBody)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", resp.Reference)
	assert.Equal(t, "Lane 1", resp.ResourceName)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, "2026-09-05T19:00:00Z", resp.EndAt)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"date in past", createBooking.ErrDateInPast, http.StatusBadRequest},
		{"activity not found", createBooking.ErrActivityNotFound, http.StatusNotFound},
		{"resource not found", createBooking.ErrResourceNotFound, http.StatusNotFound},
		{"capacity exceeded", createBooking.ErrCapacityExceeded, http.StatusConflict},
		{"slot conflict", createBooking.ErrSlotConflict, http.StatusConflict},
		{"no resource available", createBooking.ErrNoResourceAvailable, http.StatusConflict},
		{"internal error", createBooking.ErrInternal, http.StatusInternalServerError},
		{"unexpected error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := doRequest(t, &fakeUseCase{err: tt.err}, validBody)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	recorder := doRequest(t, &fakeUseCase{}, `{not json`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandle_InvalidStartAt(t *testing.T) {
	body := `{"email":"guest@example.com","activityId":1,"startAt":"05-09-2026 18:00","size":4}`
	recorder := doRequest(t, &fakeUseCase{}, body)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
