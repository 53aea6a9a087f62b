package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/hartvaneindhoven/HVE-BookingService/internal/usecase/get_available_slots"
)

type fakeUseCase struct {
	lastReq *getAvailableSlots.Request
	resp    *getAvailableSlots.Response
	err     error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(useCase *fakeUseCase) *mux.Router {
	handler := NewHandler(useCase, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/activities/{activityId}/available-slots", handler.Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_HappyPath(t *testing.T) {
	useCase := &fakeUseCase{
		resp: &getAvailableSlots.Response{
			ActivityID:      1,
			Date:            time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			DurationMinutes: 60,
			Slots: []getAvailableSlots.Slot{
				{StartTime: "12:00", Remaining: 2, Total: 2},
				{StartTime: "12:30", Remaining: 1, Total: 2},
			},
		},
	}

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/activities/1/available-slots?date=2026-09-07&duration=60&size=4", nil)
	recorder := httptest.NewRecorder()

	newRouter(useCase).ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	require.NotNil(t, useCase.lastReq)
	assert.Equal(t, int64(1), useCase.lastReq.ActivityID)
	require.NotNil(t, useCase.lastReq.DurationMinutes)
	assert.Equal(t, 60, *useCase.lastReq.DurationMinutes)
	require.NotNil(t, useCase.lastReq.PartySize)
	assert.Equal(t, 4, *useCase.lastReq.PartySize)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "2026-09-07", resp.Date)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "12:00", resp.Slots[0].Time)
	assert.Equal(t, 2, resp.Slots[0].Remaining)
	assert.Equal(t, 1, resp.Slots[1].Remaining)
}

func TestHandle_MissingDate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/activities/1/available-slots", nil)
	recorder := httptest.NewRecorder()

	newRouter(&fakeUseCase{}).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandle_ActivityNotFound(t *testing.T) {
	useCase := &fakeUseCase{err: getAvailableSlots.ErrActivityNotFound}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/activities/999/available-slots?date=2026-09-07", nil)
	recorder := httptest.NewRecorder()

	newRouter(useCase).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
