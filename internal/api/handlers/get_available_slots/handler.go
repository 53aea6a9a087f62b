package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/api/handlers"
	"github.com/hartvaneindhoven/HVE-BookingService/internal/domain"
	getAvailableSlots "github.com/hartvaneindhoven/HVE-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidActivityID = "invalid activity id"
	msgInvalidDate       = "invalid date, expected YYYY-MM-DD"
	msgInvalidDuration   = "invalid duration"
	msgInvalidSize       = "invalid size"
	msgActivityNotFound  = "activity not found"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/activities/{activityId}/available-slots?date=YYYY-MM-DD&duration=&size=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activityID, err := strconv.ParseInt(mux.Vars(r)["activityId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid activity id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidActivityID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getAvailableSlots.Request{
		ActivityID: activityID,
		Date:       date,
	}

	if raw := r.URL.Query().Get("duration"); raw != "" {
		duration, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /available-slots - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
		req.DurationMinutes = &duration
	}

	if raw := r.URL.Query().Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /available-slots - Invalid size: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSize)
			return
		}
		req.PartySize = &size
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getAvailableSlots.ErrActivityNotFound):
			h.logger.Warn("GET /available-slots - Activity not found: activity_id=%d", activityID)
			handlers.RespondNotFound(w, msgActivityNotFound)

		default:
			h.logger.Error("GET /available-slots - Failed: activity_id=%d, error=%v", activityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
