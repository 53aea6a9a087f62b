package create_booking

import (
	"errors"
	"net/http"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/api/handlers"
	createBooking "github.com/hartvaneindhoven/HVE-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidStartAt      = "invalid startAt, expected an RFC3339 timestamp"
	msgActivityNotFound    = "activity not found"
	msgResourceNotFound    = "resource not found"
	msgCapacityExceeded    = "party size exceeds the capacity of the requested resource"
	msgSlotConflict        = "the requested time conflicts with an existing booking"
	msgNoResourceAvailable = "no resource is available for the requested time"
	msgDateInPast          = "startAt must be in the future"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Start in the past: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrActivityNotFound):
			h.logger.Warn("POST /bookings - Activity not found: email=%s", req.Email)
			handlers.RespondNotFound(w, msgActivityNotFound)

		case errors.Is(err, createBooking.ErrResourceNotFound):
			h.logger.Warn("POST /bookings - Resource not found: email=%s", req.Email)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: email=%s, size=%d", req.Email, req.Size)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: email=%s", req.Email)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createBooking.ErrNoResourceAvailable):
			h.logger.Warn("POST /bookings - No resource available: email=%s", req.Email)
			handlers.RespondConflict(w, msgNoResourceAvailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: ref=%s, resource_id=%d",
		result.Reference, result.ResourceID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
