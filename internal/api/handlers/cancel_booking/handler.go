package cancel_booking

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/api/handlers"
	"github.com/hartvaneindhoven/HVE-BookingService/internal/service/bookings"
	"github.com/hartvaneindhoven/HVE-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "booking not found"
	msgCannotCancel       = "booking is already cancelled"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{reference}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	// Тело необязательно: отмена без причины допустима
	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /bookings/{reference}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Cancel(r.Context(), &models.CancelRequest{
		Reference: reference,
		Reason:    req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{reference}/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{reference}/cancel - Booking not found: ref=%s", reference)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("PATCH /bookings/{reference}/cancel - Cannot cancel: ref=%s", reference)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /bookings/{reference}/cancel - Failed: ref=%s, error=%v", reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{reference}/cancel - Booking cancelled: ref=%s", reference)
	handlers.RespondJSON(w, http.StatusOK, FromServiceModel(result))
}
