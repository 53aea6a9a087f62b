package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/api/handlers"
	"github.com/hartvaneindhoven/HVE-BookingService/internal/service/bookings"
)

const (
	msgInvalidReference = "invalid booking reference"
	msgNotFound         = "booking not found"
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

// Handle GET /api/v1/bookings/{reference}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	booking, err := h.service.GetByReference(r.Context(), reference)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{reference} - Invalid reference: %v", err)
			handlers.RespondBadRequest(w, msgInvalidReference)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{reference} - Booking not found: ref=%s", reference)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{reference} - Failed to get booking: ref=%s, error=%v", reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceModel(booking))
}
