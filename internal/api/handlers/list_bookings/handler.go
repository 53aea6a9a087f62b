package list_bookings

import (
	"errors"
	"net/http"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/api/handlers"
	"github.com/hartvaneindhoven/HVE-BookingService/internal/service/bookings"
)

const msgMissingEmail = "email query parameter is required"

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

// Handle GET /api/v1/bookings?email=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	result, err := h.service.ListByEmail(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Missing email")
			handlers.RespondBadRequest(w, msgMissingEmail)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: email=%s, error=%v", email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceModels(result))
}
