package compute_quote

import (
	"errors"
	"net/http"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/api/handlers"
	"github.com/hartvaneindhoven/HVE-BookingService/internal/service/pricing"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidStartAt     = "invalid startAt, expected an RFC3339 timestamp"
	msgActivityNotFound   = "activity not found"
)

type Handler struct {
	pricing PricingService
	logger  Logger
}

func NewHandler(pricing PricingService, logger Logger) *Handler {
	return &Handler{
		pricing: pricing,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/quote - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartAt)
		return
	}

	result, err := h.pricing.ComputeQuote(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidInput):
			h.logger.Warn("POST /bookings/quote - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, pricing.ErrActivityNotFound):
			h.logger.Warn("POST /bookings/quote - Activity not found: activity_id=%d", req.ActivityID)
			handlers.RespondNotFound(w, msgActivityNotFound)

		default:
			h.logger.Error("POST /bookings/quote - Failed: activity_id=%d, error=%v", req.ActivityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
