package list_activities

import (
	"net/http"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/activities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListActivities(r.Context())
	if err != nil {
		h.logger.Error("GET /activities - Failed to list activities: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceModels(result))
}
