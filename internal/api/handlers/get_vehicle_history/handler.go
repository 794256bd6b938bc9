package get_vehicle_history

import (
	"net/http"

	"github.com/parkwise/parking-service/internal/api/handlers"
	"github.com/parkwise/parking-service/internal/service/vehicles/models"
)

type Handler struct {
	service HistoryLister
	logger  Logger
}

func NewHandler(service HistoryLister, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HistoryListResponse HTTP response model
type HistoryListResponse struct {
	Vehicles []*models.VehicleResponse `json:"vehicles"`
	Total    int                       `json:"total"`
}

// Handle GET /api/v1/vehicles/history
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.service.ListHistory(r.Context())
	if err != nil {
		h.logger.Error("GET /vehicles/history - Failed to list history: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, HistoryListResponse{
		Vehicles: vehicles,
		Total:    len(vehicles),
	})
}
