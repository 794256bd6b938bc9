package get_active_vehicles

import (
	"net/http"

	"github.com/parkwise/parking-service/internal/api/handlers"
	"github.com/parkwise/parking-service/internal/service/vehicles/models"
)

type Handler struct {
	service VehicleLister
	logger  Logger
}

func NewHandler(service VehicleLister, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// VehicleListResponse HTTP response model
type VehicleListResponse struct {
	Vehicles []*models.VehicleResponse `json:"vehicles"`
	Total    int                       `json:"total"`
}

// Handle GET /api/v1/vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.service.ListActive(r.Context())
	if err != nil {
		h.logger.Error("GET /vehicles - Failed to list active vehicles: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, VehicleListResponse{
		Vehicles: vehicles,
		Total:    len(vehicles),
	})
}
