package find_vehicle

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/parkwise/parking-service/internal/api/handlers"
	"github.com/parkwise/parking-service/internal/service/vehicles"
)

const msgVehicleNotFound = "no vehicle found for this plate number"

type Handler struct {
	service VehicleFinder
	logger  Logger
}

func NewHandler(service VehicleFinder, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles/plate/{plateNumber}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	plate := mux.Vars(r)["plateNumber"]

	vehicle, err := h.service.FindByPlate(r.Context(), plate)
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrVehicleNotFound):
			h.logger.Warn("GET /vehicles/plate/{plate} - Not found: plate=%s", plate)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		default:
			h.logger.Error("GET /vehicles/plate/{plate} - Failed to find vehicle: plate=%s, error=%v",
				plate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vehicles/plate/{plate} - Vehicle found: plate=%s, id=%s", plate, vehicle.ID)
	handlers.RespondJSON(w, http.StatusOK, vehicle)
}
