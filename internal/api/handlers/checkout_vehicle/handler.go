package checkout_vehicle

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/parkwise/parking-service/internal/api/handlers"
	checkoutVehicle "github.com/parkwise/parking-service/internal/usecase/checkout_vehicle"
)

const (
	msgVehicleNotFound  = "vehicle not found"
	msgVehicleNotParked = "vehicle is not parked"
)

type Handler struct {
	useCase CheckoutVehicleUseCase
	logger  Logger
}

func NewHandler(useCase CheckoutVehicleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/vehicles/{vehicleId}/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["vehicleId"]

	result, err := h.useCase.Execute(r.Context(), &checkoutVehicle.Request{VehicleID: vehicleID})
	if err != nil {
		switch {
		case errors.Is(err, checkoutVehicle.ErrVehicleNotFound):
			h.logger.Warn("POST /vehicles/{id}/checkout - Vehicle not found: vehicle=%s", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, checkoutVehicle.ErrVehicleNotParked):
			h.logger.Warn("POST /vehicles/{id}/checkout - Vehicle not parked: vehicle=%s", vehicleID)
			handlers.RespondConflict(w, msgVehicleNotParked)

		default:
			h.logger.Error("POST /vehicles/{id}/checkout - Failed to checkout: vehicle=%s, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles/{id}/checkout - Vehicle checked out: vehicle=%s, fee=%d",
		vehicleID, result.Fee)
	handlers.RespondJSON(w, http.StatusOK, result)
}
