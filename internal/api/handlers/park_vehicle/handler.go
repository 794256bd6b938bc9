package park_vehicle

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/parkwise/parking-service/internal/api/handlers"
	parkVehicle "github.com/parkwise/parking-service/internal/usecase/park_vehicle"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingSlotID      = "slotId is required"
	msgVehicleNotFound    = "vehicle not found"
	msgSlotNotFound       = "slot not found"
	msgSlotOccupied       = "slot is already occupied"
	msgClassMismatch      = "slot does not accept this vehicle class"
)

type Handler struct {
	useCase ParkVehicleUseCase
	logger  Logger
}

func NewHandler(useCase ParkVehicleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/vehicles/{vehicleId}/park
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["vehicleId"]

	var req ParkVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles/{id}/park - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.SlotID == "" {
		h.logger.Warn("POST /vehicles/{id}/park - Missing slot id: vehicle=%s", vehicleID)
		handlers.RespondBadRequest(w, msgMissingSlotID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &parkVehicle.Request{
		VehicleID: vehicleID,
		SlotID:    req.SlotID,
	})
	if err != nil {
		switch {
		case errors.Is(err, parkVehicle.ErrVehicleNotFound):
			h.logger.Warn("POST /vehicles/{id}/park - Vehicle not found: vehicle=%s", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, parkVehicle.ErrSlotNotFound):
			h.logger.Warn("POST /vehicles/{id}/park - Slot not found: slot=%s", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, parkVehicle.ErrSlotOccupied):
			h.logger.Warn("POST /vehicles/{id}/park - Slot occupied: slot=%s", req.SlotID)
			handlers.RespondConflict(w, msgSlotOccupied)

		case errors.Is(err, parkVehicle.ErrClassMismatch):
			h.logger.Warn("POST /vehicles/{id}/park - Class mismatch: vehicle=%s, slot=%s",
				vehicleID, req.SlotID)
			handlers.RespondConflict(w, msgClassMismatch)

		default:
			h.logger.Error("POST /vehicles/{id}/park - Failed to park: vehicle=%s, slot=%s, error=%v",
				vehicleID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles/{id}/park - Vehicle parked: vehicle=%s, slot=%s", vehicleID, result.SlotID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
