package register_vehicle

import (
	"errors"
	"net/http"

	"github.com/parkwise/parking-service/internal/api/handlers"
	registerVehicle "github.com/parkwise/parking-service/internal/usecase/register_vehicle"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidPlate       = "invalid plate number, expected format like MH12AB1234"
	msgInvalidOwner       = "owner name must be non-empty and at most 100 characters"
	msgInvalidClass       = "vehicle class must be one of CAR, BIKE, TRUCK"
	msgDuplicatePlate     = "a vehicle with this plate number is already registered"
)

type Handler struct {
	useCase RegisterVehicleUseCase
	logger  Logger
}

func NewHandler(useCase RegisterVehicleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, registerVehicle.ErrInvalidPlateNumber):
			h.logger.Warn("POST /vehicles - Invalid plate number: plate=%s", req.PlateNumber)
			handlers.RespondBadRequest(w, msgInvalidPlate)

		case errors.Is(err, registerVehicle.ErrInvalidOwnerName):
			h.logger.Warn("POST /vehicles - Invalid owner name: plate=%s", req.PlateNumber)
			handlers.RespondBadRequest(w, msgInvalidOwner)

		case errors.Is(err, registerVehicle.ErrInvalidVehicleClass):
			h.logger.Warn("POST /vehicles - Invalid vehicle class: class=%s", req.VehicleClass)
			handlers.RespondBadRequest(w, msgInvalidClass)

		case errors.Is(err, registerVehicle.ErrDuplicatePlate):
			h.logger.Warn("POST /vehicles - Duplicate plate: plate=%s", req.PlateNumber)
			handlers.RespondConflict(w, msgDuplicatePlate)

		default:
			h.logger.Error("POST /vehicles - Failed to register vehicle: plate=%s, error=%v",
				req.PlateNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles - Vehicle registered: id=%s, plate=%s", result.ID, result.PlateNumber)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
