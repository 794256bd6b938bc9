package record_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/parkwise/parking-service/internal/api/handlers"
	"github.com/parkwise/parking-service/internal/service/vehicles"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidMode        = "payment mode must be one of cash, card, upi"
	msgVehicleNotFound    = "vehicle not found"
	msgNotCheckedOut      = "vehicle has not been checked out"
)

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/vehicles/{vehicleId}/payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["vehicleId"]

	var req RecordPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles/{id}/payment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.RecordPayment(r.Context(), vehicleID, req.PaymentMode); err != nil {
		switch {
		case errors.Is(err, vehicles.ErrInvalidPaymentMode):
			h.logger.Warn("POST /vehicles/{id}/payment - Invalid mode: vehicle=%s, mode=%s",
				vehicleID, req.PaymentMode)
			handlers.RespondBadRequest(w, msgInvalidMode)

		case errors.Is(err, vehicles.ErrVehicleNotFound):
			h.logger.Warn("POST /vehicles/{id}/payment - Vehicle not found: vehicle=%s", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, vehicles.ErrVehicleNotCheckedOut):
			h.logger.Warn("POST /vehicles/{id}/payment - Not checked out: vehicle=%s", vehicleID)
			handlers.RespondConflict(w, msgNotCheckedOut)

		default:
			h.logger.Error("POST /vehicles/{id}/payment - Failed to record payment: vehicle=%s, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles/{id}/payment - Payment recorded: vehicle=%s, mode=%s",
		vehicleID, req.PaymentMode)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
