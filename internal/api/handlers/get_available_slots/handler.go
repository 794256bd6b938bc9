package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/parkwise/parking-service/internal/api/handlers"
	"github.com/parkwise/parking-service/internal/service/slots"
	"github.com/parkwise/parking-service/internal/service/slots/models"
)

const (
	msgMissingClass = "class query parameter is required"
	msgInvalidClass = "class must be one of CAR, BIKE, TRUCK"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Slots []*models.SlotResponse `json:"slots"`
	Total int                    `json:"total"`
}

// Handle GET /api/v1/slots/available?class=CAR
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	class := r.URL.Query().Get("class")
	if class == "" {
		h.logger.Warn("GET /slots/available - Missing class parameter")
		handlers.RespondBadRequest(w, msgMissingClass)
		return
	}

	available, err := h.service.ListAvailable(r.Context(), class)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidVehicleClass):
			h.logger.Warn("GET /slots/available - Invalid class: class=%s", class)
			handlers.RespondBadRequest(w, msgInvalidClass)

		default:
			h.logger.Error("GET /slots/available - Failed to list available slots: class=%s, error=%v",
				class, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, AvailableSlotsResponse{
		Slots: available,
		Total: len(available),
	})
}
