package get_all_slots

import (
	"net/http"

	"github.com/parkwise/parking-service/internal/api/handlers"
	"github.com/parkwise/parking-service/internal/service/slots/models"
)

type Handler struct {
	service SlotLister
	logger  Logger
}

func NewHandler(service SlotLister, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// SlotListResponse HTTP response model
type SlotListResponse struct {
	Slots []*models.SlotResponse `json:"slots"`
	Total int                    `json:"total"`
}

// Handle GET /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slots, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /slots - Failed to list slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SlotListResponse{
		Slots: slots,
		Total: len(slots),
	})
}
