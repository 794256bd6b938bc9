package get_available_slots

import (
	"context"

	"github.com/parkwise/parking-service/internal/service/slots/models"
)

// SlotService is the availability contract, implemented by the slots service
type SlotService interface {
	ListAvailable(ctx context.Context, class string) ([]*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
