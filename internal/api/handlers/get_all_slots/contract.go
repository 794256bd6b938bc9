package get_all_slots

import (
	"context"

	"github.com/parkwise/parking-service/internal/service/slots/models"
)

// SlotLister is the listing contract, implemented by the slots service
type SlotLister interface {
	ListAll(ctx context.Context) ([]*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
