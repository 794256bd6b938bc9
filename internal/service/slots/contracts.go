package slots

import (
	"context"

	"github.com/parkwise/parking-service/internal/domain"
)

// SlotRepository is the storage contract for the slot inventory
type SlotRepository interface {
	List(ctx context.Context) ([]*domain.ParkingSlot, error)
	ListAvailableByClass(ctx context.Context, class domain.VehicleClass) ([]*domain.ParkingSlot, error)
}

// Logger is the logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
