package park_vehicle

import (
	"context"

	"github.com/parkwise/parking-service/internal/domain"
)

// VehicleRepository is the storage contract for vehicle records
type VehicleRepository interface {
	GetActiveByID(ctx context.Context, id string) (*domain.Vehicle, error)
	AssignSlot(ctx context.Context, id string, slotID string) error
}

// SlotRepository is the storage contract for the slot inventory
type SlotRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ParkingSlot, error)
	Occupy(ctx context.Context, id string) error
	Release(ctx context.Context, id string) error
}

// TxManager serializes mutations that touch both repositories
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
