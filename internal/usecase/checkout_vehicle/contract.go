package checkout_vehicle

import (
	"context"
	"time"

	"github.com/parkwise/parking-service/internal/domain"
)

// VehicleRepository is the storage contract for vehicle records
type VehicleRepository interface {
	GetActiveByID(ctx context.Context, id string) (*domain.Vehicle, error)
	Checkout(ctx context.Context, id string, exitTime time.Time, fee int64) error
}

// SlotRepository is the storage contract for the slot inventory
type SlotRepository interface {
	Release(ctx context.Context, id string) error
}

// TxManager serializes mutations that touch both repositories
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider abstracts the clock so exit times are testable
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production clock
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time { return time.Now() }

// Logger is the logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
