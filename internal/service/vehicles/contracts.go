package vehicles

import (
	"context"
	"time"

	"github.com/parkwise/parking-service/internal/domain"
)

// VehicleRepository is the storage contract for vehicle records
type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
	GetActiveByID(ctx context.Context, id string) (*domain.Vehicle, error)
	FindActiveByPlate(ctx context.Context, plate string) (*domain.Vehicle, error)
	FindLatestHistoricalByPlate(ctx context.Context, plate string) (*domain.Vehicle, error)
	ListActive(ctx context.Context) ([]*domain.Vehicle, error)
	ListHistory(ctx context.Context) ([]*domain.Vehicle, error)
	RecordPayment(ctx context.Context, id string, mode domain.PaymentMode) error
}

// TimeProvider abstracts the clock so entry times are testable
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
