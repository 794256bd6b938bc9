package get_active_vehicles

import (
	"context"

	"github.com/parkwise/parking-service/internal/service/vehicles/models"
)

// VehicleLister is the listing contract, implemented by the vehicles service
type VehicleLister interface {
	ListActive(ctx context.Context) ([]*models.VehicleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
