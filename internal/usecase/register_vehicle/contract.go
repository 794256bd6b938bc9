package register_vehicle

import (
	"context"

	"github.com/parkwise/parking-service/internal/service/vehicles/models"
)

// VehicleRegistrar is the registration contract, implemented by the
// vehicles service
type VehicleRegistrar interface {
	Register(ctx context.Context, req *models.RegisterVehicleRequest) (*models.VehicleResponse, error)
}

// Logger is the logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
