package find_vehicle

import (
	"context"

	"github.com/parkwise/parking-service/internal/service/vehicles/models"
)

// VehicleFinder is the lookup contract, implemented by the vehicles service
type VehicleFinder interface {
	FindByPlate(ctx context.Context, plate string) (*models.VehicleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
