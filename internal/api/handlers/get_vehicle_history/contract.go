package get_vehicle_history

import (
	"context"

	"github.com/parkwise/parking-service/internal/service/vehicles/models"
)

// HistoryLister is the listing contract, implemented by the vehicles service
type HistoryLister interface {
	ListHistory(ctx context.Context) ([]*models.VehicleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
