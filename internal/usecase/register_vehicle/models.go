package register_vehicle

import (
	"github.com/parkwise/parking-service/internal/service/vehicles/models"
)

// Request is the input for vehicle registration
type Request struct {
	PlateNumber  string
	OwnerName    string
	VehicleClass string
}

// Response is the registered visit record
type Response = models.VehicleResponse
