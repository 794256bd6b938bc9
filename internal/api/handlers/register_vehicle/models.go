package register_vehicle

import (
	registerVehicle "github.com/parkwise/parking-service/internal/usecase/register_vehicle"
)

// RegisterVehicleRequest HTTP request model
type RegisterVehicleRequest struct {
	PlateNumber  string `json:"plateNumber"`
	OwnerName    string `json:"ownerName"`
	VehicleClass string `json:"vehicleClass"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *RegisterVehicleRequest) ToUseCaseRequest() *registerVehicle.Request {
	return &registerVehicle.Request{
		PlateNumber:  r.PlateNumber,
		OwnerName:    r.OwnerName,
		VehicleClass: r.VehicleClass,
	}
}
