package checkout_vehicle

import "errors"

var (
	// ErrVehicleNotFound is returned when the vehicle is not in the active set
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrVehicleNotParked is returned when the vehicle has no assigned slot
	ErrVehicleNotParked = errors.New("vehicle not parked")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("usecase: internal error")
)
