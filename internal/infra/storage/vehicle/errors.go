package vehicle

import "errors"

var (
	// ErrVehicleNotFound is returned when no vehicle matches the lookup
	ErrVehicleNotFound = errors.New("vehicle.repository: vehicle not found")

	// ErrDuplicateActivePlate is returned when registering a plate number
	// that is already present among active vehicles
	ErrDuplicateActivePlate = errors.New("vehicle.repository: plate number already registered")

	// ErrVehicleNotCheckedOut is returned when recording a payment for a
	// vehicle that has not been checked out yet
	ErrVehicleNotCheckedOut = errors.New("vehicle.repository: vehicle not checked out")
)
