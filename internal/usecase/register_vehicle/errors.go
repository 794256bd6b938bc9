package register_vehicle

import "errors"

var (
	// ErrInvalidPlateNumber is returned when the plate number does not
	// match the required format (e.g. MH12AB1234)
	ErrInvalidPlateNumber = errors.New("invalid plate number")

	// ErrInvalidOwnerName is returned when the owner name is empty or too long
	ErrInvalidOwnerName = errors.New("invalid owner name")

	// ErrInvalidVehicleClass is returned for classes other than CAR, BIKE, TRUCK
	ErrInvalidVehicleClass = errors.New("invalid vehicle class")

	// ErrDuplicatePlate is returned when the plate number is already
	// registered among active vehicles
	ErrDuplicatePlate = errors.New("plate number already registered")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("usecase: internal error")
)
