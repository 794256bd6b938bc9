package slots

import "errors"

var (
	// ErrInvalidVehicleClass is returned for classes other than CAR, BIKE, TRUCK
	ErrInvalidVehicleClass = errors.New("invalid vehicle class")

	// ErrInternal is returned for unexpected repository failures
	ErrInternal = errors.New("service: internal error")
)
