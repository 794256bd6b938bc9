package park_vehicle

import "errors"

var (
	// ErrVehicleNotFound is returned when the vehicle is not in the active set
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrSlotNotFound is returned when the slot id is unknown
	ErrSlotNotFound = errors.New("slot not found")

	// ErrSlotOccupied is returned when the slot is already taken
	ErrSlotOccupied = errors.New("slot already occupied")

	// ErrClassMismatch is returned when the slot does not accept the
	// vehicle's class
	ErrClassMismatch = errors.New("slot class does not match vehicle class")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("usecase: internal error")
)
