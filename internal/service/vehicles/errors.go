package vehicles

import "errors"

var (
	// ErrVehicleNotFound is returned when no vehicle matches the lookup
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrDuplicatePlate is returned when the plate number is already
	// registered among active vehicles
	ErrDuplicatePlate = errors.New("plate number already registered")

	// ErrInvalidPaymentMode is returned for payment modes other than
	// cash, card or upi
	ErrInvalidPaymentMode = errors.New("invalid payment mode")

	// ErrVehicleNotCheckedOut is returned when recording a payment for a
	// vehicle that has not been checked out
	ErrVehicleNotCheckedOut = errors.New("vehicle not checked out")

	// ErrInternal is returned for unexpected repository failures
	ErrInternal = errors.New("service: internal error")
)
