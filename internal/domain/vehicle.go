package domain

import (
	"regexp"
	"strings"
	"time"
)

// VehicleClass represents the category of a vehicle
type VehicleClass string

const (
	ClassCar   VehicleClass = "CAR"
	ClassBike  VehicleClass = "BIKE"
	ClassTruck VehicleClass = "TRUCK"
)

// ParseVehicleClass converts a string into a VehicleClass (case-insensitive)
func ParseVehicleClass(s string) (VehicleClass, bool) {
	switch VehicleClass(strings.ToUpper(s)) {
	case ClassCar:
		return ClassCar, true
	case ClassBike:
		return ClassBike, true
	case ClassTruck:
		return ClassTruck, true
	}
	return "", false
}

// Valid returns true if the class is one of the known vehicle classes
func (c VehicleClass) Valid() bool {
	return c == ClassCar || c == ClassBike || c == ClassTruck
}

// SlotCode returns the single-letter code used in slot identifiers
func (c VehicleClass) SlotCode() string {
	switch c {
	case ClassCar:
		return "C"
	case ClassBike:
		return "B"
	case ClassTruck:
		return "T"
	}
	return "?"
}

// PaymentMode represents how a parking fee was settled
type PaymentMode string

const (
	PaymentPending PaymentMode = "pending"
	PaymentCash    PaymentMode = "cash"
	PaymentCard    PaymentMode = "card"
	PaymentUPI     PaymentMode = "upi"
)

// ParsePaymentMode converts a string into a settled PaymentMode.
// "pending" is the default state of a vehicle, not a mode a caller can set.
func ParsePaymentMode(s string) (PaymentMode, bool) {
	switch PaymentMode(strings.ToLower(s)) {
	case PaymentCash:
		return PaymentCash, true
	case PaymentCard:
		return PaymentCard, true
	case PaymentUPI:
		return PaymentUPI, true
	}
	return "", false
}

// Vehicle represents a single parking visit. The same record backs both the
// active set and the history: checkout fills ExitTime and PaymentAmount, and
// a later payment fills PaymentMode.
type Vehicle struct {
	ID            string
	PlateNumber   string
	OwnerName     string
	Class         VehicleClass
	EntryTime     time.Time
	ExitTime      *time.Time
	SlotID        *string
	PaymentAmount *int64
	PaymentMode   PaymentMode
}

// IsParked returns true if the vehicle currently holds a slot
func (v *Vehicle) IsParked() bool {
	return v.SlotID != nil
}

// IsCheckedOut returns true if the vehicle has left the facility
func (v *Vehicle) IsCheckedOut() bool {
	return v.ExitTime != nil
}

// SamePlate compares plate numbers case-insensitively
func (v *Vehicle) SamePlate(plate string) bool {
	return strings.EqualFold(v.PlateNumber, plate)
}

// platePattern matches plates like MH12AB1234
var platePattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z]{2}[0-9]{4}$`)

// ValidPlateNumber reports whether a plate number matches the required format
func ValidPlateNumber(plate string) bool {
	return platePattern.MatchString(plate)
}
