package domain

// Inventory layout: fixed at startup, never resized
const (
	Floors = 3

	CarSlotsPerFloor   = 10
	BikeSlotsPerFloor  = 15
	TruckSlotsPerFloor = 5

	SlotsPerFloor = CarSlotsPerFloor + BikeSlotsPerFloor + TruckSlotsPerFloor
	TotalSlots    = Floors * SlotsPerFloor
)

// Business validation constants
const (
	MaxOwnerNameLength = 100
)

// SlotsPerFloorByClass returns how many slots of each class a floor carries
func SlotsPerFloorByClass(class VehicleClass) int {
	switch class {
	case ClassCar:
		return CarSlotsPerFloor
	case ClassBike:
		return BikeSlotsPerFloor
	case ClassTruck:
		return TruckSlotsPerFloor
	}
	return 0
}
