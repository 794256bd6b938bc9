package domain

// ParkingSlot represents a single parking slot in the facility
type ParkingSlot struct {
	ID         string // "floor-code-index", e.g. "2-C-7"
	Number     int    // sequential display number across the whole facility
	Class      VehicleClass
	IsOccupied bool
	Floor      int
}
