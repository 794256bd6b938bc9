package checkout_vehicle

import "time"

// Request identifies the vehicle to check out
type Request struct {
	VehicleID string
}

// Response carries the computed fee and the final state of the visit
type Response struct {
	VehicleID   string    `json:"vehicleId"`
	PlateNumber string    `json:"plateNumber"`
	FreedSlotID string    `json:"freedSlotId"`
	EntryTime   time.Time `json:"entryTime"`
	ExitTime    time.Time `json:"exitTime"`
	Fee         int64     `json:"fee"`
}
