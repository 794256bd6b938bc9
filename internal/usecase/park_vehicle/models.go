package park_vehicle

// Request identifies the vehicle and the target slot
type Request struct {
	VehicleID string
	SlotID    string
}

// Response describes the result of a successful park. FreedSlotID is set
// when the vehicle was already parked and its previous slot was released.
type Response struct {
	VehicleID   string  `json:"vehicleId"`
	PlateNumber string  `json:"plateNumber"`
	SlotID      string  `json:"slotId"`
	FreedSlotID *string `json:"freedSlotId,omitempty"`
}
