package park_vehicle

// ParkVehicleRequest HTTP request model; the vehicle id comes from the URL
type ParkVehicleRequest struct {
	SlotID string `json:"slotId"`
}
