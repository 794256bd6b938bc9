package models

import "github.com/parkwise/parking-service/internal/domain"

// SlotResponse is the outward view of a parking slot
type SlotResponse struct {
	ID           string `json:"id"`
	Number       int    `json:"number"`
	VehicleClass string `json:"vehicleClass"`
	IsOccupied   bool   `json:"isOccupied"`
	Floor        int    `json:"floor"`
}

// FromDomainSlot converts a domain slot into a response model
func FromDomainSlot(s *domain.ParkingSlot) *SlotResponse {
	return &SlotResponse{
		ID:           s.ID,
		Number:       s.Number,
		VehicleClass: string(s.Class),
		IsOccupied:   s.IsOccupied,
		Floor:        s.Floor,
	}
}

// FromDomainSlotList converts a list of domain slots
func FromDomainSlotList(slots []*domain.ParkingSlot) []*SlotResponse {
	out := make([]*SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, FromDomainSlot(s))
	}
	return out
}
