package models

import (
	"time"

	"github.com/parkwise/parking-service/internal/domain"
)

// RegisterVehicleRequest is the input for vehicle registration
type RegisterVehicleRequest struct {
	PlateNumber string
	OwnerName   string
	Class       domain.VehicleClass
}

// VehicleResponse is the outward view of a visit record
type VehicleResponse struct {
	ID            string     `json:"id"`
	PlateNumber   string     `json:"plateNumber"`
	OwnerName     string     `json:"ownerName"`
	VehicleClass  string     `json:"vehicleClass"`
	EntryTime     time.Time  `json:"entryTime"`
	ExitTime      *time.Time `json:"exitTime,omitempty"`
	SlotID        *string    `json:"slotId,omitempty"`
	PaymentAmount *int64     `json:"paymentAmount,omitempty"`
	PaymentMode   string     `json:"paymentMode"`
}

// FromDomainVehicle converts a domain vehicle into a response model
func FromDomainVehicle(v *domain.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:            v.ID,
		PlateNumber:   v.PlateNumber,
		OwnerName:     v.OwnerName,
		VehicleClass:  string(v.Class),
		EntryTime:     v.EntryTime,
		ExitTime:      v.ExitTime,
		SlotID:        v.SlotID,
		PaymentAmount: v.PaymentAmount,
		PaymentMode:   string(v.PaymentMode),
	}
}

// FromDomainVehicleList converts a list of domain vehicles
func FromDomainVehicleList(vehicles []*domain.Vehicle) []*VehicleResponse {
	out := make([]*VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, FromDomainVehicle(v))
	}
	return out
}
