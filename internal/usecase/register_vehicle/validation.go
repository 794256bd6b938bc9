package register_vehicle

import (
	"strings"

	"github.com/parkwise/parking-service/internal/domain"
)

// validateRequest checks the registration input before touching any state
func validateRequest(req *Request) (domain.VehicleClass, error) {
	if !domain.ValidPlateNumber(req.PlateNumber) {
		return "", ErrInvalidPlateNumber
	}

	owner := strings.TrimSpace(req.OwnerName)
	if owner == "" || len(owner) > domain.MaxOwnerNameLength {
		return "", ErrInvalidOwnerName
	}

	class, ok := domain.ParseVehicleClass(req.VehicleClass)
	if !ok {
		return "", ErrInvalidVehicleClass
	}

	return class, nil
}
