package register_vehicle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	vehiclesService "github.com/parkwise/parking-service/internal/service/vehicles"
	"github.com/parkwise/parking-service/internal/service/vehicles/models"
)

// UseCase validates and executes vehicle registration
type UseCase struct {
	registrar VehicleRegistrar
	logger    Logger
}

// NewUseCase creates a new register-vehicle use case
func NewUseCase(registrar VehicleRegistrar, logger Logger) *UseCase {
	return &UseCase{
		registrar: registrar,
		logger:    logger,
	}
}

// Execute registers a vehicle after validating the input
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RegisterVehicle: plate=%s class=%s", req.PlateNumber, req.VehicleClass)

	class, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("RegisterVehicle: validation failed for plate=%s: %v", req.PlateNumber, err)
		return nil, err
	}

	resp, err := uc.registrar.Register(ctx, &models.RegisterVehicleRequest{
		PlateNumber: req.PlateNumber,
		OwnerName:   strings.TrimSpace(req.OwnerName),
		Class:       class,
	})
	if err != nil {
		if errors.Is(err, vehiclesService.ErrDuplicatePlate) {
			return nil, ErrDuplicatePlate
		}
		uc.logger.Error("RegisterVehicle: failed to register plate=%s: %v", req.PlateNumber, err)
		return nil, fmt.Errorf("%w: failed to register vehicle: %v", ErrInternal, err)
	}

	return resp, nil
}
