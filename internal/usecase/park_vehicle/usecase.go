package park_vehicle

import (
	"context"
	"errors"
	"fmt"

	slotRepo "github.com/parkwise/parking-service/internal/infra/storage/slotinv"
	vehicleRepo "github.com/parkwise/parking-service/internal/infra/storage/vehicle"
	"github.com/parkwise/parking-service/pkg/ptr"
)

// UseCase assigns a vehicle to a parking slot. Precondition failures come
// back as distinct sentinel errors and leave all state untouched.
type UseCase struct {
	vehicleRepo VehicleRepository
	slotRepo    SlotRepository
	txManager   TxManager
	logger      Logger
}

// NewUseCase creates a new park-vehicle use case
func NewUseCase(vehicleRepo VehicleRepository, slotRepo SlotRepository, txManager TxManager, logger Logger) *UseCase {
	return &UseCase{
		vehicleRepo: vehicleRepo,
		slotRepo:    slotRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute parks the vehicle into the requested slot. A vehicle that is
// already parked is moved: the new slot is taken first, then the previous
// one is released, so the slot is never left phantom-occupied. The whole
// sequence runs under the transaction manager: without it, two concurrent
// parks of one vehicle could each read SlotID as empty, occupy a slot each
// and leave one of them occupied with no vehicle referencing it.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	var resp *Response
	err := uc.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		resp, err = uc.execute(ctx, req)
		return err
	})
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ParkVehicle: vehicle=%s slot=%s", req.VehicleID, req.SlotID)

	vehicle, err := uc.vehicleRepo.GetActiveByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			uc.logger.Warn("ParkVehicle: vehicle=%s not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("ParkVehicle: failed to get vehicle=%s: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	slot, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("ParkVehicle: slot=%s not found", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("ParkVehicle: failed to get slot=%s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	if slot.IsOccupied {
		uc.logger.Warn("ParkVehicle: slot=%s already occupied", req.SlotID)
		return nil, ErrSlotOccupied
	}

	if slot.Class != vehicle.Class {
		uc.logger.Warn("ParkVehicle: slot=%s accepts %s, vehicle=%s is %s",
			req.SlotID, slot.Class, req.VehicleID, vehicle.Class)
		return nil, ErrClassMismatch
	}

	if err := uc.slotRepo.Occupy(ctx, req.SlotID); err != nil {
		if errors.Is(err, slotRepo.ErrSlotOccupied) {
			uc.logger.Warn("ParkVehicle: slot=%s already occupied", req.SlotID)
			return nil, ErrSlotOccupied
		}
		uc.logger.Error("ParkVehicle: failed to occupy slot=%s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to occupy slot: %v", ErrInternal, err)
	}

	// Re-park: release the slot the vehicle held before
	var freedSlotID *string
	if vehicle.SlotID != nil && *vehicle.SlotID != req.SlotID {
		if err := uc.slotRepo.Release(ctx, *vehicle.SlotID); err != nil {
			uc.logger.Error("ParkVehicle: failed to release previous slot=%s for vehicle=%s: %v",
				*vehicle.SlotID, req.VehicleID, err)
		} else {
			freedSlotID = ptr.Ptr(*vehicle.SlotID)
			uc.logger.Info("ParkVehicle: released previous slot=%s for vehicle=%s",
				*vehicle.SlotID, req.VehicleID)
		}
	}

	if err := uc.vehicleRepo.AssignSlot(ctx, req.VehicleID, req.SlotID); err != nil {
		// Roll the occupancy back so the slot is not leaked
		if relErr := uc.slotRepo.Release(ctx, req.SlotID); relErr != nil {
			uc.logger.Error("ParkVehicle: rollback release of slot=%s failed: %v", req.SlotID, relErr)
		}
		uc.logger.Error("ParkVehicle: failed to assign slot=%s to vehicle=%s: %v",
			req.SlotID, req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to assign slot: %v", ErrInternal, err)
	}

	uc.logger.Info("ParkVehicle: vehicle=%s parked in slot=%s", req.VehicleID, req.SlotID)
	return &Response{
		VehicleID:   vehicle.ID,
		PlateNumber: vehicle.PlateNumber,
		SlotID:      req.SlotID,
		FreedSlotID: freedSlotID,
	}, nil
}
