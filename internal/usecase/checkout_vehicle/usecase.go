package checkout_vehicle

import (
	"context"
	"errors"
	"fmt"

	"github.com/parkwise/parking-service/internal/domain"
	vehicleRepo "github.com/parkwise/parking-service/internal/infra/storage/vehicle"
)

// UseCase checks a vehicle out: captures the exit time, computes the fee,
// frees the slot and moves the record to history-only.
type UseCase struct {
	vehicleRepo  VehicleRepository
	slotRepo     SlotRepository
	txManager    TxManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates a new checkout-vehicle use case
func NewUseCase(vehicleRepo VehicleRepository, slotRepo SlotRepository, txManager TxManager, logger Logger) *UseCase {
	return &UseCase{
		vehicleRepo:  vehicleRepo,
		slotRepo:     slotRepo,
		txManager:    txManager,
		timeProvider: RealTimeProvider{},
		logger:       logger,
	}
}

// Execute performs the checkout and returns the computed fee. The sequence
// runs under the transaction manager so a second checkout of the same
// vehicle observes the record already gone instead of racing the release.
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
	uc.logger.Info("CheckoutVehicle: vehicle=%s", req.VehicleID)

	vehicle, err := uc.vehicleRepo.GetActiveByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			uc.logger.Warn("CheckoutVehicle: vehicle=%s not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CheckoutVehicle: failed to get vehicle=%s: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	if !vehicle.IsParked() {
		uc.logger.Warn("CheckoutVehicle: vehicle=%s has no assigned slot", req.VehicleID)
		return nil, ErrVehicleNotParked
	}
	slotID := *vehicle.SlotID

	exitTime := uc.timeProvider.Now()
	fee := domain.FeeFor(vehicle.Class, vehicle.EntryTime, exitTime)

	if err := uc.slotRepo.Release(ctx, slotID); err != nil {
		uc.logger.Error("CheckoutVehicle: failed to release slot=%s for vehicle=%s: %v",
			slotID, req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to release slot: %v", ErrInternal, err)
	}

	if err := uc.vehicleRepo.Checkout(ctx, req.VehicleID, exitTime, fee); err != nil {
		uc.logger.Error("CheckoutVehicle: failed to finalize vehicle=%s: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to finalize checkout: %v", ErrInternal, err)
	}

	uc.logger.Info("CheckoutVehicle: vehicle=%s checked out, slot=%s freed, fee=%d",
		req.VehicleID, slotID, fee)
	return &Response{
		VehicleID:   vehicle.ID,
		PlateNumber: vehicle.PlateNumber,
		FreedSlotID: slotID,
		EntryTime:   vehicle.EntryTime,
		ExitTime:    exitTime,
		Fee:         fee,
	}, nil
}
