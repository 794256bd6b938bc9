package vehicles

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/parkwise/parking-service/internal/domain"
	vehicleRepo "github.com/parkwise/parking-service/internal/infra/storage/vehicle"
	"github.com/parkwise/parking-service/internal/service/vehicles/models"
)

// Service owns vehicle registration, lookup and payment recording
type Service struct {
	vehicleRepo  VehicleRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates a new vehicles service
func NewService(vehicleRepo VehicleRepository, logger Logger) *Service {
	return &Service{
		vehicleRepo:  vehicleRepo,
		timeProvider: RealTimeProvider{},
		logger:       logger,
	}
}

// Register creates a new visit record with a fresh id and the current time
// as entry time. The plate number must not already be active.
func (s *Service) Register(ctx context.Context, req *models.RegisterVehicleRequest) (*models.VehicleResponse, error) {
	s.logger.Info("Register: plate=%s class=%s", req.PlateNumber, req.Class)

	v := &domain.Vehicle{
		ID:          uuid.NewString(),
		PlateNumber: req.PlateNumber,
		OwnerName:   req.OwnerName,
		Class:       req.Class,
		EntryTime:   s.timeProvider.Now(),
		PaymentMode: domain.PaymentPending,
	}

	created, err := s.vehicleRepo.Create(ctx, v)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrDuplicateActivePlate) {
			s.logger.Warn("Register: plate=%s already active", req.PlateNumber)
			return nil, ErrDuplicatePlate
		}
		s.logger.Error("Register: repository error for plate=%s: %v", req.PlateNumber, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: registered vehicle id=%s plate=%s", created.ID, created.PlateNumber)
	return models.FromDomainVehicle(created), nil
}

// FindByPlate looks up a vehicle by plate number, case-insensitively.
// An active match always wins over historical ones; otherwise the history
// record with the latest entry time is returned.
func (s *Service) FindByPlate(ctx context.Context, plate string) (*models.VehicleResponse, error) {
	s.logger.Info("FindByPlate: plate=%s", plate)

	active, err := s.vehicleRepo.FindActiveByPlate(ctx, plate)
	if err == nil {
		return models.FromDomainVehicle(active), nil
	}
	if !errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
		s.logger.Error("FindByPlate: repository error for plate=%s: %v", plate, err)
		return nil, fmt.Errorf("%w: FindByPlate - repository error: %v", ErrInternal, err)
	}

	historical, err := s.vehicleRepo.FindLatestHistoricalByPlate(ctx, plate)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("FindByPlate: plate=%s not found", plate)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("FindByPlate: repository error for plate=%s: %v", plate, err)
		return nil, fmt.Errorf("%w: FindByPlate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVehicle(historical), nil
}

// ListActive returns all currently active vehicles
func (s *Service) ListActive(ctx context.Context) ([]*models.VehicleResponse, error) {
	vehicles, err := s.vehicleRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActive - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainVehicleList(vehicles), nil
}

// ListHistory returns every visit ever recorded
func (s *Service) ListHistory(ctx context.Context) ([]*models.VehicleResponse, error) {
	vehicles, err := s.vehicleRepo.ListHistory(ctx)
	if err != nil {
		s.logger.Error("ListHistory: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListHistory - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainVehicleList(vehicles), nil
}

// RecordPayment stores the payment mode on a checked-out visit record
func (s *Service) RecordPayment(ctx context.Context, vehicleID string, mode string) error {
	s.logger.Info("RecordPayment: vehicle=%s mode=%s", vehicleID, mode)

	paymentMode, ok := domain.ParsePaymentMode(mode)
	if !ok {
		s.logger.Warn("RecordPayment: invalid mode=%s for vehicle=%s", mode, vehicleID)
		return ErrInvalidPaymentMode
	}

	if err := s.vehicleRepo.RecordPayment(ctx, vehicleID, paymentMode); err != nil {
		switch {
		case errors.Is(err, vehicleRepo.ErrVehicleNotFound):
			s.logger.Warn("RecordPayment: vehicle=%s not found", vehicleID)
			return ErrVehicleNotFound
		case errors.Is(err, vehicleRepo.ErrVehicleNotCheckedOut):
			s.logger.Warn("RecordPayment: vehicle=%s not checked out", vehicleID)
			return ErrVehicleNotCheckedOut
		default:
			s.logger.Error("RecordPayment: repository error for vehicle=%s: %v", vehicleID, err)
			return fmt.Errorf("%w: RecordPayment - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("RecordPayment: recorded mode=%s for vehicle=%s", paymentMode, vehicleID)
	return nil
}
