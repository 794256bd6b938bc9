package slots

import (
	"context"
	"fmt"

	"github.com/parkwise/parking-service/internal/domain"
	"github.com/parkwise/parking-service/internal/service/slots/models"
)

// Service exposes read access to the slot inventory
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService creates a new slots service
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// ListAll returns every slot in the facility, in inventory order
func (s *Service) ListAll(ctx context.Context) ([]*models.SlotResponse, error) {
	slots, err := s.slotRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSlotList(slots), nil
}

// ListAvailable returns all unoccupied slots accepting the given class
func (s *Service) ListAvailable(ctx context.Context, class string) ([]*models.SlotResponse, error) {
	vehicleClass, ok := domain.ParseVehicleClass(class)
	if !ok {
		s.logger.Warn("ListAvailable: invalid class=%s", class)
		return nil, ErrInvalidVehicleClass
	}

	slots, err := s.slotRepo.ListAvailableByClass(ctx, vehicleClass)
	if err != nil {
		s.logger.Error("ListAvailable: repository error for class=%s: %v", vehicleClass, err)
		return nil, fmt.Errorf("%w: ListAvailable - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAvailable: %d available slots for class=%s", len(slots), vehicleClass)
	return models.FromDomainSlotList(slots), nil
}
