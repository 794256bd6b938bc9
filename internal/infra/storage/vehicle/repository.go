package vehicle

import (
	"context"
	"sync"
	"time"

	"github.com/parkwise/parking-service/internal/domain"
	"github.com/parkwise/parking-service/pkg/ptr"
)

// Repository is the in-memory vehicle store: the currently active set plus
// the append-only history of every visit. An active vehicle and its history
// entry are one shared record, so checkout and payment writes are visible
// through both views. History records are never removed.
type Repository struct {
	mu      sync.RWMutex
	active  []*domain.Vehicle
	history []*domain.Vehicle
}

// NewRepository creates an empty vehicle store
func NewRepository() *Repository {
	return &Repository{}
}

// Create stores a new visit record. The plate number must not be present
// among active vehicles (case-insensitive); history may contain repeats
// across visits.
func (r *Repository) Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.active {
		if existing.SamePlate(v.PlateNumber) {
			return nil, ErrDuplicateActivePlate
		}
	}

	stored := *v
	r.active = append(r.active, &stored)
	r.history = append(r.history, &stored)

	copied := stored
	return &copied, nil
}

// GetActiveByID returns a copy of the active vehicle with the given id
func (r *Repository) GetActiveByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v := r.findActiveLocked(id)
	if v == nil {
		return nil, ErrVehicleNotFound
	}
	copied := *v
	return &copied, nil
}

// FindActiveByPlate returns a copy of the active vehicle with the given
// plate number (case-insensitive)
func (r *Repository) FindActiveByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.active {
		if v.SamePlate(plate) {
			copied := *v
			return &copied, nil
		}
	}
	return nil, ErrVehicleNotFound
}

// FindLatestHistoricalByPlate returns a copy of the most recent history
// record for the plate number, by entry time. Later-appended records win
// ties.
func (r *Repository) FindLatestHistoricalByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *domain.Vehicle
	for _, v := range r.history {
		if !v.SamePlate(plate) {
			continue
		}
		if latest == nil || !v.EntryTime.Before(latest.EntryTime) {
			latest = v
		}
	}
	if latest == nil {
		return nil, ErrVehicleNotFound
	}
	copied := *latest
	return &copied, nil
}

// ListActive returns copies of all currently active vehicles in
// registration order
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Vehicle, 0, len(r.active))
	for _, v := range r.active {
		copied := *v
		out = append(out, &copied)
	}
	return out, nil
}

// ListHistory returns copies of every visit ever recorded, in
// registration order
func (r *Repository) ListHistory(ctx context.Context) ([]*domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Vehicle, 0, len(r.history))
	for _, v := range r.history {
		copied := *v
		out = append(out, &copied)
	}
	return out, nil
}

// AssignSlot records the slot reference on an active vehicle
func (r *Repository) AssignSlot(ctx context.Context, id string, slotID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := r.findActiveLocked(id)
	if v == nil {
		return ErrVehicleNotFound
	}
	v.SlotID = ptr.Ptr(slotID)
	return nil
}

// Checkout stamps the exit time and fee on the record, clears the slot
// reference, and removes the vehicle from the active set. The history
// entry keeps the final state of the visit.
func (r *Repository) Checkout(ctx context.Context, id string, exitTime time.Time, fee int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, v := range r.active {
		if v.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrVehicleNotFound
	}

	v := r.active[idx]
	v.ExitTime = ptr.Ptr(exitTime)
	v.PaymentAmount = ptr.Ptr(fee)
	v.SlotID = nil

	r.active = append(r.active[:idx], r.active[idx+1:]...)
	return nil
}

// RecordPayment sets the payment mode on a checked-out history record
func (r *Repository) RecordPayment(ctx context.Context, id string, mode domain.PaymentMode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range r.history {
		if v.ID != id {
			continue
		}
		if v.ExitTime == nil {
			return ErrVehicleNotCheckedOut
		}
		v.PaymentMode = mode
		return nil
	}
	return ErrVehicleNotFound
}

func (r *Repository) findActiveLocked(id string) *domain.Vehicle {
	for _, v := range r.active {
		if v.ID == id {
			return v
		}
	}
	return nil
}
