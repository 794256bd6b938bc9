package slotinv

import (
	"context"
	"fmt"
	"sync"

	"github.com/parkwise/parking-service/internal/domain"
)

// Repository is the in-memory slot inventory. The layout is generated once
// at construction and never resized; only the occupancy flag mutates.
// Guarded by a RWMutex because the HTTP server drives it from concurrent
// requests and occupy/release are read-check-then-write sequences.
type Repository struct {
	mu    sync.RWMutex
	slots []*domain.ParkingSlot
	byID  map[string]*domain.ParkingSlot
}

// NewRepository generates the fixed inventory: 3 floors, each with
// 10 CAR + 15 BIKE + 5 TRUCK slots, display numbers sequential across
// the whole facility.
func NewRepository() *Repository {
	r := &Repository{
		byID: make(map[string]*domain.ParkingSlot, domain.TotalSlots),
	}

	number := 1
	for floor := 1; floor <= domain.Floors; floor++ {
		for _, class := range []domain.VehicleClass{domain.ClassCar, domain.ClassBike, domain.ClassTruck} {
			for i := 1; i <= domain.SlotsPerFloorByClass(class); i++ {
				slot := &domain.ParkingSlot{
					ID:     fmt.Sprintf("%d-%s-%d", floor, class.SlotCode(), i),
					Number: number,
					Class:  class,
					Floor:  floor,
				}
				r.slots = append(r.slots, slot)
				r.byID[slot.ID] = slot
				number++
			}
		}
	}

	return r
}

// GetByID returns a copy of the slot with the given id
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.ParkingSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slot, ok := r.byID[id]
	if !ok {
		return nil, ErrSlotNotFound
	}
	copied := *slot
	return &copied, nil
}

// List returns copies of all slots in inventory order
func (r *Repository) List(ctx context.Context) ([]*domain.ParkingSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.ParkingSlot, 0, len(r.slots))
	for _, slot := range r.slots {
		copied := *slot
		out = append(out, &copied)
	}
	return out, nil
}

// ListAvailableByClass returns copies of all unoccupied slots of the given
// class, in inventory order
func (r *Repository) ListAvailableByClass(ctx context.Context, class domain.VehicleClass) ([]*domain.ParkingSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.ParkingSlot, 0)
	for _, slot := range r.slots {
		if slot.Class == class && !slot.IsOccupied {
			copied := *slot
			out = append(out, &copied)
		}
	}
	return out, nil
}

// Occupy marks a slot as taken. Fails if the slot is unknown or already
// occupied; the check and the flip happen under one lock.
func (r *Repository) Occupy(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.byID[id]
	if !ok {
		return ErrSlotNotFound
	}
	if slot.IsOccupied {
		return ErrSlotOccupied
	}
	slot.IsOccupied = true
	return nil
}

// Release marks a slot as free. Fails if the slot is unknown or not occupied.
func (r *Repository) Release(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.byID[id]
	if !ok {
		return ErrSlotNotFound
	}
	if !slot.IsOccupied {
		return ErrSlotNotOccupied
	}
	slot.IsOccupied = false
	return nil
}

// OccupiedCount returns the number of currently occupied slots.
// Used by the occupancy metrics gauge.
func (r *Repository) OccupiedCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, slot := range r.slots {
		if slot.IsOccupied {
			count++
		}
	}
	return count
}
