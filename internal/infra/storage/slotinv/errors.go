package slotinv

import "errors"

var (
	// ErrSlotNotFound is returned when no slot exists with the given id
	ErrSlotNotFound = errors.New("slotinv.repository: slot not found")

	// ErrSlotOccupied is returned when occupying a slot that is already taken
	ErrSlotOccupied = errors.New("slotinv.repository: slot already occupied")

	// ErrSlotNotOccupied is returned when releasing a slot that is already free
	ErrSlotNotOccupied = errors.New("slotinv.repository: slot not occupied")
)
