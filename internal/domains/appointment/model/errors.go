package model

import "errors"

var (
	// ErrSlotTaken is a capacity or uniqueness rejection of a create.
	ErrSlotTaken = errors.New("slot is no longer available")
	// ErrIDMismatch means the backend rejected the customer id representation.
	ErrIDMismatch = errors.New("customer id does not match the procedure variant")
	// ErrMissingColumn means the selected profile names a column the view lacks.
	ErrMissingColumn = errors.New("listing view is missing a column")
	ErrNotFound      = errors.New("appointment not found")
)
