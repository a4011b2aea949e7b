// Package services holds the booking core: the inventory and reservation
// stores, the booking service that is the only writer to both, and the
// adapters (tool + chat) that sit between the stores and the language model.
//
// The sentinel errors below are the recoverable failure modes of the booking
// core. Handlers and the tool adapter distinguish them with errors.Is; any
// other error is a storage-level fault.
package services

import "errors"

// ErrRoomNotFound is returned for an explicit room lookup that misses.
// Empty-result filters are not an error.
var ErrRoomNotFound = errors.New("room not found")

// ErrInvalidRange is returned when check-in is not strictly before
// check-out, before storage is touched.
var ErrInvalidRange = errors.New("check-in date must be before check-out date")

// ErrConflict is returned when a confirmed reservation already overlaps the
// requested date range.
var ErrConflict = errors.New("room unavailable for requested dates")

// ErrIntegrity is returned when a reservation insert references a room that
// does not exist in the inventory.
var ErrIntegrity = errors.New("reservation references unknown room")

// ErrGuestRequired is returned when the guest name is empty after trimming.
var ErrGuestRequired = errors.New("guest name is required")
