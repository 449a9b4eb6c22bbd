package domain

import "errors"

var (
	ErrSpaceNotFound   = errors.New("coworkingspace not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
)

var (
	ErrRoomLimit     = errors.New("user can reserve 1-3 rooms")
	ErrDuplicateName = errors.New("coworkingspace name is already taken")
	ErrValidation    = errors.New("validation error")
)

var (
	ErrForbidden = errors.New("user is not authorized to perform this action")
)

// ErrCascadeIncomplete marks a space deletion that failed after its
// dependent bookings may already have been removed. Never reported as
// success so operators can remediate.
var ErrCascadeIncomplete = errors.New("cascade delete did not run to completion")
