package errs

import "errors"

// Error kinds surfaced by scheduling operations. Domain errors are marked with one of these.
var (
	ErrValidation        = errors.New("validation error")
	ErrPastDate          = errors.New("scheduled time is in the past")
	ErrSlotUnavailable   = errors.New("slot unavailable")
	ErrNotFound          = errors.New("not found")
	ErrAlreadyClaimed    = errors.New("help request already claimed")
	ErrAlreadyResolved   = errors.New("help request already resolved")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrForbidden         = errors.New("forbidden")
)

var kinds = []error{
	ErrValidation,
	ErrPastDate,
	ErrSlotUnavailable,
	ErrNotFound,
	ErrAlreadyClaimed,
	ErrAlreadyResolved,
	ErrInvalidTransition,
	ErrForbidden,
}
