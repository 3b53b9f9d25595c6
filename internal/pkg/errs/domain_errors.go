package errs

import "errors"

// Domain-specific sentinel errors for the scheduling usecase layers
var (
	// Master-data validation errors
	ErrSalonNotFound      = errors.New("salon not found")
	ErrStaffNotFound      = errors.New("staff not found")
	ErrServiceNotFound    = errors.New("service not found")
	ErrStaffInactive      = errors.New("staff is not active")
	ErrServiceInactive    = errors.New("service is not active")
	ErrStaffSalonMismatch = errors.New("staff does not belong to salon")
	ErrNoStaffAvailable   = errors.New("no active staff available")
	ErrInvalidTimeRange   = errors.New("invalid time range")

	// Booking errors
	ErrBookingNotFound      = errors.New("booking not found")
	ErrStaffConflict        = errors.New("staff already booked in that interval")
	ErrClientConflict       = errors.New("client already has an overlapping booking")
	ErrClientAlreadyBooked  = errors.New("client already has an active booking at this salon")
	ErrBookingNotCancelable = errors.New("booking can no longer be canceled")

	// Concurrency errors
	ErrConcurrencyExhausted = errors.New("transaction failed after max attempts")

	// External dependency errors
	ErrNotificationFailed = errors.New("notification delivery failed")
)
