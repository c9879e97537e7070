package errs

import "errors"

// Sentinel errors shared by the usecase layers and mapped to HTTP statuses by the handlers.
var (
	// Generic
	ErrNotFound         = errors.New("not found")
	ErrDomainValidation = errors.New("domain validation error")
	ErrForbidden        = errors.New("forbidden")

	// Reservation errors
	ErrReservationNotFound     = errors.New("reservation not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrInvalidTimeRange        = errors.New("invalid time range")

	// Payment errors
	ErrPaymentNotFound = errors.New("payment not found")
	ErrInvalidAmount   = errors.New("invalid amount")

	// User / fee errors
	ErrUserNotFound = errors.New("user not found")
	ErrFeeNotFound  = errors.New("fee not found")

	// Report errors
	ErrUnknownReportKind = errors.New("unknown report kind")

	// Operation errors
	ErrStoreOperationFailed = errors.New("store operation failed")
	ErrExportFailed         = errors.New("export failed")
)
