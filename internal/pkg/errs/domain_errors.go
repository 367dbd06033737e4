package errs

import "errors"

// Sentinel errors shared by the usecase layers.
var (
	// Voucher errors
	ErrVoucherNotFound = errors.New("voucher not found")
	ErrUnknownType     = errors.New("unknown voucher type")

	// Feature gating
	ErrPrinterDisabled = errors.New("printer not configured")
	ErrMailerDisabled  = errors.New("mail transport not configured")

	// Auth errors
	ErrInvalidPassword = errors.New("invalid password")
)
