package seller

import "errors"

var (
	// Not Found
	ErrSellerNotFound    = errors.New("seller not found")
	ErrUnknownShopStatus = errors.New("unknown shop status id")

	// Invalid input / state
	ErrInvalidTransition = errors.New("invalid shop status transition")
	ErrTooManyManagers   = errors.New("managers exceed maximum of 3")
	ErrInvalidPagination = errors.New("offset should not be greater than limit")
)
