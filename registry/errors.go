package registry

import "errors"

// Every operation fails with exactly one of these, so callers can branch on
// the condition instead of matching message text.
var (
	ErrUnauthorized     = errors.New("only the administrator may list items")
	ErrDurationExceeded = errors.New("rental duration exceeds the allowed maximum")
	ErrNoAvailability   = errors.New("no available item of that category")
	ErrNotRented        = errors.New("item is not rented")
	ErrNotYetEligible   = errors.New("rental period has not elapsed yet")
	ErrIndexOutOfRange  = errors.New("no item at that index")
)
