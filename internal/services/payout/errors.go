package payout

import "errors"

var (
	// ErrSellerNotFound is returned when the ledger has no seller with the
	// requested id. Surfaced to callers as a not-found condition.
	ErrSellerNotFound = errors.New("seller not found")
)
