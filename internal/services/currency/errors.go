package currency

import "errors"

var (
	// ErrUnknownRatePair is returned when the rate table has no entry for
	// the requested currency pair. The table is static, so retrying cannot
	// change the outcome.
	ErrUnknownRatePair = errors.New("no exchange rate for currency pair")
)
