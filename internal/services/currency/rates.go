package currency

import (
	"github.com/shopspring/decimal"

	"kusuma/internal/models"
)

// RatePair keys the rate table by the ordered (from, to) pair.
type RatePair struct {
	From models.Currency
	To   models.Currency
}

// RateTable maps ordered currency pairs to their bilateral rate: 1 unit of
// From buys Rate units of To. The declared values are authoritative; a pair
// is never derived by inverting its mirror entry, so rate(A,B)*rate(B,A)
// may not be exactly 1.
type RateTable map[RatePair]decimal.Decimal

// DefaultTable returns the static marketplace rate table, approximate
// real-world rates as of early 2026.
func DefaultTable() RateTable {
	return RateTable{
		{models.CurrencyIDR, models.CurrencyIDR}: decimal.NewFromInt(1),
		{models.CurrencyIDR, models.CurrencyTHB}: decimal.RequireFromString("0.002268"),
		{models.CurrencyIDR, models.CurrencyVND}: decimal.RequireFromString("1.5500"),
		{models.CurrencyTHB, models.CurrencyIDR}: decimal.RequireFromString("440.99"),
		{models.CurrencyTHB, models.CurrencyTHB}: decimal.NewFromInt(1),
		{models.CurrencyTHB, models.CurrencyVND}: decimal.RequireFromString("683.50"),
		{models.CurrencyVND, models.CurrencyIDR}: decimal.RequireFromString("0.6452"),
		{models.CurrencyVND, models.CurrencyTHB}: decimal.RequireFromString("0.001463"),
		{models.CurrencyVND, models.CurrencyVND}: decimal.NewFromInt(1),
	}
}
