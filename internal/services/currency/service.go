// Package currency provides fixed-point conversion between the
// marketplace's settlement currencies using a static bilateral rate table.
package currency

import (
	"fmt"

	"github.com/shopspring/decimal"

	"kusuma/internal/models"
)

// Converter looks up rates from an injected, immutable table. It holds no
// other state and is safe for concurrent use.
type Converter struct {
	table RateTable
}

// NewConverter creates a converter over the given table. Callers must not
// mutate the table after handing it over.
func NewConverter(table RateTable) *Converter {
	return &Converter{table: table}
}

// Rate returns the bilateral rate for the ordered (from, to) pair.
func (c *Converter) Rate(from, to models.Currency) (decimal.Decimal, error) {
	rate, ok := c.table[RatePair{From: from, To: to}]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s -> %s", ErrUnknownRatePair, from, to)
	}
	return rate, nil
}

// Convert multiplies amount by the pair's rate and rounds the product to
// 2 decimal places, half to even. The rate used is returned for audit
// display alongside the converted amount.
func (c *Converter) Convert(amount decimal.Decimal, from, to models.Currency) (decimal.Decimal, decimal.Decimal, error) {
	rate, err := c.Rate(from, to)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return amount.Mul(rate).RoundBank(2), rate, nil
}
