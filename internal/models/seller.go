package models

import "github.com/shopspring/decimal"

// Currency is the closed set of currencies the marketplace settles in.
type Currency string

const (
	CurrencyIDR Currency = "IDR"
	CurrencyTHB Currency = "THB"
	CurrencyVND Currency = "VND"
)

// Seller is immutable reference data owned by the ledger. The payout
// engine only ever reads it.
type Seller struct {
	ID                 string          `json:"id" gorm:"primarykey;size:32"`
	Name               string          `json:"name" gorm:"not null"`
	CommissionRate     decimal.Decimal `json:"commission_rate" gorm:"type:decimal(6,4);not null"`
	SettlementCurrency Currency        `json:"settlement_currency" gorm:"type:varchar(3);not null"`
	Country            string          `json:"country"`
	Email              string          `json:"email"`
}
