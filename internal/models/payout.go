package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlagSeverity grades advisory fraud flags.
type FlagSeverity string

const (
	SeverityMedium FlagSeverity = "medium"
	SeverityHigh   FlagSeverity = "high"
)

// FraudFlag is an advisory signal attached to a payout summary. It never
// alters the computed monetary totals.
type FraudFlag struct {
	TransactionID string       `json:"transaction_id"`
	Reason        string       `json:"reason"`
	Severity      FlagSeverity `json:"severity"`
}

// RefundDetail is the audit view of one refund or chargeback linked to a
// captured transaction.
type RefundDetail struct {
	RefundID string            `json:"refund_id"`
	Amount   decimal.Decimal   `json:"amount"`
	Currency Currency          `json:"currency"`
	Status   TransactionStatus `json:"status"`
	Date     time.Time         `json:"date"`
}

// TransactionLineItem is the per-transaction audit record inside a payout
// summary, carrying both original- and settlement-currency figures.
type TransactionLineItem struct {
	TransactionID          string          `json:"transaction_id"`
	CapturedAt             time.Time       `json:"captured_at"`
	OriginalAmount         decimal.Decimal `json:"original_amount"`
	OriginalCurrency       Currency        `json:"original_currency"`
	ConvertedGross         decimal.Decimal `json:"converted_gross"`
	ExchangeRate           decimal.Decimal `json:"exchange_rate"`
	Refunds                []RefundDetail  `json:"refunds"`
	TotalRefundedConverted decimal.Decimal `json:"total_refunded_converted"`
	GrossAfterRefunds      decimal.Decimal `json:"gross_after_refunds"`
	CommissionRate         decimal.Decimal `json:"commission_rate"`
	CommissionAmount       decimal.Decimal `json:"commission_amount"`
	NetPayout              decimal.Decimal `json:"net_payout"`
}

// PayoutSummary is the result of one payout computation: period totals in
// the seller's settlement currency plus the per-transaction breakdown and
// fraud flags. Built fresh on every request, never persisted.
type PayoutSummary struct {
	SellerID           string                `json:"seller_id"`
	SellerName         string                `json:"seller_name"`
	CommissionRate     decimal.Decimal       `json:"commission_rate"`
	PeriodStart        string                `json:"period_start"`
	PeriodEnd          string                `json:"period_end"`
	SettlementCurrency Currency              `json:"settlement_currency"`
	GrossVolume        decimal.Decimal       `json:"gross_volume"`
	CommissionDeducted decimal.Decimal       `json:"commission_deducted"`
	RefundsDeducted    decimal.Decimal       `json:"refunds_deducted"`
	NetPayout          decimal.Decimal       `json:"net_payout"`
	TransactionCount   int                   `json:"transaction_count"`
	RefundCount        int                   `json:"refund_count"`
	FraudFlags         []FraudFlag           `json:"fraud_flags"`
	Breakdown          []TransactionLineItem `json:"breakdown"`
}
