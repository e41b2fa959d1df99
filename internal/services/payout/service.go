package payout

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"kusuma/internal/models"
	"kusuma/internal/services/currency"
)

const dateLayout = "2006-01-02"

// Service is the payout engine. It composes refund linkage, line-item
// computation, aggregation and fraud detection against ledger data for
// one seller/date-range request. It performs no ledger writes.
type Service struct {
	ledger    Ledger
	converter *currency.Converter
}

// NewService creates a payout engine over the given ledger and converter.
func NewService(ledger Ledger, converter *currency.Converter) *Service {
	if ledger == nil {
		panic("ledger is required")
	}
	if converter == nil {
		panic("converter is required")
	}
	return &Service{ledger: ledger, converter: converter}
}

// CalculatePayout computes the payout summary for one seller and an
// inclusive [start, end] date window. Callers are responsible for
// start <= end; the engine does not re-check it.
func (s *Service) CalculatePayout(ctx context.Context, sellerID string, start, end time.Time) (*models.PayoutSummary, error) {
	seller, err := s.ledger.GetSeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("get seller: %w", err)
	}
	if seller == nil {
		return nil, fmt.Errorf("%w: %q", ErrSellerNotFound, sellerID)
	}

	// Single snapshot; everything below runs against it.
	all, err := s.ledger.GetTransactionsForSeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("get transactions: %w", err)
	}

	captured := filterCaptured(all, start, end)

	// Stable sort keyed solely on capture timestamp keeps equal-timestamp
	// ordering identical across repeated runs.
	sort.SliceStable(captured, func(i, j int) bool {
		return captured[i].CapturedAt.Before(*captured[j].CapturedAt)
	})

	capturedIDs := make(map[string]struct{}, len(captured))
	for _, t := range captured {
		capturedIDs[t.ID] = struct{}{}
	}
	refundMap := linkRefunds(all, capturedIDs)

	lineItems := make([]models.TransactionLineItem, 0, len(captured))
	for _, txn := range captured {
		item, err := s.buildLineItem(txn, refundMap[txn.ID], seller)
		if err != nil {
			return nil, fmt.Errorf("line item for %s: %w", txn.ID, err)
		}
		lineItems = append(lineItems, item)
	}

	totalGross := decimal.Zero
	totalCommission := decimal.Zero
	totalRefunds := decimal.Zero
	totalNet := decimal.Zero
	refundCount := 0
	for _, item := range lineItems {
		totalGross = totalGross.Add(item.ConvertedGross)
		totalCommission = totalCommission.Add(item.CommissionAmount)
		totalRefunds = totalRefunds.Add(item.TotalRefundedConverted)
		totalNet = totalNet.Add(item.NetPayout)
		refundCount += len(item.Refunds)
	}

	return &models.PayoutSummary{
		SellerID:           sellerID,
		SellerName:         seller.Name,
		CommissionRate:     seller.CommissionRate,
		PeriodStart:        start.Format(dateLayout),
		PeriodEnd:          end.Format(dateLayout),
		SettlementCurrency: seller.SettlementCurrency,
		GrossVolume:        totalGross.RoundBank(2),
		CommissionDeducted: totalCommission.RoundBank(2),
		RefundsDeducted:    totalRefunds.RoundBank(2),
		NetPayout:          totalNet.RoundBank(2),
		TransactionCount:   len(captured),
		RefundCount:        refundCount,
		FraudFlags:         detectFraud(captured, refundMap),
		Breakdown:          lineItems,
	}, nil
}

// filterCaptured keeps transactions that are captured, carry a capture
// timestamp, and whose capture DATE falls inside [start, end] inclusive.
// Time-of-day is dropped before comparing.
func filterCaptured(all []models.Transaction, start, end time.Time) []models.Transaction {
	lo := dateOnly(start)
	hi := dateOnly(end)

	var captured []models.Transaction
	for _, t := range all {
		if t.Status != models.StatusCaptured || t.CapturedAt == nil {
			continue
		}
		d := dateOnly(*t.CapturedAt)
		if d.Before(lo) || d.After(hi) {
			continue
		}
		captured = append(captured, t)
	}
	return captured
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
