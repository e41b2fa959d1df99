package payout

import (
	"github.com/shopspring/decimal"

	"kusuma/internal/models"
)

// buildLineItem computes one captured transaction's audit record.
//
// All arithmetic before conversion happens in the original currency.
// Commission applies to the post-refund amount, never to gross. Each of
// gross, refunds, commission and net is then converted to the settlement
// currency and rounded to 2 dp on its own; the converted parts are not
// re-derived from each other, so they may drift by a cent when re-added.
// That per-component rounding is the contract, not an accident.
func (s *Service) buildLineItem(txn models.Transaction, linked []models.Transaction, seller *models.Seller) (models.TransactionLineItem, error) {
	totalRefundedOrig := decimal.Zero
	for _, r := range linked {
		totalRefundedOrig = totalRefundedOrig.Add(r.Amount)
	}

	// Refunds exceeding the original amount clamp to zero, never negative.
	netAfterRefundsOrig := clampZero(txn.Amount.Sub(totalRefundedOrig))

	commissionOrig := netAfterRefundsOrig.Mul(seller.CommissionRate).RoundBank(2)
	netOrig := netAfterRefundsOrig.Sub(commissionOrig)

	sc := seller.SettlementCurrency
	convertedGross, rate, err := s.converter.Convert(txn.Amount, txn.Currency, sc)
	if err != nil {
		return models.TransactionLineItem{}, err
	}
	convertedRefunds, _, err := s.converter.Convert(totalRefundedOrig, txn.Currency, sc)
	if err != nil {
		return models.TransactionLineItem{}, err
	}
	convertedCommission, _, err := s.converter.Convert(commissionOrig, txn.Currency, sc)
	if err != nil {
		return models.TransactionLineItem{}, err
	}
	convertedNet, _, err := s.converter.Convert(netOrig, txn.Currency, sc)
	if err != nil {
		return models.TransactionLineItem{}, err
	}

	refunds := make([]models.RefundDetail, 0, len(linked))
	for _, r := range linked {
		refunds = append(refunds, models.RefundDetail{
			RefundID: r.ID,
			Amount:   r.Amount,
			Currency: r.Currency,
			Status:   r.Status,
			Date:     r.CreatedAt,
		})
	}

	return models.TransactionLineItem{
		TransactionID:          txn.ID,
		CapturedAt:             *txn.CapturedAt,
		OriginalAmount:         txn.Amount,
		OriginalCurrency:       txn.Currency,
		ConvertedGross:         convertedGross,
		ExchangeRate:           rate,
		Refunds:                refunds,
		TotalRefundedConverted: convertedRefunds,
		GrossAfterRefunds:      clampZero(convertedGross.Sub(convertedRefunds)),
		CommissionRate:         seller.CommissionRate,
		CommissionAmount:       convertedCommission,
		NetPayout:              convertedNet,
	}, nil
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
