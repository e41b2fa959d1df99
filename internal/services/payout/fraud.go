package payout

import (
	"fmt"

	"kusuma/internal/models"
)

// Refund-ratio threshold above which a seller-level flag is raised.
const refundRateThreshold = 0.30

// detectFraud derives advisory flags from the window's captured
// transactions and their refund links. It never blocks or alters the
// payout computation.
//
// The mean and ratio math here is deliberately float64: the flags are
// non-authoritative, and approximate real arithmetic is acceptable for
// them in a way it never is for the monetary figures.
func detectFraud(captured []models.Transaction, refundMap map[string][]models.Transaction) []models.FraudFlag {
	flags := make([]models.FraudFlag, 0)
	if len(captured) == 0 {
		return flags
	}

	var sum float64
	for _, t := range captured {
		sum += t.Amount.InexactFloat64()
	}
	avg := sum / float64(len(captured))

	for _, t := range captured {
		amt := t.Amount.InexactFloat64()
		if amt <= avg*3 {
			continue
		}
		severity := models.SeverityMedium
		if amt > avg*5 {
			severity = models.SeverityHigh
		}
		flags = append(flags, models.FraudFlag{
			TransactionID: t.ID,
			Reason: fmt.Sprintf("Amount %s %s is %.1fx the period average",
				t.Amount.StringFixed(2), t.Currency, amt/avg),
			Severity: severity,
		})
	}

	refunded := 0
	for _, t := range captured {
		if len(refundMap[t.ID]) > 0 {
			refunded++
		}
	}
	ratio := float64(refunded) / float64(len(captured))
	if ratio > refundRateThreshold {
		flags = append(flags, models.FraudFlag{
			TransactionID: "SELLER",
			Reason: fmt.Sprintf("High refund rate: %d/%d transactions refunded (%.0f%%)",
				refunded, len(captured), ratio*100),
			Severity: models.SeverityMedium,
		})
	}

	return flags
}
