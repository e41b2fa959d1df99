package payout

import "kusuma/internal/models"

// linkRefunds maps each captured transaction id to its refunds and
// chargebacks, in scan order. A refund is linked whenever its parent is in
// the captured set, irrespective of the refund's own timestamp: a refund
// issued after the payout window closed still reduces the payout for the
// window its parent was captured in. Captured ids with no refunds map to
// an empty list.
func linkRefunds(all []models.Transaction, capturedIDs map[string]struct{}) map[string][]models.Transaction {
	refundMap := make(map[string][]models.Transaction, len(capturedIDs))
	for id := range capturedIDs {
		refundMap[id] = nil
	}

	for _, t := range all {
		if t.Status != models.StatusRefunded && t.Status != models.StatusChargeback {
			continue
		}
		if t.ParentTransactionID == nil {
			continue
		}
		if _, ok := capturedIDs[*t.ParentTransactionID]; !ok {
			continue
		}
		refundMap[*t.ParentTransactionID] = append(refundMap[*t.ParentTransactionID], t)
	}

	return refundMap
}
