package payout

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kusuma/internal/models"
)

func TestLinkRefunds(t *testing.T) {
	capAt := time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC)
	all := []models.Transaction{
		capturedTxn("T-0001", "1000", models.CurrencyIDR, capAt),
		capturedTxn("T-0002", "2000", models.CurrencyIDR, capAt),
		linkedTxn("R-0001", "T-0001", "400", models.CurrencyIDR,
			models.StatusRefunded, date(2026, time.March, 1)),
		linkedTxn("CB-0001", "T-0001", "600", models.CurrencyIDR,
			models.StatusChargeback, date(2026, time.April, 1)),
		// Parent outside the captured set: not linked.
		linkedTxn("R-0002", "T-0099", "100", models.CurrencyIDR,
			models.StatusRefunded, date(2026, time.January, 10)),
	}
	capturedIDs := map[string]struct{}{"T-0001": {}, "T-0002": {}}

	refundMap := linkRefunds(all, capturedIDs)

	require.Len(t, refundMap, 2)

	// Linked refunds keep scan order, regardless of their own dates.
	require.Len(t, refundMap["T-0001"], 2)
	assert.Equal(t, "R-0001", refundMap["T-0001"][0].ID)
	assert.Equal(t, "CB-0001", refundMap["T-0001"][1].ID)

	// A captured id with no refunds maps to an empty list.
	assert.Empty(t, refundMap["T-0002"])
}

func TestLinkRefunds_IgnoresNonRefundStatuses(t *testing.T) {
	capAt := time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC)
	parent := "T-0001"
	all := []models.Transaction{
		capturedTxn("T-0001", "1000", models.CurrencyIDR, capAt),
		{
			ID:                  "T-0002",
			SellerID:            "S-001",
			BuyerID:             "B-0001",
			Amount:              decimal.RequireFromString("500"),
			Currency:            models.CurrencyIDR,
			Status:              models.StatusCaptured,
			CreatedAt:           capAt,
			CapturedAt:          &capAt,
			ParentTransactionID: &parent, // bogus, but status rules it out
		},
	}

	refundMap := linkRefunds(all, map[string]struct{}{"T-0001": {}})
	assert.Empty(t, refundMap["T-0001"])
}
