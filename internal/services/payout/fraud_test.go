package payout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kusuma/internal/models"
)

func TestDetectFraud_EmptyCapturedList(t *testing.T) {
	flags := detectFraud(nil, map[string][]models.Transaction{})
	assert.Empty(t, flags)
}

func TestDetectFraud_AmountOutliers(t *testing.T) {
	capAt := time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC)

	t.Run("above 3x average is medium", func(t *testing.T) {
		// avg = 325; 1000 > 975 but not > 1625.
		captured := []models.Transaction{
			capturedTxn("T-0001", "100", models.CurrencyIDR, capAt),
			capturedTxn("T-0002", "100", models.CurrencyIDR, capAt),
			capturedTxn("T-0003", "100", models.CurrencyIDR, capAt),
			capturedTxn("T-0004", "1000", models.CurrencyIDR, capAt),
		}
		flags := detectFraud(captured, map[string][]models.Transaction{})

		require.Len(t, flags, 1)
		assert.Equal(t, "T-0004", flags[0].TransactionID)
		assert.Equal(t, models.SeverityMedium, flags[0].Severity)
		assert.Contains(t, flags[0].Reason, "the period average")
		assert.Contains(t, flags[0].Reason, "IDR")
	})

	t.Run("above 5x average is high", func(t *testing.T) {
		// Nine small transactions keep the mean low enough for the
		// outlier to clear 5x: avg = 1090, 5x = 5450 < 10000.
		captured := make([]models.Transaction, 0, 10)
		for i := 0; i < 9; i++ {
			captured = append(captured,
				capturedTxn("T-000"+string(rune('1'+i)), "100", models.CurrencyIDR, capAt))
		}
		captured = append(captured, capturedTxn("T-0010", "10000", models.CurrencyIDR, capAt))

		flags := detectFraud(captured, map[string][]models.Transaction{})

		require.Len(t, flags, 1)
		assert.Equal(t, "T-0010", flags[0].TransactionID)
		assert.Equal(t, models.SeverityHigh, flags[0].Severity)
	})

	t.Run("exactly 3x average is not flagged", func(t *testing.T) {
		// avg = 300; 900 == 3x exactly, threshold is strict.
		captured := []models.Transaction{
			capturedTxn("T-0001", "100", models.CurrencyIDR, capAt),
			capturedTxn("T-0002", "100", models.CurrencyIDR, capAt),
			capturedTxn("T-0003", "100", models.CurrencyIDR, capAt),
			capturedTxn("T-0004", "900", models.CurrencyIDR, capAt),
		}
		flags := detectFraud(captured, map[string][]models.Transaction{})
		assert.Empty(t, flags)
	})
}

func TestDetectFraud_RefundRate(t *testing.T) {
	capAt := time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC)
	captured := []models.Transaction{
		capturedTxn("T-0001", "100", models.CurrencyIDR, capAt),
		capturedTxn("T-0002", "100", models.CurrencyIDR, capAt),
		capturedTxn("T-0003", "100", models.CurrencyIDR, capAt),
		capturedTxn("T-0004", "100", models.CurrencyIDR, capAt),
	}

	t.Run("above 30 percent triggers seller flag", func(t *testing.T) {
		refundMap := map[string][]models.Transaction{
			"T-0001": {linkedTxn("R-0001", "T-0001", "100", models.CurrencyIDR,
				models.StatusRefunded, date(2026, time.January, 8))},
			"T-0002": {linkedTxn("CB-0001", "T-0002", "100", models.CurrencyIDR,
				models.StatusChargeback, date(2026, time.January, 9))},
		}

		flags := detectFraud(captured, refundMap)

		require.Len(t, flags, 1)
		assert.Equal(t, "SELLER", flags[0].TransactionID)
		assert.Equal(t, models.SeverityMedium, flags[0].Severity)
		assert.Equal(t, "High refund rate: 2/4 transactions refunded (50%)", flags[0].Reason)
	})

	t.Run("one of four refunded stays quiet", func(t *testing.T) {
		refundMap := map[string][]models.Transaction{
			"T-0001": {linkedTxn("R-0001", "T-0001", "100", models.CurrencyIDR,
				models.StatusRefunded, date(2026, time.January, 8))},
		}
		flags := detectFraud(captured, refundMap)
		assert.Empty(t, flags)
	})
}

func TestDetectFraud_EmissionOrder(t *testing.T) {
	capAt := time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC)
	// avg = 325, so the 1000 transaction clears the 3x bar.
	captured := []models.Transaction{
		capturedTxn("T-0001", "100", models.CurrencyIDR, capAt),
		capturedTxn("T-0002", "1000", models.CurrencyIDR, capAt),
		capturedTxn("T-0003", "100", models.CurrencyIDR, capAt),
		capturedTxn("T-0004", "100", models.CurrencyIDR, capAt),
	}
	refundMap := map[string][]models.Transaction{
		"T-0001": {linkedTxn("R-0001", "T-0001", "100", models.CurrencyIDR,
			models.StatusRefunded, date(2026, time.January, 8))},
		"T-0003": {linkedTxn("R-0002", "T-0003", "100", models.CurrencyIDR,
			models.StatusRefunded, date(2026, time.January, 9))},
	}

	flags := detectFraud(captured, refundMap)

	// Per-transaction flags first, seller-level flag last.
	require.Len(t, flags, 2)
	assert.Equal(t, "T-0002", flags[0].TransactionID)
	assert.Equal(t, "SELLER", flags[1].TransactionID)
}
