// Package seed loads the ledger with deterministic marketplace test data:
// 3 sellers and 220 transactions spread over January 2026, roughly 70%
// captured, 10% authorized, 15% refunded and 5% chargebacks, across the
// IDR/THB/VND corridor. The generator is seeded with a fixed value so
// repeated runs produce the same ledger.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"kusuma/internal/models"
	"kusuma/internal/repositories"
)

const rngSeed = 42

var (
	windowStart = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2026, time.January, 31, 23, 59, 59, 0, time.UTC)
)

type amountRange struct {
	lo, hi float64
}

// Realistic ticket sizes per currency.
var amountRanges = map[models.Currency]amountRange{
	models.CurrencyIDR: {50_000, 5_000_000},
	models.CurrencyTHB: {100, 15_000},
	models.CurrencyVND: {50_000, 3_000_000},
}

// Currency pools per seller; sellers mostly trade in their home currency
// with some cross-currency volume.
var sellerCurrencies = map[string][]models.Currency{
	"S-001": {models.CurrencyIDR, models.CurrencyIDR, models.CurrencyIDR, models.CurrencyTHB},
	"S-002": {models.CurrencyTHB, models.CurrencyTHB, models.CurrencyTHB, models.CurrencyIDR},
	"S-003": {models.CurrencyVND, models.CurrencyVND, models.CurrencyVND, models.CurrencyTHB},
}

// Run seeds the ledger. The ledger is assumed empty (or cleared) first.
func Run(ctx context.Context, ledger repositories.Ledger) error {
	rng := rand.New(rand.NewSource(rngSeed))

	sellers := []models.Seller{
		{
			ID:                 "S-001",
			Name:               "Batik Nusantara",
			CommissionRate:     decimal.RequireFromString("0.08"),
			SettlementCurrency: models.CurrencyIDR,
			Country:            "Indonesia",
			Email:              "finance@batiknusantara.id",
		},
		{
			ID:                 "S-002",
			Name:               "Thai Silk House",
			CommissionRate:     decimal.RequireFromString("0.12"),
			SettlementCurrency: models.CurrencyTHB,
			Country:            "Thailand",
			Email:              "accounts@thaisilkhouse.th",
		},
		{
			ID:                 "S-003",
			Name:               "Hanoi Crafts",
			CommissionRate:     decimal.RequireFromString("0.15"),
			SettlementCurrency: models.CurrencyVND,
			Country:            "Vietnam",
			Email:              "billing@hanoicrafts.vn",
		},
	}
	for i := range sellers {
		if err := ledger.AddSeller(ctx, &sellers[i]); err != nil {
			return fmt.Errorf("add seller %s: %w", sellers[i].ID, err)
		}
	}

	sellerIDs := []string{"S-001", "S-002", "S-003"}

	total := 220
	nCap := total * 70 / 100  // 154 captured
	nAuth := total * 10 / 100 // 22 authorized
	nRef := total * 15 / 100  // 33 refunded
	nCB := total - nCap - nAuth - nRef // 11 chargebacks

	counter := 0
	nextID := func(prefix string) string {
		counter++
		return fmt.Sprintf("%s-%04d", prefix, counter)
	}

	// Captured transactions.
	capturedIDs := make([]string, 0, nCap)
	for i := 0; i < nCap; i++ {
		sellerID := sellerIDs[rng.Intn(len(sellerIDs))]
		pool := sellerCurrencies[sellerID]
		ccy := pool[rng.Intn(len(pool))]
		capturedAt := randTime(rng, windowStart, windowEnd)

		id := nextID("T")
		capturedIDs = append(capturedIDs, id)
		txn := models.Transaction{
			ID:         id,
			SellerID:   sellerID,
			BuyerID:    fmt.Sprintf("B-%04d", 1+rng.Intn(500)),
			Amount:     randAmount(rng, ccy),
			Currency:   ccy,
			Status:     models.StatusCaptured,
			CreatedAt:  capturedAt.Add(-time.Duration(1+rng.Intn(60)) * time.Minute),
			CapturedAt: &capturedAt,
		}
		if err := ledger.AddTransaction(ctx, &txn); err != nil {
			return fmt.Errorf("add transaction %s: %w", id, err)
		}
	}

	// Authorized transactions never get a capture timestamp and stay out
	// of payouts.
	for i := 0; i < nAuth; i++ {
		sellerID := sellerIDs[rng.Intn(len(sellerIDs))]
		pool := sellerCurrencies[sellerID]
		ccy := pool[rng.Intn(len(pool))]

		txn := models.Transaction{
			ID:        nextID("T"),
			SellerID:  sellerID,
			BuyerID:   fmt.Sprintf("B-%04d", 1+rng.Intn(500)),
			Amount:    randAmount(rng, ccy),
			Currency:  ccy,
			Status:    models.StatusAuthorized,
			CreatedAt: randTime(rng, windowStart, windowEnd),
		}
		if err := ledger.AddTransaction(ctx, &txn); err != nil {
			return fmt.Errorf("add transaction %s: %w", txn.ID, err)
		}
	}

	// Full refunds against a sample of captured parents. A refund can land
	// up to 14 days after capture, potentially past the end of January.
	perm := rng.Perm(len(capturedIDs))
	refundParents := make([]string, 0, nRef)
	for _, idx := range perm[:nRef] {
		refundParents = append(refundParents, capturedIDs[idx])
	}
	for _, parentID := range refundParents {
		if err := addLinked(ctx, ledger, rng, parentID, models.StatusRefunded,
			nextID("R"), rng.Intn(15)); err != nil {
			return err
		}
	}

	// Chargebacks against a disjoint set of parents, 1-21 days out.
	cbParents := make([]string, 0, nCB)
	for _, idx := range perm[nRef:] {
		if len(cbParents) == nCB {
			break
		}
		cbParents = append(cbParents, capturedIDs[idx])
	}
	for _, parentID := range cbParents {
		if err := addLinked(ctx, ledger, rng, parentID, models.StatusChargeback,
			nextID("CB"), 1+rng.Intn(21)); err != nil {
			return err
		}
	}

	return nil
}

func addLinked(ctx context.Context, ledger repositories.Ledger, rng *rand.Rand,
	parentID string, status models.TransactionStatus, id string, daysAfter int) error {
	parent, err := ledger.GetTransaction(ctx, parentID)
	if err != nil || parent == nil {
		return fmt.Errorf("seed: missing parent %s: %w", parentID, err)
	}

	desc := fmt.Sprintf("%s for %s", statusLabel(status), parentID)
	txn := models.Transaction{
		ID:                  id,
		SellerID:            parent.SellerID,
		BuyerID:             parent.BuyerID,
		Amount:              parent.Amount, // full refund of the parent
		Currency:            parent.Currency,
		Status:              status,
		CreatedAt:           parent.CapturedAt.AddDate(0, 0, daysAfter),
		ParentTransactionID: &parentID,
		Description:         &desc,
	}
	if err := ledger.AddTransaction(ctx, &txn); err != nil {
		return fmt.Errorf("add transaction %s: %w", id, err)
	}
	return nil
}

func statusLabel(status models.TransactionStatus) string {
	if status == models.StatusChargeback {
		return "Chargeback"
	}
	return "Refund"
}

func randTime(rng *rand.Rand, lo, hi time.Time) time.Time {
	delta := int(hi.Sub(lo) / time.Second)
	return lo.Add(time.Duration(rng.Intn(delta+1)) * time.Second)
}

func randAmount(rng *rand.Rand, ccy models.Currency) decimal.Decimal {
	r := amountRanges[ccy]
	v := r.lo + rng.Float64()*(r.hi-r.lo)
	return decimal.NewFromFloat(v).Round(2)
}
