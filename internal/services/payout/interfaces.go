package payout

import (
	"context"

	"kusuma/internal/models"
)

// Ledger is the read-only view of the transaction store the engine
// computes against. GetSeller returns (nil, nil) on a miss; turning that
// into a typed failure is the engine's job. GetTransactionsForSeller
// returns the seller's full, unordered history and must give each caller
// an internally consistent snapshot.
type Ledger interface {
	GetSeller(ctx context.Context, id string) (*models.Seller, error)
	GetTransactionsForSeller(ctx context.Context, sellerID string) ([]models.Transaction, error)
}
