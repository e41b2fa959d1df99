// Package repositories provides the ledger implementations the payout
// engine reads from, plus the Redis cache used by the HTTP layer.
package repositories

import (
	"context"

	"kusuma/internal/models"
)

// Ledger stores sellers and transactions. Sellers and transactions are
// created once and never mutated afterwards; the payout engine only uses
// the read side. Reads must return an internally consistent snapshot even
// while writes are in flight.
type Ledger interface {
	AddSeller(ctx context.Context, seller *models.Seller) error
	AddTransaction(ctx context.Context, txn *models.Transaction) error

	// GetSeller and GetTransaction return (nil, nil) on a miss.
	GetSeller(ctx context.Context, id string) (*models.Seller, error)
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
	ListSellers(ctx context.Context) ([]models.Seller, error)
	GetTransactionsForSeller(ctx context.Context, sellerID string) ([]models.Transaction, error)

	Clear(ctx context.Context) error
	Counts(ctx context.Context) (sellers, transactions int, err error)
}
