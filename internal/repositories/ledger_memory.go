package repositories

import (
	"context"
	"sync"

	"kusuma/internal/models"
)

// MemoryLedger is the default in-memory store. Insertion order is kept so
// that reads are deterministic across identical runs, and every read
// copies under the lock so concurrent payout computations each see a
// consistent snapshot.
type MemoryLedger struct {
	mu           sync.RWMutex
	sellers      map[string]models.Seller
	sellerOrder  []string
	transactions map[string]int
	txnOrder     []models.Transaction
}

// NewMemoryLedger creates an empty in-memory ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		sellers:      make(map[string]models.Seller),
		transactions: make(map[string]int),
	}
}

func (l *MemoryLedger) AddSeller(_ context.Context, seller *models.Seller) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.sellers[seller.ID]; !exists {
		l.sellerOrder = append(l.sellerOrder, seller.ID)
	}
	l.sellers[seller.ID] = *seller
	return nil
}

func (l *MemoryLedger) AddTransaction(_ context.Context, txn *models.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if idx, exists := l.transactions[txn.ID]; exists {
		l.txnOrder[idx] = *txn
		return nil
	}
	l.transactions[txn.ID] = len(l.txnOrder)
	l.txnOrder = append(l.txnOrder, *txn)
	return nil
}

func (l *MemoryLedger) GetSeller(_ context.Context, id string) (*models.Seller, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	s, ok := l.sellers[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (l *MemoryLedger) GetTransaction(_ context.Context, id string) (*models.Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	idx, ok := l.transactions[id]
	if !ok {
		return nil, nil
	}
	t := l.txnOrder[idx]
	return &t, nil
}

func (l *MemoryLedger) ListSellers(_ context.Context) ([]models.Seller, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Seller, 0, len(l.sellerOrder))
	for _, id := range l.sellerOrder {
		out = append(out, l.sellers[id])
	}
	return out, nil
}

func (l *MemoryLedger) GetTransactionsForSeller(_ context.Context, sellerID string) ([]models.Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []models.Transaction
	for _, t := range l.txnOrder {
		if t.SellerID == sellerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (l *MemoryLedger) Clear(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sellers = make(map[string]models.Seller)
	l.sellerOrder = nil
	l.transactions = make(map[string]int)
	l.txnOrder = nil
	return nil
}

func (l *MemoryLedger) Counts(_ context.Context) (int, int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.sellers), len(l.txnOrder), nil
}
