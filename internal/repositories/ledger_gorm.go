package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"kusuma/internal/models"
)

// GormLedger backs the same Ledger contract with Postgres for deployments
// that want the seeded data to survive restarts. Transaction reads are
// ordered by (created_at, id) so repeated runs stay deterministic.
type GormLedger struct {
	db *gorm.DB
}

// NewGormLedger wraps an initialized GORM connection and migrates the
// ledger schema.
func NewGormLedger(db *gorm.DB) (*GormLedger, error) {
	if err := db.AutoMigrate(&models.Seller{}, &models.Transaction{}); err != nil {
		return nil, err
	}
	return &GormLedger{db: db}, nil
}

func (l *GormLedger) AddSeller(ctx context.Context, seller *models.Seller) error {
	return l.db.WithContext(ctx).Save(seller).Error
}

func (l *GormLedger) AddTransaction(ctx context.Context, txn *models.Transaction) error {
	return l.db.WithContext(ctx).Save(txn).Error
}

func (l *GormLedger) GetSeller(ctx context.Context, id string) (*models.Seller, error) {
	var s models.Seller
	err := l.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (l *GormLedger) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	var t models.Transaction
	err := l.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (l *GormLedger) ListSellers(ctx context.Context) ([]models.Seller, error) {
	var sellers []models.Seller
	if err := l.db.WithContext(ctx).Order("id").Find(&sellers).Error; err != nil {
		return nil, err
	}
	return sellers, nil
}

func (l *GormLedger) GetTransactionsForSeller(ctx context.Context, sellerID string) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := l.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at, id").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}

func (l *GormLedger) Clear(ctx context.Context) error {
	if err := l.db.WithContext(ctx).Where("1 = 1").Delete(&models.Transaction{}).Error; err != nil {
		return err
	}
	return l.db.WithContext(ctx).Where("1 = 1").Delete(&models.Seller{}).Error
}

func (l *GormLedger) Counts(ctx context.Context) (int, int, error) {
	var sellers, txns int64
	if err := l.db.WithContext(ctx).Model(&models.Seller{}).Count(&sellers).Error; err != nil {
		return 0, 0, err
	}
	if err := l.db.WithContext(ctx).Model(&models.Transaction{}).Count(&txns).Error; err != nil {
		return 0, 0, err
	}
	return int(sellers), int(txns), nil
}
