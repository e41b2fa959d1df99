package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus forms an implicit lifecycle:
// authorized -> captured -> (refunded | chargeback).
// Refunds and chargebacks always reference a prior captured record via
// ParentTransactionID; authorized records never transition in place.
type TransactionStatus string

const (
	StatusAuthorized TransactionStatus = "authorized"
	StatusCaptured   TransactionStatus = "captured"
	StatusRefunded   TransactionStatus = "refunded"
	StatusChargeback TransactionStatus = "chargeback"
)

// Transaction is a single ledger record. CapturedAt is set iff the record
// is captured (or descends from one); ParentTransactionID is set iff the
// record is a refund or chargeback.
type Transaction struct {
	ID                  string            `json:"id" gorm:"primarykey;size:32"`
	SellerID            string            `json:"seller_id" gorm:"size:32;not null;index"`
	BuyerID             string            `json:"buyer_id" gorm:"size:32;not null"`
	Amount              decimal.Decimal   `json:"amount" gorm:"type:decimal(20,2);not null"`
	Currency            Currency          `json:"currency" gorm:"type:varchar(3);not null"`
	Status              TransactionStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	CreatedAt           time.Time         `json:"created_at" gorm:"not null"`
	CapturedAt          *time.Time        `json:"captured_at,omitempty"`
	ParentTransactionID *string           `json:"parent_transaction_id,omitempty" gorm:"size:32;index"`
	Description         *string           `json:"description,omitempty"`
}
