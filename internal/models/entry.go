package models

import (
	"time"

	"cofre/internal/uuid"

	"gorm.io/gorm"
)

// Entry holds the columns shared by expense and income rows. A row whose
// GroupID is nil is a root; installments 2..N and generated recurrence
// occurrences point at their root. Rows are hard-deleted.
//
// The composite "occurrence" index makes (user, group, date) unique among
// non-root rows, so a recurrence cannot be generated twice for one month.
type Entry struct {
	ID                string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID            string    `gorm:"type:uuid;not null;index;index:,unique,composite:occurrence,where:group_id IS NOT NULL" json:"user_id"`
	Date              time.Time `gorm:"not null;index;index:,unique,composite:occurrence,where:group_id IS NOT NULL" json:"date"`
	Description       string    `gorm:"size:255;not null" json:"description"`
	Amount            int64     `gorm:"type:bigint;not null" json:"amount"`
	Category          string    `gorm:"size:100" json:"category"`
	Subcategory       string    `gorm:"size:100" json:"subcategory,omitempty"`
	Note              string    `json:"note,omitempty"`
	Installments      int       `gorm:"not null;default:1" json:"installments"`
	InstallmentNumber int       `gorm:"not null;default:1" json:"installment_number"`
	Recurring         bool      `gorm:"not null;default:false;index" json:"recurring"`
	GroupID           *string   `gorm:"type:uuid;index;index:,unique,composite:occurrence,where:group_id IS NOT NULL" json:"group_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUIDv7 and defaults the installment position.
func (e *Entry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New()
	}
	if e.Installments < 1 {
		e.Installments = 1
	}
	if e.InstallmentNumber < 1 {
		e.InstallmentNumber = 1
	}
	return nil
}

// LedgerEntry exposes the shared columns of any row embedding Entry.
func (e *Entry) LedgerEntry() *Entry { return e }

// IsRoot reports whether the row starts its own group.
func (e *Entry) IsRoot() bool { return e.GroupID == nil }

// Ledgered is implemented by pointers to ledger rows.
type Ledgered interface {
	LedgerEntry() *Entry
}

// Expense is money leaving the user's pocket.
type Expense struct {
	Entry
	PaymentMethod string `gorm:"size:50;not null" json:"payment_method"`
	Essential     bool   `gorm:"not null;default:false" json:"essential"`
	Emotion       string `gorm:"size:50" json:"emotion"`
}

// Income is money received.
type Income struct {
	Entry
	IncomeType string `gorm:"size:50" json:"income_type"`
}
