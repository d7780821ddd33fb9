// Package repository implements the data-access contracts on gorm/postgres.
package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account is the persisted account record.
type Account struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID `gorm:"type:uuid;index;not null"`
	Name          string    `gorm:"size:120;not null"`
	Type          string    `gorm:"size:20;not null"`
	Balance       int64     `gorm:"not null"` // smallest currency unit
	Currency      string    `gorm:"type:varchar(3);not null;default:'USD'"`
	Description   string
	IsDefault     bool
	GoalID        *uuid.UUID `gorm:"type:uuid"`
	IsGoalAccount bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Transaction is the persisted transaction record. Both the user-level
// ledger (income/expense/transfer) and the account-scoped sub-ledger
// (debit/credit) share this table; Type distinguishes the two views.
type Transaction struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID              uuid.UUID `gorm:"type:uuid;index:idx_tx_owner_created;not null"`
	AccountID            uuid.UUID `gorm:"type:uuid;index;not null"`
	Amount               int64     `gorm:"not null"` // always positive; Type carries direction
	Balance              int64     // account balance snapshot after this entry
	Currency             string    `gorm:"type:varchar(3);not null;default:'USD'"`
	Type                 string    `gorm:"size:16;not null"`
	Category             string    `gorm:"size:32;not null;default:'general'"`
	Source               string
	CounterpartAccountID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt            time.Time  `gorm:"index:idx_tx_owner_created,sort:desc"`
}

// Goal is the persisted savings goal record.
type Goal struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Name      string    `gorm:"size:120;not null"`
	Target    int64     `gorm:"not null"`
	Current   int64     `gorm:"not null;default:0"`
	Currency  string    `gorm:"type:varchar(3);not null;default:'USD'"`
	Status    string    `gorm:"size:16;not null;default:'active'"`
	AccountID *uuid.UUID `gorm:"type:uuid;index"`
	Deadline  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Movement is the persisted audit entry. The composite owner/timestamp/id
// index backs the keyset pagination queries.
type Movement struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID `gorm:"type:uuid;index:idx_mv_owner_ts;not null"`
	Type          string    `gorm:"size:32;index;not null"`
	Description   string    `gorm:"not null"`
	Timestamp     time.Time `gorm:"index:idx_mv_owner_ts,sort:desc;not null"`
	EntityID      *uuid.UUID `gorm:"type:uuid"`
	EntityKind    string     `gorm:"size:16"`
	Amount        *int64
	Currency      string            `gorm:"type:varchar(3)"`
	FromAccountID *uuid.UUID        `gorm:"type:uuid"`
	ToAccountID   *uuid.UUID        `gorm:"type:uuid"`
	Metadata      map[string]string `gorm:"serializer:json"`
}

// User is the persisted user record backing the identity adapter.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"uniqueIndex;not null;size:255"`
	Password  string    `gorm:"not null"`
	Names     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Migrate creates or updates the schema for all ledger models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Account{},
		&Transaction{},
		&Goal{},
		&Movement{},
	)
}
