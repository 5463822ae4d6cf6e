package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cliente is a wallet customer. Saldo is the running fiado balance:
// positive = amount the customer owes the business.
type Cliente struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Nombre    string          `gorm:"index;not null" json:"nombre"`
	Telefono  string          `json:"telefono"`
	Saldo     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"saldo"`
	CreatedAt time.Time       `json:"created_at"`
}
