package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta is an append-only sale record. Total is captured at sale time and is
// independent of the product's current price (discounts, combos). ClienteID
// nil means a cash walk-in sale; set means fiado. Rows are never edited or
// deleted, even when the referenced product or customer is gone.
type Venta struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	ProductoID uuid.UUID       `gorm:"type:uuid;index;not null" json:"producto_id"`
	ClienteID  *uuid.UUID      `gorm:"type:uuid;index" json:"cliente_id"`
	Cantidad   decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"cantidad"`
	Total      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	Metodo     string          `gorm:"not null" json:"metodo"`
	Fecha      time.Time       `gorm:"index;not null" json:"fecha"`
}

// Compra is an append-only incoming-stock record.
type Compra struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	ProductoID uuid.UUID       `gorm:"type:uuid;index;not null" json:"producto_id"`
	Cantidad   decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"cantidad"`
	Costo      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"costo"`
	Fecha      time.Time       `gorm:"index;not null" json:"fecha"`
}

// Pago is an append-only fiado settlement record.
type Pago struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	ClienteID uuid.UUID       `gorm:"type:uuid;index;not null" json:"cliente_id"`
	Monto     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"monto"`
	Metodo    string          `gorm:"not null" json:"metodo"`
	Fecha     time.Time       `gorm:"index;not null" json:"fecha"`
}
