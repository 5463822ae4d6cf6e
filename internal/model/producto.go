package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TipoProducto classifies how a product participates in stock and pricing.
type TipoProducto string

const (
	// TipoSimple: sold as-is, price set manually, no recipe.
	TipoSimple TipoProducto = "simple"
	// TipoInsumo: raw input, never sold directly; price derived from purchases.
	TipoInsumo TipoProducto = "insumo"
	// TipoCompuesto: assembled from a recipe; selling one cascades stock
	// deduction through the recipe graph.
	TipoCompuesto TipoProducto = "compuesto"
)

// OrigenPrecio states who owns a product's price.
type OrigenPrecio string

const (
	// OrigenManual: the operator sets the price.
	OrigenManual OrigenPrecio = "manual"
	// OrigenCompra: the price is re-derived as costo/cantidad on every
	// purchase of the product.
	OrigenCompra OrigenPrecio = "compra"
)

type Producto struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Nombre    string          `gorm:"index;not null" json:"nombre"`
	Precio    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"precio"`
	Stock     decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"stock"`
	Categoria string          `json:"categoria"`
	Tipo      TipoProducto    `gorm:"not null;default:'simple'" json:"tipo"`
	// Unidad is free text: "unid", "gr", "ml", ...
	Unidad       string       `gorm:"not null;default:'unid'" json:"unidad"`
	OrigenPrecio OrigenPrecio `gorm:"not null;default:'manual'" json:"origen_precio"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// VinculoReceta is one quantity-weighted edge from a compuesto product to a
// component. Several rows may share the same ProductoID (one per ingredient);
// the ingredient may itself be compuesto.
type VinculoReceta struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	ProductoID    uuid.UUID       `gorm:"type:uuid;index;not null" json:"producto_id"`
	IngredienteID uuid.UUID       `gorm:"type:uuid;index;not null" json:"ingrediente_id"`
	Cantidad      decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"cantidad"`
}
