package dto

import "github.com/shopspring/decimal"

type CrearClienteRequest struct {
	Nombre   string `json:"nombre"   validate:"required,min=1,max=120"`
	Telefono string `json:"telefono" validate:"max=30"`
}

// TotalesClienteResponse mirrors the customer wallet footer: what they bought
// on credit, what they paid back, and the live balance.
type TotalesClienteResponse struct {
	TotalComprado decimal.Decimal `json:"total_comprado"`
	TotalPagado   decimal.Decimal `json:"total_pagado"`
	Saldo         decimal.Decimal `json:"saldo"`
}
