package dto

type RegistrarVentaRequest struct {
	ProductoID string  `json:"producto_id" validate:"required,uuid"`
	Cantidad   string  `json:"cantidad"`
	Total      string  `json:"total"`
	// ClienteID present = fiado (credit) sale; absent = cash walk-in.
	ClienteID  *string `json:"cliente_id"  validate:"omitempty,uuid"`
	Metodo     string  `json:"metodo"      validate:"max=40"`
}

type RegistrarCompraRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   string `json:"cantidad"`
	Costo      string `json:"costo"`
}

type RegistrarPagoRequest struct {
	ClienteID string `json:"cliente_id" validate:"required,uuid"`
	Monto     string `json:"monto"`
	Metodo    string `json:"metodo"     validate:"max=40"`
}

// IDResponse acknowledges an append-only log write.
type IDResponse struct {
	ID string `json:"id"`
}
