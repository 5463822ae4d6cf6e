package dto

// Numeric fields arrive as free text from the UI's entry widgets and are not
// validated as numbers: malformed or empty input coerces to zero downstream
// instead of being rejected.

type CrearProductoRequest struct {
	Nombre    string `json:"nombre"    validate:"required,min=1,max=120"`
	Precio    string `json:"precio"`
	Stock     string `json:"stock"`
	Categoria string `json:"categoria"`
	Tipo      string `json:"tipo"      validate:"omitempty,oneof=simple insumo compuesto"`
	Unidad    string `json:"unidad"    validate:"max=20"`
}

type ActualizarProductoRequest struct {
	Nombre    string `json:"nombre"    validate:"required,min=1,max=120"`
	Precio    string `json:"precio"`
	Stock     string `json:"stock"`
	Categoria string `json:"categoria"`
	Tipo      string `json:"tipo"      validate:"omitempty,oneof=simple insumo compuesto"`
	Unidad    string `json:"unidad"    validate:"max=20"`
}

// ReemplazarRecetaRequest swaps a compuesto product's whole link set: the
// owned links are deleted and these items appended.
type ReemplazarRecetaRequest struct {
	Items []VinculoRecetaRequest `json:"items" validate:"dive"`
}

type VinculoRecetaRequest struct {
	IngredienteID string `json:"ingrediente_id" validate:"required,uuid"`
	Cantidad      string `json:"cantidad"`
}
