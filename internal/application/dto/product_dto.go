package dto

import "github.com/shopspring/decimal"

// SaveProductRequest entrada para POST /api/products (upsert por id).
// StockActual solo se aplica al crear; en actualizaciones se preserva el
// stock existente (el stock se mueve únicamente vía movimientos).
type SaveProductRequest struct {
	ID          string          `json:"id" validate:"required"`
	Codigo      string          `json:"codigo" validate:"required,min=1,max=50"`
	Nombre      string          `json:"nombre" validate:"required,min=1,max=200"`
	StockActual int             `json:"stockActual" validate:"min=0"`
	StockMinimo int             `json:"stockMinimo" validate:"min=0"`
	Precio      decimal.Decimal `json:"precio"`
}

// ProductResponse salida de un producto (nombres de campo que espera el frontend).
type ProductResponse struct {
	ID          string          `json:"id"`
	Codigo      string          `json:"codigo"`
	Nombre      string          `json:"nombre"`
	StockActual int             `json:"stockActual"`
	StockMinimo int             `json:"stockMinimo"`
	Precio      decimal.Decimal `json:"precio"`
}

// ReposicionSuggestionDTO sugerencia de reposición para un producto bajo mínimo.
type ReposicionSuggestionDTO struct {
	ProductoID        string          `json:"productoId"`
	Codigo            string          `json:"codigo"`
	Nombre            string          `json:"nombre"`
	StockActual       int             `json:"stockActual"`
	StockMinimo       int             `json:"stockMinimo"`
	StockIdeal       int             `json:"stockIdeal"`       // StockMinimo * 1.5, redondeado hacia arriba
	CantidadSugerida int             `json:"cantidadSugerida"` // StockIdeal - StockActual
	CostoEstimado    decimal.Decimal `json:"costoEstimado"`    // CantidadSugerida * Precio
	Prioridad        int             `json:"prioridad"`        // 1 = más urgente
}
