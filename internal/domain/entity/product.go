package entity

import "github.com/shopspring/decimal"

// Product representa un insumo del depósito de la Secretaría.
// StockActual solo se modifica a través de movimientos (ver inventory.RegisterMovementUseCase);
// la edición directa del producto preserva el stock.
type Product struct {
	ID          string
	Codigo      string // código interno, único
	Nombre      string
	StockActual int
	StockMinimo int             // umbral de reposición
	Precio      decimal.Decimal // precio unitario de referencia
}

// BajoMinimo indica si el producto está en o por debajo del umbral de reposición.
func (p *Product) BajoMinimo() bool {
	return p.StockActual <= p.StockMinimo
}

// SinExistencias indica si el producto no tiene stock disponible.
func (p *Product) SinExistencias() bool {
	return p.StockActual <= 0
}
