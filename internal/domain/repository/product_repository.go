package repository

import "github.com/neelsoon/inventario-laboral/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Upsert inserta o actualiza por ID. En la rama de actualización no toca
	// StockActual: el stock solo cambia vía movimientos.
	Upsert(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Product, error)
	// ApplyStockDelta suma delta (positivo o negativo) a stock_actual en un
	// único UPDATE relativo.
	ApplyStockDelta(id string, delta int) error
	// List devuelve todos los productos ordenados por nombre ascendente.
	List() ([]*entity.Product, error)
	Delete(id string) error
}
