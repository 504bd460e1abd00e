package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/neelsoon/inventario-laboral/internal/domain"
	"github.com/neelsoon/inventario-laboral/internal/domain/entity"
	"github.com/neelsoon/inventario-laboral/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Upsert inserta o actualiza por ID. La rama ON CONFLICT no toca stock_actual:
// el stock solo se mueve vía movimientos, sin importar lo que envíe el cliente.
func (r *ProductRepo) Upsert(product *entity.Product) error {
	query := `
		INSERT INTO products (id, codigo, nombre, stock_actual, stock_minimo, precio)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			codigo = EXCLUDED.codigo,
			nombre = EXCLUDED.nombre,
			stock_minimo = EXCLUDED.stock_minimo,
			precio = EXCLUDED.precio`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Codigo, product.Nombre, product.StockActual, product.StockMinimo, product.Precio,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate // código duplicado en otro producto
		}
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
// Usar solo dentro de una transacción.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.get(id, true)
}

func (r *ProductRepo) get(id string, forUpdate bool) (*entity.Product, error) {
	query := `
		SELECT id, codigo, nombre, stock_actual, stock_minimo, precio
		FROM products WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Codigo, &p.Nombre, &p.StockActual, &p.StockMinimo, &p.Precio,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ApplyStockDelta aplica el delta en un único UPDATE relativo, atómico a nivel
// de fila. El stock puede quedar negativo: no hay piso.
func (r *ProductRepo) ApplyStockDelta(id string, delta int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock_actual = stock_actual + $2 WHERE id = $1`,
		id, delta,
	)
	if err != nil {
		return fmt.Errorf("apply stock delta: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los productos ordenados por nombre ascendente.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `
		SELECT id, codigo, nombre, stock_actual, stock_minimo, precio
		FROM products ORDER BY nombre ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Codigo, &p.Nombre, &p.StockActual, &p.StockMinimo, &p.Precio); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID; los movimientos asociados caen por
// ON DELETE CASCADE. Borrar un ID inexistente no es error.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
