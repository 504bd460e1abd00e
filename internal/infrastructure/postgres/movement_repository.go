package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/neelsoon/inventario-laboral/internal/domain/entity"
	"github.com/neelsoon/inventario-laboral/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// El libro es append-only: solo Create y List.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento del libro.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, fecha, producto_id, producto_nombre, tipo, cantidad, motivo, usuario)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Fecha, movement.ProductoID, movement.ProductoNombre,
		movement.Tipo, movement.Cantidad, movement.Motivo, movement.Usuario,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// List devuelve todos los movimientos ordenados por fecha descendente.
func (r *MovementRepo) List() ([]*entity.Movement, error) {
	query := `
		SELECT id, fecha, producto_id, producto_nombre, tipo, cantidad, motivo, usuario
		FROM movements ORDER BY fecha DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.Fecha, &m.ProductoID, &m.ProductoNombre,
			&m.Tipo, &m.Cantidad, &m.Motivo, &m.Usuario); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
