package repository

import "github.com/neelsoon/inventario-laboral/internal/domain/entity"

// MovementRepository define el puerto de persistencia para el libro de movimientos.
// El libro es append-only: no hay Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// List devuelve todos los movimientos ordenados por fecha descendente.
	List() ([]*entity.Movement, error)
}
