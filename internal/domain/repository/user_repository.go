package repository

import "github.com/neelsoon/inventario-laboral/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	// Upsert inserta o actualiza por ID (incluye password hash y role).
	Upsert(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// List devuelve todos los usuarios ordenados por nombre ascendente.
	List() ([]*entity.User, error)
	UpdateRole(id, role string) error
	Delete(id string) error
}
