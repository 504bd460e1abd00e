package usecase

import (
	"github.com/neelsoon/inventario-laboral/internal/application/auth"
	"github.com/neelsoon/inventario-laboral/internal/application/dto"
	"github.com/neelsoon/inventario-laboral/internal/domain"
	"github.com/neelsoon/inventario-laboral/internal/domain/entity"
	"github.com/neelsoon/inventario-laboral/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase administración de usuarios (alta/edición, rol, baja).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Save inserta o actualiza un usuario por ID, hasheando el password con bcrypt.
func (uc *UserUseCase) Save(in dto.SaveUserRequest) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u := &entity.User{
		ID:           in.ID,
		Nombre:       in.Nombre,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Avatar:       in.Avatar,
	}
	return uc.repo.Upsert(u)
}

// List devuelve todos los usuarios, sin password.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}

// UpdateRole cambia el rol de un usuario (ADMIN | USER).
func (uc *UserUseCase) UpdateRole(id, role string) error {
	if role != entity.RoleAdmin && role != entity.RoleUser {
		return domain.ErrInvalidInput
	}
	return uc.repo.UpdateRole(id, role)
}

// Delete elimina un usuario. Borrar un ID inexistente es un no-op silencioso.
func (uc *UserUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
