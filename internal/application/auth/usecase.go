package auth

import (
	"github.com/neelsoon/inventario-laboral/internal/application/dto"
	"github.com/neelsoon/inventario-laboral/internal/domain"
	"github.com/neelsoon/inventario-laboral/internal/domain/entity"
	"github.com/neelsoon/inventario-laboral/internal/domain/repository"
	"github.com/neelsoon/inventario-laboral/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación. Las contraseñas se almacenan y
// verifican con bcrypt; el endpoint responde 401 ante credenciales inválidas
// y, en éxito, el usuario sin password.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + usuario sin password.
// Tanto el email inexistente como el password incorrecto devuelven ErrUnauthorized
// sin distinguir el caso.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// ToUserResponse proyecta la entidad al DTO público (sin password).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:     u.ID,
		Nombre: u.Nombre,
		Email:  u.Email,
		Role:   u.Role,
		Avatar: u.Avatar,
	}
}
