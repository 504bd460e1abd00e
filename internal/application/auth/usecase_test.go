package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/neelsoon/inventario-laboral/internal/application/auth"
	"github.com/neelsoon/inventario-laboral/internal/application/dto"
	"github.com/neelsoon/inventario-laboral/internal/domain"
	"github.com/neelsoon/inventario-laboral/internal/domain/entity"
	pkgjwt "github.com/neelsoon/inventario-laboral/pkg/jwt"
)

type stubUserRepo struct {
	byEmail map[string]*entity.User
}

func (r *stubUserRepo) Upsert(*entity.User) error                { return nil }
func (r *stubUserRepo) GetByID(string) (*entity.User, error)     { return nil, nil }
func (r *stubUserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}
func (r *stubUserRepo) List() ([]*entity.User, error) { return nil, nil }
func (r *stubUserRepo) UpdateRole(string, string) error { return nil }
func (r *stubUserRepo) Delete(string) error             { return nil }

func testAuthUC(t *testing.T, users ...*entity.User) *auth.AuthUseCase {
	t.Helper()
	repo := &stubUserRepo{byEmail: make(map[string]*entity.User)}
	for _, u := range users {
		repo.byEmail[u.Email] = u
	}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "secret-de-test",
		ExpMinutes: 60,
		Issuer:     "inventario-test",
	})
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestLogin_Exitoso(t *testing.T) {
	uc := testAuthUC(t, &entity.User{
		ID: "u1", Nombre: "Admin", Email: "admin@trabajo.gob",
		PasswordHash: hashOf(t, "clave123"), Role: entity.RoleAdmin, Avatar: "A",
	})

	out, err := uc.Login(dto.LoginRequest{Email: "admin@trabajo.gob", Password: "clave123"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "u1", out.User.ID)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)

	// El token debe llevar el id y el rol del usuario.
	userID, role, err := pkgjwt.Parse("secret-de-test", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := testAuthUC(t, &entity.User{
		ID: "u1", Email: "admin@trabajo.gob", PasswordHash: hashOf(t, "clave123"),
	})

	_, err := uc.Login(dto.LoginRequest{Email: "admin@trabajo.gob", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistente(t *testing.T) {
	uc := testAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@trabajo.gob", Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"email inexistente y password incorrecto deben ser indistinguibles")
}

func TestToUserResponse_NuncaExponePassword(t *testing.T) {
	out := auth.ToUserResponse(&entity.User{
		ID: "u1", Nombre: "Ana", Email: "ana@trabajo.gob",
		PasswordHash: "$2a$10$hash", Role: entity.RoleUser, Avatar: "AN",
	})
	require.NotNil(t, out)
	assert.Equal(t, "u1", out.ID)
	assert.Equal(t, "Ana", out.Nombre)
	assert.Equal(t, entity.RoleUser, out.Role)
}
