package entity

// Roles válidos para User.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Nombre       string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Role         string // ADMIN | USER
	Avatar       string // iniciales para el avatar de la UI
}
