package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/neelsoon/inventario-laboral/internal/domain/entity"
)

// Esquema mínimo de la aplicación. CREATE TABLE IF NOT EXISTS permite arrancar
// contra una base vacía sin tooling de migraciones.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		codigo TEXT UNIQUE NOT NULL,
		nombre TEXT NOT NULL,
		stock_actual INTEGER DEFAULT 0,
		stock_minimo INTEGER DEFAULT 5,
		precio DECIMAL(10, 2) DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		nombre TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'USER',
		avatar TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS movements (
		id TEXT PRIMARY KEY,
		fecha TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		producto_id TEXT REFERENCES products(id) ON DELETE CASCADE,
		producto_nombre TEXT,
		tipo TEXT NOT NULL,
		cantidad INTEGER NOT NULL,
		motivo TEXT,
		usuario TEXT
	)`,
}

// Bootstrap crea las tablas si no existen y, si se configuró un admin inicial
// y su email no está registrado, lo inserta con el password hasheado (bcrypt).
func Bootstrap(ctx context.Context, pool *pgxpool.Pool, adminNombre, adminEmail, adminPassword string) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}

	if adminEmail == "" || adminPassword == "" {
		return nil
	}

	var exists bool
	err := pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, adminEmail).Scan(&exists)
	if err != nil {
		return fmt.Errorf("bootstrap seed: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("bootstrap seed hash: %w", err)
	}
	if adminNombre == "" {
		adminNombre = "Administrador"
	}
	_, err = pool.Exec(ctx,
		`INSERT INTO users (id, nombre, email, password, role, avatar)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New().String(), adminNombre, adminEmail, string(hash), entity.RoleAdmin, iniciales(adminNombre),
	)
	if err != nil {
		return fmt.Errorf("bootstrap seed insert: %w", err)
	}
	return nil
}

// iniciales arma el avatar por defecto con las iniciales del nombre (máx. 2).
func iniciales(nombre string) string {
	out := make([]rune, 0, 2)
	nueva := true
	for _, r := range nombre {
		if r == ' ' {
			nueva = true
			continue
		}
		if nueva && len(out) < 2 {
			out = append(out, r)
		}
		nueva = false
	}
	return string(out)
}
