package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"shoppay/internal/auth"
	"shoppay/internal/config"
)

// Seed makes sure an admin login exists so a fresh deployment is usable.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		return nil
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE email = $1", cfg.SeedAdminEmail).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
    INSERT INTO users (email, password_hash, first_name, last_name)
    VALUES ($1, $2, 'Shop', 'Admin')
  `, cfg.SeedAdminEmail, hashed)
	return err
}
