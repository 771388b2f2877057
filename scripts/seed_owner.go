package main

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/yun0-0514/dev-blog/internal/config"
	"github.com/yun0-0514/dev-blog/pkg/auth"
	"github.com/yun0-0514/dev-blog/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic("FATAL: cannot load config: " + err.Error())
	}
	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	ownerEmail := os.Getenv("OWNER_EMAIL")
	ownerPassword := os.Getenv("OWNER_PASSWORD")
	ownerName := os.Getenv("OWNER_NAME")
	if ownerEmail == "" || ownerPassword == "" {
		appLogger.Fatal("OWNER_EMAIL and OWNER_PASSWORD are required", nil)
	}

	hash, err := auth.HashPassword(ownerPassword)
	if err != nil {
		appLogger.Fatal("cannot hash password", err)
	}

	pool, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		appLogger.Fatal("cannot connect DB", err)
	}
	defer pool.Close()

	var name *string
	if ownerName != "" {
		name = &ownerName
	}

	query := `
		INSERT INTO users (id, email, name, password_hash)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash, name = COALESCE(EXCLUDED.name, users.name)
	`
	if _, err = pool.Exec(context.Background(), query, uuid.New(), ownerEmail, name, hash); err != nil {
		appLogger.Fatal("cannot add owner", err)
	}

	appLogger.Info("Added or updated owner", zap.String("email", ownerEmail))
}
