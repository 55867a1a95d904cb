package database

import (
	"context"
	"fmt"
	"time"

	"trivia-board/internal/config"
	"trivia-board/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver
	"go.uber.org/zap"
)

const pingTimeout = 5 * time.Second

// NewSQLXOracleDB opens the go-ora pool described by cfg and verifies it with a ping.
func NewSQLXOracleDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Open("oracle", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open Oracle database: %w", err)
	}

	if cfg.DB.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	}
	if cfg.DB.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	}
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping Oracle database: %w", err)
	}

	logger.Get().Info("Connected to Oracle database",
		zap.String("host", cfg.DB.Host),
		zap.Int("port", cfg.DB.Port),
		zap.String("service", cfg.DB.DBName),
		zap.Int("max_open_conns", cfg.DB.MaxOpenConns),
	)
	return db, nil
}
