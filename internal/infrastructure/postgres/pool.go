// Package postgres implementa os adaptadores remotos: uma tabela por
// entidade, uma ida-e-volta por operação, com tradução explícita entre a
// nomenclatura snake_case do banco e o modelo em memória.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sistemact/sistema-ct/pkg/config"
)

// NewPool cria um pool de conexões PostgreSQL a partir da URL do backend remoto.
// Registra o codec NUMERIC/DECIMAL -> shopspring/decimal em todas as conexões.
func NewPool(ctx context.Context, cfg config.RemoteConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("criar pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// Probe faz a leitura leve usada pelo seletor de backend na inicialização:
// uma consulta mínima na tabela de usuários. Falhar aqui (tabela ausente,
// permissão, rede) manda o sistema para o modo local.
func Probe(ctx context.Context, pool *pgxpool.Pool) error {
	var id string
	err := pool.QueryRow(ctx, `SELECT id FROM users LIMIT 1`).Scan(&id)
	if err != nil && err != pgx.ErrNoRows {
		return fmt.Errorf("probe users: %w", err)
	}
	return nil
}
