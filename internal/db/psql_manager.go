package db

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"api-footwear/internal/models"
)

// PostgresManager escribe el historial de ticks de KPIs.
// Es solo de escritura: la foto de cada sesión nunca se restaura desde aquí.
type PostgresManager struct {
	pool      *pgxpool.Pool
	closeOnce sync.Once
}

// GetPostgresManagerWithURL crea un manager con una URL específica
func GetPostgresManagerWithURL(ctx context.Context, connURL string, minConns, maxConns int32, connectTimeout time.Duration) (*PostgresManager, error) {
	poolConfig, err := pgxpool.ParseConfig(connURL)
	if err != nil {
		return nil, fmt.Errorf("db: configuración PostgreSQL inválida: %w", err)
	}

	poolConfig.MinConns = minConns
	poolConfig.MaxConns = maxConns
	poolConfig.ConnConfig.ConnectTimeout = connectTimeout

	ctxTimeout := ctx
	if connectTimeout > 0 {
		var cancel context.CancelFunc
		ctxTimeout, cancel = context.WithTimeout(ctx, connectTimeout)
		defer cancel()
	}

	pool, err := pgxpool.NewWithConfig(ctxTimeout, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("db: no fue posible crear el pool de PostgreSQL: %w", err)
	}

	if err := pool.Ping(ctxTimeout); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db: ping fallido: %w", err)
	}

	log.Printf("db: Postgres pool inicializado -> host=%s port=%d user=%s db=%s",
		poolConfig.ConnConfig.Host, poolConfig.ConnConfig.Port, poolConfig.ConnConfig.User,
		visibleDatabase(poolConfig.ConnConfig.Database))

	return &PostgresManager{pool: pool}, nil
}

func (m *PostgresManager) Close() {
	if m == nil {
		return
	}

	m.closeOnce.Do(func() {
		if m.pool != nil {
			m.pool.Close()
		}
	})
}

func (m *PostgresManager) Ping(ctx context.Context) error {
	if m == nil || m.pool == nil {
		return fmt.Errorf("db: manager no inicializado")
	}
	return m.pool.Ping(ctx)
}

func (m *PostgresManager) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return m.pool.Exec(ctx, sql, args...)
}

// EnsureSchema crea las tablas del historial si no existen
func (m *PostgresManager) EnsureSchema(ctx context.Context) error {
	if m == nil || m.pool == nil {
		return fmt.Errorf("db: manager no inicializado")
	}
	if _, err := m.pool.Exec(ctx, CREATE_KPI_TICK_TABLE); err != nil {
		return fmt.Errorf("db: error creando tabla kpi_tick: %w", err)
	}
	return nil
}

// InsertKPITick registra un tick de KPIs
func (m *PostgresManager) InsertKPITick(ctx context.Context, update models.KPIUpdate) error {
	if m == nil || m.pool == nil {
		return fmt.Errorf("db: manager no inicializado")
	}
	k := update.KPIs
	_, err := m.pool.Exec(ctx, INSERT_KPI_TICK,
		update.SnapshotID,
		update.Timestamp,
		update.Delta,
		k.TotalPairs,
		k.ActiveProcesses,
		k.DefectRate,
		k.Utilization,
		k.OnTimeProduction,
	)
	if err != nil {
		return fmt.Errorf("db: error insertando tick de KPIs: %w", err)
	}
	return nil
}

func visibleDatabase(name string) string {
	if name == "" {
		return "(default)"
	}
	return name
}
