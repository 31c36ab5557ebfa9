package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/migrations"
)

// Pool limits of the remote database. The marketplace issues short
// single-row statements, so a small pool is enough.
const (
	postgresMaxOpenConns    = 10
	postgresMaxIdleConns    = 4
	postgresConnMaxLifetime = 30 * time.Minute
	postgresPingTimeout     = 5 * time.Second
)

// NewConnectPostgres opens the remote marketplace database behind dsn.
func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error opening remote database")
		return nil, fmt.Errorf("error opening remote database: %w", err)
	}

	conn.SetMaxOpenConns(postgresMaxOpenConns)
	conn.SetMaxIdleConns(postgresMaxIdleConns)
	conn.SetConnMaxLifetime(postgresConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, postgresPingTimeout)
	defer cancel()
	if err = conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		log.Err(err).Str("func", "NewConnectPostgres").Msg("remote database is not reachable")
		return nil, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to remote database")

	return &DB{
		DB:                 conn,
		dialect:            migrations.Postgres,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}, nil
}
