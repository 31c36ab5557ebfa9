package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/unibrain/internal/logger"
)

// localKeyValue is the SQLite-backed implementation of [KeyValue] over the
// local_storage table.
type localKeyValue struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalKeyValue constructs a [KeyValue] on top of a migrated SQLite
// connection.
func NewLocalKeyValue(db *DB, logger *logger.Logger) KeyValue {
	logger.Debug().Msg("creating local key-value repository")
	return &localKeyValue{
		db:     db,
		logger: logger,
	}
}

func (r *localKeyValue) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, getLocalValue, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*localKeyValue.Get").Str("key", key).Msg("error reading key")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (r *localKeyValue) Set(ctx context.Context, key, value string) error {
	if _, err := r.db.ExecContext(ctx, setLocalValue, key, value); err != nil {
		r.logger.Err(err).Str("func", "*localKeyValue.Set").Str("key", key).Msg("error writing key")
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return nil
}

func (r *localKeyValue) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, deleteLocalValue, key); err != nil {
		r.logger.Err(err).Str("func", "*localKeyValue.Delete").Str("key", key).Msg("error deleting key")
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return nil
}
