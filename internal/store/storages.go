package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/unibrain/internal/adapter"
	"github.com/MKhiriev/unibrain/internal/config"
	"github.com/MKhiriev/unibrain/internal/logger"
)

// Storages owns the connections behind an [Adapter].
type Storages struct {
	Adapter *Adapter
	dbs     []*DB
}

// NewStorages opens the local SQLite store and, when configured, the remote
// backend and the object storages.
//
// Table operations in remote mode go to Postgres when cfg.Remote.DSN is set
// and to the REST API otherwise. Remote files go to MinIO when an endpoint
// is set and to the hosted storage API otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	s := &Storages{}

	localDB, err := NewConnectSQLite(ctx, cfg.Local, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting local store: %w", err)
	}
	s.dbs = append(s.dbs, localDB)
	if err = localDB.Migrate(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("error migrating local store: %w", err)
	}

	kv := NewLocalKeyValue(localDB, log)
	local, err := NewLocalStore(ctx, kv, log)
	if err != nil {
		_ = s.Close()
		return nil, err
	}

	localFiles, err := NewLocalObjectStore(cfg.Local.FilesDir)
	if err != nil {
		_ = s.Close()
		return nil, err
	}

	opts := []AdapterOption{}
	var remoteFiles ObjectStore

	if SelectMode(cfg.Remote) == ModeRemote {
		backend, err := adapter.NewSupabaseBackend(cfg.Remote, log)
		if err != nil {
			_ = s.Close()
			return nil, err
		}

		remote, err := s.remoteStore(ctx, cfg.Remote, backend, log)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		opts = append(opts, WithRemote(remote))
		remoteFiles = NewSupabaseObjectStore(backend, log)
	}

	if strings.TrimSpace(cfg.Minio.Endpoint) != "" {
		minioFiles, err := NewMinioObjectStore(ctx, cfg.Minio)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		remoteFiles = minioFiles
	}
	opts = append(opts, WithFiles(localFiles, remoteFiles))

	s.Adapter = NewAdapter(cfg.Remote, local, kv, log, opts...)
	return s, nil
}

func (s *Storages) remoteStore(ctx context.Context, cfg config.RemoteStorage, backend adapter.Backend, log *logger.Logger) (Store, error) {
	if strings.TrimSpace(cfg.DSN) == "" {
		return NewRESTRemoteStore(backend, log), nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting remote database: %w", err)
	}
	s.dbs = append(s.dbs, db)
	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating remote database: %w", err)
	}
	return NewPostgresRemoteStore(db, log), nil
}

// Close closes every database connection.
func (s *Storages) Close() error {
	var errs []error
	for _, db := range s.dbs {
		errs = append(errs, db.Close())
	}
	return errors.Join(errs...)
}
