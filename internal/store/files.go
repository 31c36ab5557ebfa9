package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/unibrain/internal/adapter"
	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/models"
)

// Buckets used by the marketplace.
const (
	BucketNotes       = "notes"
	BucketNFTMetadata = "nft-metadata"
)

// supabaseObjectStore keeps objects in the hosted backend's storage API.
type supabaseObjectStore struct {
	backend adapter.Backend
	logger  *logger.Logger
}

// NewSupabaseObjectStore constructs an [ObjectStore] on top of backend.
func NewSupabaseObjectStore(backend adapter.Backend, logger *logger.Logger) ObjectStore {
	return &supabaseObjectStore{backend: backend, logger: logger}
}

func (s *supabaseObjectStore) Upload(ctx context.Context, bucket, path string, data []byte, contentType string) (string, error) {
	if err := s.backend.Upload(ctx, bucket, path, data, contentType); err != nil {
		s.logger.Err(err).Str("func", "*supabaseObjectStore.Upload").Str("bucket", bucket).Msg("error uploading object")
		return "", remoteError(fmt.Sprintf("upload %s/%s", bucket, path), err)
	}

	return s.backend.PublicURL(bucket, path), nil
}

func (s *supabaseObjectStore) List(ctx context.Context, bucket string, limit int) ([]models.StoredObject, error) {
	objects, err := s.backend.List(ctx, bucket, limit)
	if err != nil {
		s.logger.Err(err).Str("func", "*supabaseObjectStore.List").Str("bucket", bucket).Msg("error listing objects")
		return nil, remoteError("list "+bucket, err)
	}

	return objects, nil
}

func (s *supabaseObjectStore) PublicURL(bucket, path string) string {
	return s.backend.PublicURL(bucket, path)
}
