package store

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/unibrain/internal/config"
	"github.com/MKhiriev/unibrain/models"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// DefaultMinioBucket is used when no bucket is configured.
const DefaultMinioBucket = "unibrain"

// minioObjectStore keeps every marketplace bucket as a key prefix inside a
// single MinIO/S3 bucket.
type minioObjectStore struct {
	client *minio.Client
	bucket string
}

// NewMinioObjectStore connects to MinIO and ensures the bucket exists.
func NewMinioObjectStore(ctx context.Context, cfg config.Minio) (ObjectStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	bucket := cfg.Bucket
	if bucket == "" {
		bucket = DefaultMinioBucket
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return &minioObjectStore{client: client, bucket: bucket}, nil
}

func (m *minioObjectStore) key(bucket, path string) string {
	return bucket + "/" + strings.TrimLeft(path, "/")
}

func (m *minioObjectStore) Upload(ctx context.Context, bucket, path string, data []byte, contentType string) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucket, m.key(bucket, path), bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("%w: put object: %w", ErrRemoteUnavailable, err)
	}

	return m.PublicURL(bucket, path), nil
}

func (m *minioObjectStore) List(ctx context.Context, bucket string, limit int) ([]models.StoredObject, error) {
	prefix := bucket + "/"
	objects := []models.StoredObject{}
	for info := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if info.Err != nil {
			return nil, fmt.Errorf("%w: list objects: %w", ErrRemoteUnavailable, info.Err)
		}
		objects = append(objects, models.StoredObject{
			Name:      strings.TrimPrefix(info.Key, prefix),
			Size:      info.Size,
			CreatedAt: info.LastModified,
		})
	}

	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].CreatedAt.After(objects[j].CreatedAt)
	})
	if limit > 0 && len(objects) > limit {
		objects = objects[:limit]
	}

	return objects, nil
}

func (m *minioObjectStore) PublicURL(bucket, path string) string {
	u := *m.client.EndpointURL()
	u.Path = "/" + m.bucket + "/" + m.key(bucket, path)
	return u.String()
}
