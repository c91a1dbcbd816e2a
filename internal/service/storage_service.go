package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"uni_advisor_backend/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// DatasetProvider opens a named dataset file from wherever it lives.
type DatasetProvider interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// LocalDatasetProvider reads datasets from the local filesystem.
type LocalDatasetProvider struct {
	Config *config.StorageConfig
}

func (p *LocalDatasetProvider) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(p.Config.LocalPath, name))
}

// MinioDatasetProvider reads datasets from a MinIO bucket.
type MinioDatasetProvider struct {
	Config *config.StorageConfig
	Client *minio.Client
}

func (p *MinioDatasetProvider) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	obj, err := p.Client.GetObject(ctx, p.Config.MinioBucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	// GetObject is lazy; Stat forces the error for a missing object now,
	// while the load can still fail fast.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, err
	}
	return obj, nil
}

// StorageService resolves the dataset provider from config.
type StorageService struct {
	Provider DatasetProvider
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	switch cfg.Storage.Type {
	case "minio":
		client, err := minio.New(cfg.Storage.MinioEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.MinioAccessID, cfg.Storage.MinioSecret, ""),
			Secure: cfg.Storage.MinioUseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("init minio client: %w", err)
		}
		return &StorageService{Provider: &MinioDatasetProvider{Config: &cfg.Storage, Client: client}}, nil
	case "local":
		return &StorageService{Provider: &LocalDatasetProvider{Config: &cfg.Storage}}, nil
	default:
		return nil, fmt.Errorf("unsupported storage type %q", cfg.Storage.Type)
	}
}

func (s *StorageService) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return s.Provider.Open(ctx, name)
}
