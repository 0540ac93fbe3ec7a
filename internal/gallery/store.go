package gallery

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"workbench/backend/internal/config"
)

// BlobStore keeps gallery originals and their variants in a MinIO bucket.
type BlobStore struct {
	client *minio.Client
	bucket string
}

// NewBlobStore connects to MinIO and creates the bucket if needed.
func NewBlobStore(cfg config.Config) (*BlobStore, error) {
	client, err := minio.New(cfg.MinIOEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
		Secure: cfg.MinIOUseSSL,
	})
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.MinIOBucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinIOBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	return &BlobStore{client: client, bucket: cfg.MinIOBucket}, nil
}

// UploadFile stores a local file under key.
func (b *BlobStore) UploadFile(ctx context.Context, key, path, contentType string) error {
	_, err := b.client.FPutObject(ctx, b.bucket, key, path,
		minio.PutObjectOptions{ContentType: contentType})
	return err
}

// Open returns a reader for the object plus its content type and size.
func (b *BlobStore) Open(ctx context.Context, key string) (io.ReadCloser, string, int64, error) {
	obj, err := b.client.GetObject(ctx, b.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", 0, err
	}
	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, "", 0, err
	}
	return obj, info.ContentType, info.Size, nil
}

// Remove deletes one object. Removing a missing object is not an error.
func (b *BlobStore) Remove(ctx context.Context, key string) error {
	return b.client.RemoveObject(ctx, b.bucket, key, minio.RemoveObjectOptions{})
}
