// Package gallery stores uploaded images in a blob bucket and produces
// responsive variants with an external image tool.
package gallery

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"workbench/backend/internal/logging"
)

// Sizes is the sizes attribute advertised with every srcset.
const Sizes = "(max-width: 768px) 100vw, (max-width: 1200px) 50vw, 33vw"

// Service ties the blob store and the resizer together for the upload
// and delete flows.
type Service struct {
	Blobs   *BlobStore
	Resizer *Resizer
	tmpDir  string
}

// NewService builds the gallery service. tmpDir may be empty to use the
// OS default.
func NewService(blobs *BlobStore, resizer *Resizer, tmpDir string) *Service {
	if tmpDir == "" {
		tmpDir = os.TempDir()
	}
	return &Service{Blobs: blobs, Resizer: resizer, tmpDir: tmpDir}
}

// ObjectKey maps a stored filename to its bucket key.
func ObjectKey(filename string) string {
	return "uploads/" + filename
}

// NewUploadFilename prefixes the original name with 16 hex chars so two
// uploads of the same file never collide.
func NewUploadFilename(original string) string {
	buf := make([]byte, 8)
	rand.Read(buf)
	return hex.EncodeToString(buf) + "_" + filepath.Base(original)
}

// StoreUpload stages the upload in a temp directory, pushes the original
// to the bucket, then generates and pushes one variant per breakpoint.
// A variant the tool fails to produce falls back to a copy of the
// original; only a staging or original-upload failure aborts the upload.
// Returns the size names that were stored.
func (s *Service) StoreUpload(ctx context.Context, filename string, src io.Reader, contentType string) ([]string, error) {
	dir, err := os.MkdirTemp(s.tmpDir, "gallery-upload-")
	if err != nil {
		return nil, fmt.Errorf("failed to stage upload: %w", err)
	}
	defer os.RemoveAll(dir)

	originalPath := filepath.Join(dir, filename)
	if err := writeFile(originalPath, src); err != nil {
		return nil, fmt.Errorf("failed to stage upload: %w", err)
	}

	if err := s.Blobs.UploadFile(ctx, ObjectKey(filename), originalPath, contentType); err != nil {
		return nil, fmt.Errorf("failed to store original: %w", err)
	}

	var stored []string
	for _, size := range VariantOrder {
		variantName := VariantFilename(filename, size)
		variantPath := filepath.Join(dir, variantName)

		if err := s.Resizer.ResizeToWidth(originalPath, variantPath, VariantWidths[size]); err != nil {
			logging.Logger.Warn("variant generation failed, copying original",
				zap.String("filename", filename), zap.String("size", size), zap.Error(err))
			if err := copyFile(originalPath, variantPath); err != nil {
				continue
			}
		}

		if err := s.Blobs.UploadFile(ctx, ObjectKey(variantName), variantPath, contentType); err != nil {
			logging.Logger.Error("failed to store variant",
				zap.String("filename", variantName), zap.Error(err))
			continue
		}
		stored = append(stored, size)
	}

	return stored, nil
}

// Remove deletes the original and every recorded variant from the bucket.
func (s *Service) Remove(ctx context.Context, filename string, variants []string) error {
	var firstErr error
	keys := append([]string{ObjectKey(filename)},
		lo.Map(variants, func(size string, _ int) string {
			return ObjectKey(VariantFilename(filename, size))
		})...)
	for _, key := range keys {
		if err := s.Blobs.Remove(ctx, key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// SrcSet builds the srcset attribute from the stored variants. Empty when
// no variants exist.
func SrcSet(filename string, variants []string) string {
	var parts []string
	for _, size := range VariantOrder {
		if !lo.Contains(variants, size) {
			continue
		}
		parts = append(parts, fmt.Sprintf("/uploads/%s %dw", VariantFilename(filename, size), VariantWidths[size]))
	}
	return strings.Join(parts, ", ")
}

func writeFile(path string, src io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(f, src)
	return err
}

func copyFile(from, to string) error {
	src, err := os.Open(from)
	if err != nil {
		return err
	}
	defer src.Close()
	return writeFile(to, src)
}
