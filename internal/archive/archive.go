// Package archive keeps a copy of raw import uploads.
package archive

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
)

type Archiver interface {
	Archive(ctx context.Context, objectName string, data []byte) error
}

// ObjectName lays uploads out as imports/<user>/<preview>/<file>.
func ObjectName(userID, previewID, fileName string) string {
	base := filepath.Base(fileName)
	if base == "." || base == "/" || base == "" {
		base = "upload.csv"
	}
	return path.Join("imports", userID, previewID, base)
}

var contentTypes = map[string]string{
	".csv":  "text/csv",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".xls":  "application/vnd.ms-excel",
}

// ContentType picks the MIME type from the object's extension.
func ContentType(objectName string) string {
	if ct, ok := contentTypes[strings.ToLower(path.Ext(objectName))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// NopArchiver discards everything. Used when no bucket is configured.
type NopArchiver struct{}

func (NopArchiver) Archive(ctx context.Context, objectName string, data []byte) error {
	return nil
}

// GCSArchiver writes uploads to a Cloud Storage bucket using Application
// Default Credentials.
type GCSArchiver struct {
	client *storage.Client
	bucket string
}

func NewGCSArchiver(ctx context.Context, bucket string) (*GCSArchiver, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &GCSArchiver{client: client, bucket: bucket}, nil
}

func (a *GCSArchiver) Archive(ctx context.Context, objectName string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := a.client.Bucket(a.bucket).Object(objectName).NewWriter(ctx)
	w.ContentType = ContentType(objectName)

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("write gs://%s/%s: %w", a.bucket, objectName, err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize gs://%s/%s: %w", a.bucket, objectName, err)
	}

	return nil
}

// Ping checks that the bucket exists and is readable with the current credentials.
func (a *GCSArchiver) Ping(ctx context.Context) error {
	if _, err := a.client.Bucket(a.bucket).Attrs(ctx); err != nil {
		return fmt.Errorf("bucket %s: %w", a.bucket, err)
	}
	return nil
}

func (a *GCSArchiver) Close() error {
	return a.client.Close()
}
