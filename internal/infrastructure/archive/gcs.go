package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
)

const (
	uploadTimeout = 2 * time.Minute
	contentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// GCSArchiver stores downloaded spreadsheets in a Cloud Storage bucket.
// Credentials come from Application Default Credentials.
type GCSArchiver struct {
	bucket string
}

func NewGCSArchiver(bucket string) *GCSArchiver {
	return &GCSArchiver{bucket: bucket}
}

func (a *GCSArchiver) Archive(ctx context.Context, objectName string, data []byte) (err error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return fmt.Errorf("create storage client: %w", err)
	}
	defer func() { err = errors.Join(err, client.Close()) }()

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	w := client.Bucket(a.bucket).Object(objectName).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return fmt.Errorf("copy %q to storage writer: %w", objectName, err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize upload of %q: %w", objectName, err)
	}

	return nil
}
