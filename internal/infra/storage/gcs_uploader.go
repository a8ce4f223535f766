package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	gcs "cloud.google.com/go/storage"
)

// GCSUploader writes product images to a bucket and hands back public URLs.
type GCSUploader struct {
	client        *gcs.Client
	bucket        string
	publicBaseURL string
}

func NewGCSUploader(client *gcs.Client, bucket, publicBaseURL string) *GCSUploader {
	return &GCSUploader{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (u *GCSUploader) Put(ctx context.Context, path, contentType string, body io.Reader) (string, error) {
	if u.client == nil || u.bucket == "" {
		return "", fmt.Errorf("gcs bucket is not configured")
	}

	obj := strings.TrimLeft(path, "/")
	w := u.client.Bucket(u.bucket).Object(obj).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=31536000"

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("gcs write %s: %w", obj, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs close %s: %w", obj, err)
	}

	return PublicURL(u.publicBaseURL, u.bucket, obj), nil
}

func PublicURL(base, bucket, objectPath string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(base, "/"), bucket, strings.TrimLeft(objectPath, "/"))
}
