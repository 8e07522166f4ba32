package handlers

import (
	"context"
	"fmt"
	"path"
	"time"

	"cloud.google.com/go/storage"
)

// GCSUploader writes objects to a Google Cloud Storage bucket and makes
// them readable by anyone with the link.
type GCSUploader struct {
	Bucket string
	Folder string
}

func (u *GCSUploader) Upload(ctx context.Context, data []byte, name, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := storage.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("gcs client: %w", err)
	}
	defer client.Close()

	objectPath := path.Join(u.Folder, name)
	obj := client.Bucket(u.Bucket).Object(objectPath)

	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	if _, err := wc.Write(data); err != nil {
		wc.Close()
		return "", fmt.Errorf("gcs write %s: %w", objectPath, err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("gcs close %s: %w", objectPath, err)
	}

	// Anyone-with-link, view only.
	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("gcs acl %s: %w", objectPath, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.Bucket, objectPath), nil
}
