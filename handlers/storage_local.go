package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalUploader writes files under a local directory and returns relative
// URLs served by the /uploads/ file server. Development only.
type LocalUploader struct {
	Dir string
}

func (u *LocalUploader) Upload(_ context.Context, data []byte, name, _ string) (string, error) {
	if err := os.MkdirAll(u.Dir, 0755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}
	dst := filepath.Join(u.Dir, name)
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", dst, err)
	}
	return fmt.Sprintf("/uploads/%s", name), nil
}
