package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"p9e.in/hotinfo/config"
	"p9e.in/hotinfo/utils"
)

// Uploader persists image bytes and returns a public URL. Upload failures
// are non-fatal to intake: the submission proceeds with an empty image ref.
type Uploader interface {
	Upload(ctx context.Context, data []byte, name, contentType string) (string, error)
}

// NewUploader picks the blob store from the resolved config: GCS when the
// deployment opted in and named a bucket, local disk otherwise.
func NewUploader(cfg config.App) Uploader {
	if cfg.UseGCS && cfg.GCSBucket != "" {
		return &GCSUploader{Bucket: cfg.GCSBucket, Folder: cfg.UploadFolder}
	}
	return &LocalUploader{Dir: "./uploads"}
}

// UploadFileHandler accepts a multipart file upload and returns its public
// URL, for clients that pre-upload instead of inlining base64 image data.
func UploadFileHandler(w http.ResponseWriter, r *http.Request) {
	// max 50MB
	if err := r.ParseMultipartForm(50 << 20); err != nil {
		http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read file: "+err.Error(), http.StatusInternalServerError)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	name := utils.ImageObjectName(time.Now(), contentType)

	url, err := uploader.Upload(r.Context(), data, name, contentType)
	if err != nil {
		logError("ファイルアップロード", err, header.Filename)
		http.Error(w, "failed to save file: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"url":      url,
		"filename": name,
	})
}
