package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// dataURLRe matches the optional data-URL prefix on inline image payloads,
// e.g. "data:image/jpeg;base64,".
var dataURLRe = regexp.MustCompile(`^data:([a-zA-Z0-9.+/-]+);base64,`)

// StripDataURL splits an inline image payload into its raw base64 body and
// MIME type. Payloads without a prefix are returned as-is with image/jpeg
// assumed, matching what the PWA camera capture sends.
func StripDataURL(payload string) (b64, mimeType string) {
	payload = strings.TrimSpace(payload)
	if m := dataURLRe.FindStringSubmatch(payload); m != nil {
		return payload[len(m[0]):], m[1]
	}
	return payload, "image/jpeg"
}

// ImageObjectName builds a collision-resistant object name from the capture
// time and a random suffix.
func ImageObjectName(now time.Time, mimeType string) string {
	ext := "jpg"
	switch mimeType {
	case "image/png":
		ext = "png"
	case "image/gif":
		ext = "gif"
	case "image/webp":
		ext = "webp"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("hotinfo-%s-%s.%s", now.Format("20060102-150405"), suffix, ext)
}

// PhotoLinks patterns for Google Drive file URLs, the blob-store shape the
// original deployment produced. Three historical variants appear in stored
// data.
var driveIDRes = []*regexp.Regexp{
	regexp.MustCompile(`drive\.google\.com/file/d/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`drive\.google\.com/open\?id=([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`drive\.google\.com/uc\?(?:[^#]*&)?id=([A-Za-z0-9_-]+)`),
}

// PhotoLinks derives the dual photo links for a stored image URL: a
// full-resolution view link and an inline preview link. Drive "file" URLs
// are special-cased by file id; anything else is used verbatim for both.
// An empty URL yields empty links.
func PhotoLinks(imageURL string) (viewURL, previewURL string) {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return "", ""
	}
	for _, re := range driveIDRes {
		if m := re.FindStringSubmatch(imageURL); m != nil {
			id := m[1]
			return "https://drive.google.com/file/d/" + id + "/view",
				"https://drive.google.com/uc?export=view&id=" + id
		}
	}
	return imageURL, imageURL
}
