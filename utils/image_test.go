package utils

import (
	"strings"
	"testing"
	"time"
)

func TestStripDataURL(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		wantB64  string
		wantMime string
	}{
		{"jpeg data url", "data:image/jpeg;base64,/9j/4AAQ", "/9j/4AAQ", "image/jpeg"},
		{"png data url", "data:image/png;base64,iVBORw0K", "iVBORw0K", "image/png"},
		{"bare base64 assumes jpeg", "/9j/4AAQSkZJRg==", "/9j/4AAQSkZJRg==", "image/jpeg"},
		{"leading whitespace trimmed", "  data:image/webp;base64,UklGRg==", "UklGRg==", "image/webp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b64, mime := StripDataURL(tt.payload)
			if b64 != tt.wantB64 {
				t.Errorf("base64 = %q, expected %q", b64, tt.wantB64)
			}
			if mime != tt.wantMime {
				t.Errorf("mime = %q, expected %q", mime, tt.wantMime)
			}
		})
	}
}

func TestImageObjectName(t *testing.T) {
	now := time.Date(2025, 5, 16, 15, 32, 25, 0, time.UTC)

	name := ImageObjectName(now, "image/jpeg")
	if !strings.HasPrefix(name, "hotinfo-20250516-153225-") {
		t.Errorf("name %q missing timestamp prefix", name)
	}
	if !strings.HasSuffix(name, ".jpg") {
		t.Errorf("name %q missing jpg extension", name)
	}

	if got := ImageObjectName(now, "image/png"); !strings.HasSuffix(got, ".png") {
		t.Errorf("png name = %q, expected .png suffix", got)
	}

	// Same instant must still produce distinct names.
	if a, b := ImageObjectName(now, "image/jpeg"), ImageObjectName(now, "image/jpeg"); a == b {
		t.Errorf("expected distinct names for same timestamp, got %q twice", a)
	}
}

func TestPhotoLinks(t *testing.T) {
	tests := []struct {
		name        string
		imageURL    string
		wantView    string
		wantPreview string
	}{
		{
			name:        "drive file link",
			imageURL:    "https://drive.google.com/file/d/1aBcDeFg_hI-jK/view?usp=sharing",
			wantView:    "https://drive.google.com/file/d/1aBcDeFg_hI-jK/view",
			wantPreview: "https://drive.google.com/uc?export=view&id=1aBcDeFg_hI-jK",
		},
		{
			name:        "drive open link",
			imageURL:    "https://drive.google.com/open?id=1aBcDeFg",
			wantView:    "https://drive.google.com/file/d/1aBcDeFg/view",
			wantPreview: "https://drive.google.com/uc?export=view&id=1aBcDeFg",
		},
		{
			name:        "drive uc link",
			imageURL:    "https://drive.google.com/uc?export=download&id=XyZ-123_abc",
			wantView:    "https://drive.google.com/file/d/XyZ-123_abc/view",
			wantPreview: "https://drive.google.com/uc?export=view&id=XyZ-123_abc",
		},
		{
			name:        "non-drive url used verbatim for both",
			imageURL:    "https://storage.googleapis.com/bucket/hotinfo-x.jpg",
			wantView:    "https://storage.googleapis.com/bucket/hotinfo-x.jpg",
			wantPreview: "https://storage.googleapis.com/bucket/hotinfo-x.jpg",
		},
		{
			name: "empty yields empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, preview := PhotoLinks(tt.imageURL)
			if view != tt.wantView {
				t.Errorf("view = %q, expected %q", view, tt.wantView)
			}
			if preview != tt.wantPreview {
				t.Errorf("preview = %q, expected %q", preview, tt.wantPreview)
			}
		})
	}
}
