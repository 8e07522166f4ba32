package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Intake is one accepted field submission, stored exactly as received after
// normalization. Rows are append-only; the only mutation after insert is the
// transferred flag flip performed by the transcription service.
type Intake struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Seq        int64     `gorm:"column:seq;autoIncrement;uniqueIndex"           json:"-"`
	ReceivedAt time.Time `gorm:"column:received_at;not null;index"              json:"receivedAt"`

	Route     string   `gorm:"column:route;not null"     json:"route"`
	Category  string   `gorm:"column:category;not null"  json:"category"`
	Comment   string   `gorm:"column:comment;not null"   json:"comment"`
	ImageURL  string   `gorm:"column:image_url;not null" json:"imageUrl"`
	Address   string   `gorm:"column:address;not null"   json:"address"`
	Material  string   `gorm:"column:material;not null"  json:"material"`
	Progress  string   `gorm:"column:progress;not null"  json:"progress"`
	Latitude  *float64 `gorm:"column:latitude"           json:"latitude,omitempty"`
	Longitude *float64 `gorm:"column:longitude"          json:"longitude,omitempty"`

	Transferred bool `gorm:"column:transferred;not null;default:false;index" json:"transferred"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index"          json:"-"`
}

// Submission is the inbound intake payload. Every field is optional; the
// same shape is accepted as JSON body or query parameters. ImageData, when
// present, takes precedence over ImageURL.
type Submission struct {
	Route     string    `json:"route"`
	Latitude  FlexFloat `json:"latitude"`
	Longitude FlexFloat `json:"longitude"`
	Category  string    `json:"category"`
	Comment   string    `json:"comment"`
	ImageURL  string    `json:"imageUrl"`
	Address   string    `json:"address"`
	Material  string    `json:"material"`
	Progress  string    `json:"progress"`
	ImageData string    `json:"imageData,omitempty"`
}

// ToIntake builds the normalized Intake row for a submission. String fields
// are trimmed and coerced to "" so the stored row never distinguishes absent
// from empty. Coordinates outside WGS84 bounds are dropped, not rejected;
// route/category/material/progress are stored verbatim and unvalidated.
func (s Submission) ToIntake(receivedAt time.Time) Intake {
	rec := Intake{
		ReceivedAt: receivedAt,
		Route:      strings.TrimSpace(s.Route),
		Category:   strings.TrimSpace(s.Category),
		Comment:    strings.TrimSpace(s.Comment),
		ImageURL:   strings.TrimSpace(s.ImageURL),
		Address:    strings.TrimSpace(s.Address),
		Material:   strings.TrimSpace(s.Material),
		Progress:   strings.TrimSpace(s.Progress),
	}
	if s.Latitude.Valid && s.Longitude.Valid {
		lat, lng := s.Latitude.Float64, s.Longitude.Float64
		if lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180 {
			rec.Latitude = &lat
			rec.Longitude = &lng
		}
	}
	return rec
}
