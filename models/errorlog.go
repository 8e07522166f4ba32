package models

import (
	"time"

	"github.com/google/uuid"
)

// ErrorLog is a diagnostics row recorded at component boundaries. These are
// supplementary: callers always receive a structured acknowledgement, never
// a raw stack trace.
type ErrorLog struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Location string    `gorm:"column:location;not null"            json:"location"`
	Message  string    `gorm:"column:message;not null"             json:"message"`
	Stack    string    `gorm:"column:stack;not null;default:''"    json:"stack"`
	Context  string    `gorm:"column:context;not null;default:''"  json:"context"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
}
