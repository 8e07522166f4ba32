package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Route is one selectable area name offered to submitters. The registry is
// read-only to the service; operators edit it out of band.
type Route struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string    `gorm:"column:name;not null"             json:"name"`
	Note     string    `gorm:"column:note;not null;default:''"  json:"note"`
	Position int       `gorm:"column:position;not null;index"   json:"position"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index"          json:"-"`
}

// DefaultRouteNames is the fixed fallback list. Callers of the routes
// endpoint always receive a non-empty list: live rows when usable, otherwise
// these, in this order.
var DefaultRouteNames = []string{
	"東京都心エリア", "東京西部エリア", "東京東部エリア", "東京北部エリア",
	"東京南部エリア", "横浜中央エリア", "横浜北部エリア", "横浜南部エリア",
	"川崎エリア", "埼玉中央エリア", "埼玉西部エリア", "埼玉東部エリア",
	"千葉中央エリア", "千葉西部エリア",
}
