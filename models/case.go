package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Case status values shown to operators. New cases always start at 未対応.
const (
	CaseStatusPending       = "未対応"
	CaseStatusInProgress    = "対応中"
	CaseStatusContracted    = "成約"
	CaseStatusNotContracted = "未成約"
	CaseStatusExcluded      = "対象外"
)

// Case priority values. Empty until an operator sets one.
const (
	PriorityHigh   = "高"
	PriorityMedium = "中"
	PriorityLow    = "低"
)

// CaseStatuses lists the allowed status transitions operators may set.
var CaseStatuses = []string{
	CaseStatusPending, CaseStatusInProgress, CaseStatusContracted,
	CaseStatusNotContracted, CaseStatusExcluded,
}

// Priorities lists the allowed priority values.
var Priorities = []string{PriorityHigh, PriorityMedium, PriorityLow}

// Case is the triage-ready record derived from one intake row. Exactly one
// Case may exist per intake row; the unique source_id index enforces that
// even if a transcription run is interrupted between the case insert and
// the flag flip on its source.
type Case struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SourceID   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"                 json:"sourceId"`
	AcquiredAt time.Time `gorm:"column:acquired_at;not null;index"              json:"acquiredAt"`

	Priority     string     `gorm:"column:priority;not null;default:''"              json:"priority"`
	Status       string     `gorm:"column:status;not null;default:'未対応';index"    json:"status"`
	Assignee     string     `gorm:"column:assignee;not null;default:''"              json:"assignee"`
	ResponseNote string     `gorm:"column:response_note;not null;default:''"         json:"responseNote"`
	ResponseDate *time.Time `gorm:"column:response_date"                             json:"responseDate,omitempty"`

	Route    string `gorm:"column:route;not null"    json:"route"`
	Category string `gorm:"column:category;not null" json:"category"`

	// Location is linkified: LocationText is what operators read,
	// LocationURL is the map target. Coordinates win over the address for
	// the link; the address (or formatted coordinates) is the display text.
	LocationText string `gorm:"column:location_text;not null" json:"locationText"`
	LocationURL  string `gorm:"column:location_url;not null"  json:"locationUrl"`

	Material string `gorm:"column:material;not null" json:"material"`
	Progress string `gorm:"column:progress;not null" json:"progress"`
	Comment  string `gorm:"column:comment;not null"  json:"comment"`

	// Photo is likewise dual-linked: a full-resolution view URL and an
	// inline preview URL. Both empty when the intake row had no image.
	PhotoViewURL    string `gorm:"column:photo_view_url;not null"    json:"photoViewUrl"`
	PhotoPreviewURL string `gorm:"column:photo_preview_url;not null" json:"photoPreviewUrl"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index"          json:"-"`
}

// ExportHeaders is the operator-facing column set for case exports, in the
// order the management sheet historically used.
var ExportHeaders = []string{
	"データ取得日時", "優先度", "ステータス", "担当者", "対応メモ", "対応日",
	"ルート名", "場所", "地図リンク", "資料配布状況", "工事進捗状況",
	"カテゴリ", "コメント", "写真", "写真プレビュー",
}

// ExportValue resolves one export cell by header name. Export rows are built
// by name lookup, never positional index, so reordering ExportHeaders (or a
// caller passing its own header order) cannot shuffle values across columns.
func (c Case) ExportValue(header string) string {
	switch header {
	case "データ取得日時":
		return c.AcquiredAt.Format("2006-01-02 15:04:05")
	case "優先度":
		return c.Priority
	case "ステータス":
		return c.Status
	case "担当者":
		return c.Assignee
	case "対応メモ":
		return c.ResponseNote
	case "対応日":
		if c.ResponseDate == nil {
			return ""
		}
		return c.ResponseDate.Format("2006-01-02 15:04:05")
	case "ルート名":
		return c.Route
	case "場所":
		return c.LocationText
	case "地図リンク":
		return c.LocationURL
	case "資料配布状況":
		return c.Material
	case "工事進捗状況":
		return c.Progress
	case "カテゴリ":
		return c.Category
	case "コメント":
		return c.Comment
	case "写真":
		return c.PhotoViewURL
	case "写真プレビュー":
		return c.PhotoPreviewURL
	default:
		return ""
	}
}

// ValidStatus reports whether s is an allowed case status.
func ValidStatus(s string) bool {
	for _, v := range CaseStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ValidPriority reports whether p is an allowed priority. Empty is allowed
// since new cases carry no priority until an operator sets one.
func ValidPriority(p string) bool {
	if p == "" {
		return true
	}
	for _, v := range Priorities {
		if v == p {
			return true
		}
	}
	return false
}
