package models

import (
	"testing"
	"time"
)

func TestCaseExportValue(t *testing.T) {
	acquired := time.Date(2025, 5, 16, 15, 32, 25, 0, time.UTC)
	responded := time.Date(2025, 5, 17, 9, 0, 0, 0, time.UTC)

	c := Case{
		AcquiredAt:      acquired,
		Priority:        PriorityHigh,
		Status:          CaseStatusInProgress,
		Assignee:        "営業一課",
		ResponseNote:    "訪問済み",
		ResponseDate:    &responded,
		Route:           "東京都心エリア",
		Category:        "工事",
		LocationText:    "35.68, 139.76",
		LocationURL:     "https://www.google.com/maps/search/?api=1&query=35.68%2C139.76",
		Material:        "配布済み",
		Progress:        "基礎工事中",
		Comment:         "現場確認",
		PhotoViewURL:    "https://drive.google.com/file/d/abc/view",
		PhotoPreviewURL: "https://drive.google.com/uc?export=view&id=abc",
	}

	tests := []struct {
		header   string
		expected string
	}{
		{"データ取得日時", "2025-05-16 15:32:25"},
		{"優先度", "高"},
		{"ステータス", "対応中"},
		{"担当者", "営業一課"},
		{"対応メモ", "訪問済み"},
		{"対応日", "2025-05-17 09:00:00"},
		{"ルート名", "東京都心エリア"},
		{"場所", "35.68, 139.76"},
		{"地図リンク", "https://www.google.com/maps/search/?api=1&query=35.68%2C139.76"},
		{"資料配布状況", "配布済み"},
		{"工事進捗状況", "基礎工事中"},
		{"カテゴリ", "工事"},
		{"コメント", "現場確認"},
		{"写真", "https://drive.google.com/file/d/abc/view"},
		{"写真プレビュー", "https://drive.google.com/uc?export=view&id=abc"},
		{"存在しない列", ""},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			if got := c.ExportValue(tt.header); got != tt.expected {
				t.Errorf("ExportValue(%q) = %q, expected %q", tt.header, got, tt.expected)
			}
		})
	}
}

func TestCaseExportValueEmptyResponseDate(t *testing.T) {
	c := Case{}
	if got := c.ExportValue("対応日"); got != "" {
		t.Errorf("expected empty 対応日 for nil ResponseDate, got %q", got)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range CaseStatuses {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, expected true", s)
		}
	}
	for _, s := range []string{"", "完了", "pending", "高"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, expected false", s)
		}
	}
}

func TestValidPriority(t *testing.T) {
	for _, p := range []string{"", "高", "中", "低"} {
		if !ValidPriority(p) {
			t.Errorf("ValidPriority(%q) = false, expected true", p)
		}
	}
	for _, p := range []string{"最高", "high", "未対応"} {
		if ValidPriority(p) {
			t.Errorf("ValidPriority(%q) = true, expected false", p)
		}
	}
}
