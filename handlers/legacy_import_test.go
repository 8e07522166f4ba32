package handlers

import (
	"testing"
)

func TestTruthyFlag(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected bool
	}{
		{"boolean true", true, true},
		{"boolean false", false, false},
		{"upper TRUE", "TRUE", true},
		{"lower true", "true", true},
		{"padded TRUE", "  TRUE  ", true},
		{"FALSE string", "FALSE", false},
		{"empty string", "", false},
		{"garbage string", "yes", false},
		{"nil", nil, false},
		{"number", float64(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruthyFlag(tt.value); got != tt.expected {
				t.Errorf("TruthyFlag(%v) = %v, expected %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestLegacyRowToIntake(t *testing.T) {
	row := LegacyRow{
		"タイムスタンプ":  "2025-05-16T15:32:25",
		"ルート名":     "東京都心エリア",
		"緯度":       "35.68",
		"経度":       139.76,
		"カテゴリ":     "工事",
		"コメント":     "test",
		"画像URL":    "https://drive.google.com/file/d/abc/view",
		"住所":       "",
		"資料配布状況":   "配布済み",
		"工事進捗状況":   "基礎工事中",
		"転記済みフラグ":  "TRUE",
	}

	rec := LegacyRowToIntake(row)

	if rec.Route != "東京都心エリア" || rec.Category != "工事" || rec.Comment != "test" {
		t.Error("string fields not mapped")
	}
	if rec.Latitude == nil || *rec.Latitude != 35.68 {
		t.Errorf("Latitude = %v, expected 35.68 from string cell", rec.Latitude)
	}
	if rec.Longitude == nil || *rec.Longitude != 139.76 {
		t.Errorf("Longitude = %v, expected 139.76 from numeric cell", rec.Longitude)
	}
	if !rec.Transferred {
		t.Error("TRUE flag must import as transferred")
	}
	if rec.ReceivedAt.Year() != 2025 || rec.ReceivedAt.Month() != 5 {
		t.Errorf("ReceivedAt = %v, expected parsed timestamp", rec.ReceivedAt)
	}
}

func TestLegacyRowToIntakeFullWidthImageKey(t *testing.T) {
	row := LegacyRow{
		"画像ＵＲＬ": "https://example.com/a.jpg",
	}

	rec := LegacyRowToIntake(row)
	if rec.ImageURL != "https://example.com/a.jpg" {
		t.Errorf("ImageURL = %q, expected the full-width key variant to be read", rec.ImageURL)
	}
	if rec.Transferred {
		t.Error("missing flag must import as untransferred")
	}
}

func TestLegacyRowToIntakeCoordinatePairRequired(t *testing.T) {
	rec := LegacyRowToIntake(LegacyRow{"緯度": 35.68})
	if rec.Latitude != nil || rec.Longitude != nil {
		t.Error("latitude without longitude must be dropped")
	}
}
