package handlers

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"p9e.in/hotinfo/models"
)

func TestBuildExportRowByName(t *testing.T) {
	c := models.Case{
		AcquiredAt:   time.Date(2025, 5, 16, 15, 32, 25, 0, time.UTC),
		Status:       models.CaseStatusPending,
		Route:        "東京都心エリア",
		Category:     "工事",
		LocationText: "35.68, 139.76",
		Comment:      "test",
	}

	headers := []string{"ルート名", "カテゴリ", "ステータス", "場所"}
	row := BuildExportRow(c, headers)
	expected := []string{"東京都心エリア", "工事", "未対応", "35.68, 139.76"}
	if !reflect.DeepEqual(row, expected) {
		t.Errorf("row = %v, expected %v", row, expected)
	}

	// Reordering headers must reorder values identically, never shuffle
	// them across columns.
	reordered := []string{"場所", "ステータス", "カテゴリ", "ルート名"}
	row = BuildExportRow(c, reordered)
	expected = []string{"35.68, 139.76", "未対応", "工事", "東京都心エリア"}
	if !reflect.DeepEqual(row, expected) {
		t.Errorf("reordered row = %v, expected %v", row, expected)
	}
}

func TestBuildExportRowUnknownHeader(t *testing.T) {
	c := models.Case{Route: "川崎エリア"}
	row := BuildExportRow(c, []string{"ルート名", "謎の列"})
	if row[0] != "川崎エリア" || row[1] != "" {
		t.Errorf("row = %v, expected unknown headers to yield empty cells", row)
	}
}

func TestCasesToCSV(t *testing.T) {
	cases := []models.Case{
		{
			AcquiredAt: time.Date(2025, 5, 16, 15, 32, 25, 0, time.UTC),
			Status:     models.CaseStatusPending,
			Route:      "東京都心エリア",
		},
	}

	data, err := casesToCSV(cases)
	if err != nil {
		t.Fatalf("casesToCSV: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected CSV output")
	}

	got := string(data)
	if want := "データ取得日時"; !strings.Contains(got, want) {
		t.Errorf("CSV missing header %q", want)
	}
	if want := "東京都心エリア"; !strings.Contains(got, want) {
		t.Errorf("CSV missing value %q", want)
	}
}
