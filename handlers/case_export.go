package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"
	"p9e.in/hotinfo/config"
	"p9e.in/hotinfo/models"
)

// ExportCases downloads the case table as xlsx (default) or csv. Rows are
// built by header-name lookup so the export column order can change without
// shuffling values.
func ExportCases(w http.ResponseWriter, r *http.Request) {
	var cases []models.Case
	if err := config.DB.Order("acquired_at ASC").Find(&cases).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	format := r.URL.Query().Get("format")
	filename := fmt.Sprintf("hotinfo_cases_%s", time.Now().Format("20060102_150405"))

	switch format {
	case "csv":
		data, err := casesToCSV(cases)
		if err != nil {
			http.Error(w, "failed to generate CSV file", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", filename))
		w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
		w.WriteHeader(http.StatusOK)
		w.Write(data)

	case "", "xlsx", "excel":
		f, err := casesToExcel(cases)
		if err != nil {
			http.Error(w, "failed to generate Excel file", http.StatusInternalServerError)
			return
		}
		buffer, err := f.WriteToBuffer()
		if err != nil {
			http.Error(w, "failed to write Excel file", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", filename))
		w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))
		w.WriteHeader(http.StatusOK)
		w.Write(buffer.Bytes())

	default:
		http.Error(w, "unsupported format: "+format, http.StatusBadRequest)
	}
}

// BuildExportRow resolves one case into cells matching the given headers,
// by name.
func BuildExportRow(c models.Case, headers []string) []string {
	row := make([]string, len(headers))
	for i, header := range headers {
		row[i] = c.ExportValue(header)
	}
	return row
}

func casesToExcel(cases []models.Case) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "案件管理"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	for i, header := range models.ExportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, c := range cases {
		row := BuildExportRow(c, models.ExportHeaders)
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheetName, cell, value)
		}
	}

	return f, nil
}

func casesToCSV(cases []models.Case) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(models.ExportHeaders); err != nil {
		return nil, err
	}
	for _, c := range cases {
		if err := writer.Write(BuildExportRow(c, models.ExportHeaders)); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
