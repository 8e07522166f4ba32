package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"p9e.in/hotinfo/config"
	"p9e.in/hotinfo/models"
)

// LegacyRow is one row exported from the old spreadsheet, keyed by its
// Japanese header names. Cell values arrive as whatever the sheet held:
// strings, numbers, booleans.
type LegacyRow map[string]interface{}

// ImportLegacyIntakes ingests rows exported from the spreadsheet-era intake
// sheet. Rows already marked transferred keep their flag so the
// transcription service will not create duplicate cases for them.
func ImportLegacyIntakes(w http.ResponseWriter, r *http.Request) {
	var rows []LegacyRow
	if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
		ackError(w, http.StatusBadRequest, "リクエストの解析に失敗しました: "+err.Error())
		return
	}

	imported := 0
	for _, row := range rows {
		rec := LegacyRowToIntake(row)
		if err := config.DB.Create(&rec).Error; err != nil {
			logError("旧データ取込", err, rec.Route)
			ackError(w, http.StatusInternalServerError, "データの保存に失敗しました")
			return
		}
		imported++
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"result": "success",
		"count":  imported,
	})
}

// LegacyRowToIntake maps a sheet row to an intake row. The image URL header
// historically appeared with both half-width and full-width "URL", so both
// spellings are accepted.
func LegacyRowToIntake(row LegacyRow) models.Intake {
	rec := models.Intake{
		ReceivedAt:  legacyTime(row, "タイムスタンプ"),
		Route:       legacyString(row, "ルート名"),
		Category:    legacyString(row, "カテゴリ"),
		Comment:     legacyString(row, "コメント"),
		ImageURL:    legacyString(row, "画像URL", "画像ＵＲＬ"),
		Address:     legacyString(row, "住所"),
		Material:    legacyString(row, "資料配布状況"),
		Progress:    legacyString(row, "工事進捗状況"),
		Transferred: TruthyFlag(row["転記済みフラグ"]),
	}
	if lat, ok := legacyFloat(row, "緯度"); ok {
		if lng, ok := legacyFloat(row, "経度"); ok {
			rec.Latitude = &lat
			rec.Longitude = &lng
		}
	}
	return rec
}

// TruthyFlag interprets a sheet transferred-flag cell. Boolean true and the
// strings "TRUE"/"true" are transferred; everything else, including blanks
// and garbage, is not.
func TruthyFlag(v interface{}) bool {
	switch value := v.(type) {
	case bool:
		return value
	case string:
		return strings.EqualFold(strings.TrimSpace(value), "true")
	default:
		return false
	}
}

func legacyString(row LegacyRow, keys ...string) string {
	for _, key := range keys {
		if v, ok := row[key]; ok && v != nil {
			switch value := v.(type) {
			case string:
				return strings.TrimSpace(value)
			case float64:
				return strconv.FormatFloat(value, 'f', -1, 64)
			case bool:
				return strconv.FormatBool(value)
			}
		}
	}
	return ""
}

func legacyFloat(row LegacyRow, key string) (float64, bool) {
	switch value := row[key].(type) {
	case float64:
		return value, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func legacyTime(row LegacyRow, key string) time.Time {
	if s, ok := row[key].(string); ok {
		var jt models.JSONTime
		if err := jt.UnmarshalJSON([]byte(strconv.Quote(s))); err == nil && !jt.IsZero() {
			return jt.Time()
		}
	}
	return time.Now()
}
