package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"p9e.in/hotinfo/config"
	"p9e.in/hotinfo/models"
)

// ListCases returns triage cases, newest first, with optional filters:
// q (keyword across route/category/comment/location/assignee/note),
// status, route, from/to (acquired_at date bounds), limit/offset.
func ListCases(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := config.DB.Model(&models.Case{})

	if keyword := q.Get("q"); keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where(
			"route ILIKE ? OR category ILIKE ? OR comment ILIKE ? OR location_text ILIKE ? OR assignee ILIKE ? OR response_note ILIKE ?",
			like, like, like, like, like, like,
		)
	}
	if status := q.Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if route := q.Get("route"); route != "" {
		query = query.Where("route = ?", route)
	}
	if from := q.Get("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			query = query.Where("acquired_at >= ?", t)
		}
	}
	if to := q.Get("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			query = query.Where("acquired_at < ?", t.AddDate(0, 0, 1))
		}
	}

	limit := 50
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 && v <= 500 {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(q.Get("offset")); err == nil && v > 0 {
		offset = v
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var cases []models.Case
	if err := query.Order("acquired_at DESC").Limit(limit).Offset(offset).Find(&cases).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total":  total,
		"limit":  limit,
		"offset": offset,
		"cases":  cases,
	})
}

// CaseUpdateRequest is the operator triage update. Only these fields are
// writable; everything copied from the intake row is immutable.
type CaseUpdateRequest struct {
	Priority     *string          `json:"priority,omitempty"`
	Status       *string          `json:"status,omitempty"`
	Assignee     *string          `json:"assignee,omitempty"`
	ResponseNote *string          `json:"responseNote,omitempty"`
	ResponseDate *models.JSONTime `json:"responseDate,omitempty"`
}

// UpdateCase applies an operator triage update. Any change stamps the
// response date unless the request sets one explicitly.
func UpdateCase(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var c models.Case
	if err := config.DB.Where("id = ?", id).First(&c).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	var req CaseUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	updates := map[string]interface{}{}
	if req.Priority != nil {
		if !models.ValidPriority(*req.Priority) {
			http.Error(w, "invalid priority: "+*req.Priority, http.StatusBadRequest)
			return
		}
		updates["priority"] = *req.Priority
	}
	if req.Status != nil {
		if !models.ValidStatus(*req.Status) {
			http.Error(w, "invalid status: "+*req.Status, http.StatusBadRequest)
			return
		}
		updates["status"] = *req.Status
	}
	if req.Assignee != nil {
		updates["assignee"] = *req.Assignee
	}
	if req.ResponseNote != nil {
		updates["response_note"] = *req.ResponseNote
	}
	if len(updates) == 0 {
		writeJSON(w, http.StatusOK, c)
		return
	}

	if req.ResponseDate != nil && !req.ResponseDate.IsZero() {
		updates["response_date"] = req.ResponseDate.Time()
	} else {
		updates["response_date"] = time.Now()
	}

	if err := config.DB.Model(&c).Updates(updates).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := config.DB.Where("id = ?", id).First(&c).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// TransferStatus reports intake transcription progress: total rows,
// transferred, pending.
func TransferStatus(w http.ResponseWriter, r *http.Request) {
	var total, transferred int64
	if err := config.DB.Model(&models.Intake{}).Count(&total).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := config.DB.Model(&models.Intake{}).Where("transferred = ?", true).Count(&transferred).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{
		"total":       total,
		"transferred": transferred,
		"pending":     total - transferred,
	})
}
