package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"p9e.in/hotinfo/config"
	"p9e.in/hotinfo/models"
)

// Acknowledgement payloads mirror what the PWA client already parses:
// {"result":"success"} / {"result":"error","message":...} for intake,
// {"status":"ok",...} / {"status":"error",...} for registry reads.

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func ackSuccess(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]string{"result": "success"})
}

func ackError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"result": "error", "message": message})
}

// logError records a component-boundary failure to the log and, best-effort,
// to the error_logs table. It never fails the caller.
func logError(location string, err error, context string) {
	log.Printf("❌ [%s] %v (%s)", location, err, context)
	if config.DB == nil {
		return
	}
	entry := models.ErrorLog{
		Location: location,
		Message:  err.Error(),
		Context:  context,
	}
	if dbErr := config.DB.Create(&entry).Error; dbErr != nil {
		log.Printf("⚠️  error log write failed: %v", dbErr)
	}
}
