package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"p9e.in/hotinfo/config"
	"p9e.in/hotinfo/handlers"
	"p9e.in/hotinfo/middleware"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(cfg config.App) http.Handler {
	r := mux.NewRouter()

	// =====================================================
	// Public Routes (the PWA client is unauthenticated)
	// =====================================================
	r.HandleFunc("/api/v1/intake", handlers.SubmitIntake).Methods("POST")
	r.HandleFunc("/api/v1/intake", handlers.SubmitIntakeViaGet).Methods("GET")
	r.HandleFunc("/api/v1/routes", handlers.ListRoutes).Methods("GET")
	r.HandleFunc("/api/v1/files", handlers.UploadFileHandler).Methods("POST")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir("./uploads"))),
	)

	// =====================================================
	// Operator Routes (require API key)
	// =====================================================
	admin := r.PathPrefix("/api/v1/admin").Subrouter()
	admin.Use(middleware.APIKey(cfg.AdminAPIKey))

	admin.HandleFunc("/transcribe", handlers.RunTranscription).Methods("POST")
	admin.HandleFunc("/transfer-status", handlers.TransferStatus).Methods("GET")
	admin.HandleFunc("/import", handlers.ImportLegacyIntakes).Methods("POST")
	admin.HandleFunc("/cases", handlers.ListCases).Methods("GET")
	admin.HandleFunc("/cases/export", handlers.ExportCases).Methods("GET")
	admin.HandleFunc("/cases/{id}", handlers.UpdateCase).Methods("PUT")

	return r
}
