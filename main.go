package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"p9e.in/hotinfo/config"
	"p9e.in/hotinfo/handlers"
	"p9e.in/hotinfo/routes"
)

var (
	Version   = "dev"
	BuildTime = ""
)

func main() {

	versionFlag := flag.Bool("version", false, "Print version info and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("Version:   %s\n", Version)
		fmt.Printf("BuildTime: %s\n", BuildTime)
		os.Exit(0)
	}

	cfg := config.Load()
	config.Connect(cfg)
	handlers.Setup(cfg)

	// Hourly transcription runs alongside the server; on-demand runs go
	// through the admin endpoint.
	scheduler := handlers.NewTranscriptionScheduler(
		handlers.NewTranscriptionService(config.DB, cfg.TranscribeBatch),
		handlers.NewChatworkNotifier(cfg.ChatworkToken, cfg.ChatworkRoomID),
	)
	go scheduler.Start()

	handler := routes.RegisterRoutes(cfg)
	handlerWithCORS := enableCORS(handler)
	log.Println("Server starting at port", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handlerWithCORS))
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Required CORS headers
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, x-api-key, X-Requested-With")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")

		// Handle preflight (OPTIONS)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
