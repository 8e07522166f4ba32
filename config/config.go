package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// App holds deployment configuration, resolved once at startup and passed
// to components explicitly. Nothing else reads the environment after Load.
type App struct {
	Port            string
	DatabaseDSN     string
	GCSBucket       string
	UseGCS          bool
	UploadFolder    string
	ChatworkToken   string
	ChatworkRoomID  string
	AdminAPIKey     string
	SheetURL        string // operator-facing link appended to notifications
	TranscribeBatch int
}

// Load reads .env (if present) and resolves the App config.
func Load() App {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	app := App{
		Port:            getenv("PORT", "8080"),
		DatabaseDSN:     os.Getenv("DB_DSN"),
		GCSBucket:       os.Getenv("GCS_BUCKET"),
		UseGCS:          resolveUseGCS(),
		UploadFolder:    getenv("UPLOAD_FOLDER", "hotinfo-images"),
		ChatworkToken:   os.Getenv("CHATWORK_API_TOKEN"),
		ChatworkRoomID:  os.Getenv("CHATWORK_ROOM_ID"),
		AdminAPIKey:     os.Getenv("ADMIN_API_KEY"),
		SheetURL:        os.Getenv("DASHBOARD_URL"),
		TranscribeBatch: getenvInt("TRANSCRIBE_BATCH", 500),
	}
	return app
}

// Connect opens the database and runs migrations and seeding.
func Connect(app App) {
	var err error
	// TranslateError lets callers match gorm.ErrDuplicatedKey on unique
	// violations; the transcription service depends on it.
	DB, err = gorm.Open(postgres.Open(app.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrations(DB); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	SeedDefaultRoutes(DB)
}

// resolveUseGCS picks the blob store for the environment: GCS in
// production (Cloud Run sets K_SERVICE; GOOGLE_APPLICATION_CREDENTIALS
// covers the rest), local disk for development.
func resolveUseGCS() bool {
	return os.Getenv("USE_GCS") == "true" ||
		os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != "" ||
		os.Getenv("K_SERVICE") != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
