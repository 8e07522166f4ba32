package handlers

import (
	"p9e.in/hotinfo/config"
)

var (
	app         config.App
	notifier    *ChatworkNotifier
	uploader    Uploader
	intakeSvc   *IntakeService
	transcriber *TranscriptionService
)

// Setup wires the handler package's collaborators from the resolved
// deployment config. Called once from main after the database is up.
func Setup(cfg config.App) {
	app = cfg
	notifier = NewChatworkNotifier(cfg.ChatworkToken, cfg.ChatworkRoomID)
	uploader = NewUploader(cfg)
	store := &gormIntakeStore{db: config.DB}
	intakeSvc = NewIntakeService(store, uploader, notifier, cfg.SheetURL)
	transcriber = NewTranscriptionServiceWithStore(store, cfg.TranscribeBatch)
}
