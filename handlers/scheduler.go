package handlers

import (
	"log"
	"time"
)

// TranscriptionScheduler runs the transcription service on a fixed
// interval. Errors abort the current run only; the next tick retries.
type TranscriptionScheduler struct {
	service  *TranscriptionService
	notifier *ChatworkNotifier
	interval time.Duration
}

func NewTranscriptionScheduler(service *TranscriptionService, notifier *ChatworkNotifier) *TranscriptionScheduler {
	return &TranscriptionScheduler{
		service:  service,
		notifier: notifier,
		interval: time.Hour,
	}
}

// Start blocks, ticking forever. Run it on its own goroutine.
func (s *TranscriptionScheduler) Start() {
	log.Printf("📅 転記スケジューラを開始します（%s間隔）", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for range ticker.C {
		s.runOnce()
	}
}

func (s *TranscriptionScheduler) runOnce() {
	count, err := s.service.Transcribe()
	if err != nil {
		logError("定期転記", err, "")
		return
	}
	if count > 0 {
		s.notifier.Dispatch(TranscribeMessage(count, time.Now(), app.SheetURL))
	}
}
