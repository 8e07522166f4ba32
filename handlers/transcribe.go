package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"gorm.io/gorm"
	"p9e.in/hotinfo/models"
	"p9e.in/hotinfo/utils"
)

// ErrCaseExists is reported by CreateCase when the source intake row
// already has a case, which happens when an earlier run was interrupted
// between the case insert and the flag flip.
var ErrCaseExists = errors.New("案件は既に存在します")

// IntakeStore is the persistence surface the intake and transcription
// services need. The production implementation is GORM over Postgres.
type IntakeStore interface {
	CreateIntake(rec *models.Intake) error
	PendingIntakes(limit int) ([]models.Intake, error)
	CreateCase(c *models.Case) error
	MarkTransferred(id uuid.UUID) (bool, error)
}

type gormIntakeStore struct {
	db *gorm.DB
}

func (s *gormIntakeStore) CreateIntake(rec *models.Intake) error {
	return s.db.Create(rec).Error
}

func (s *gormIntakeStore) PendingIntakes(limit int) ([]models.Intake, error) {
	var intakes []models.Intake
	err := s.db.
		Where("transferred = ?", false).
		Order("received_at ASC, seq ASC").
		Limit(limit).
		Find(&intakes).Error
	return intakes, err
}

func (s *gormIntakeStore) CreateCase(c *models.Case) error {
	if err := s.db.Create(c).Error; err != nil {
		// Relies on TranslateError mapping unique violations.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCaseExists
		}
		return err
	}
	return nil
}

func (s *gormIntakeStore) MarkTransferred(id uuid.UUID) (bool, error) {
	res := s.db.Model(&models.Intake{}).
		Where("id = ? AND transferred = ?", id, false).
		Update("transferred", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// TranscriptionService derives triage cases from untransferred intake rows.
// Safe to invoke repeatedly and concurrently: the per-row conditional flag
// flip and the unique case source_id together guarantee at most one case
// per intake row.
type TranscriptionService struct {
	store IntakeStore
	batch int
}

func NewTranscriptionService(db *gorm.DB, batch int) *TranscriptionService {
	return NewTranscriptionServiceWithStore(&gormIntakeStore{db: db}, batch)
}

func NewTranscriptionServiceWithStore(store IntakeStore, batch int) *TranscriptionService {
	if batch <= 0 {
		batch = 500
	}
	return &TranscriptionService{store: store, batch: batch}
}

// Transcribe processes untransferred intake rows in arrival order and
// returns the number of cases created. Order per row is case-append then
// flag-flip, so an interruption can at worst leave a case whose source row
// is still unflagged; the next run skips re-creating it via the unique
// source_id and only flips the flag. A mid-run error aborts the run,
// leaving already-flipped rows flipped; retry is the next invocation.
func (ts *TranscriptionService) Transcribe() (int, error) {
	intakes, err := ts.store.PendingIntakes(ts.batch)
	if err != nil {
		return 0, fmt.Errorf("受信データの読み込み: %w", err)
	}

	if len(intakes) == 0 {
		log.Println("転記するデータがありません")
		return 0, nil
	}
	log.Printf("%d件のデータを処理します", len(intakes))

	count := 0
	for i := range intakes {
		rec := &intakes[i]
		if rec.Transferred {
			continue
		}

		c := BuildCase(*rec)
		if err := ts.store.CreateCase(&c); err != nil && !errors.Is(err, ErrCaseExists) {
			return count, fmt.Errorf("案件追加 (intake %s): %w", rec.ID, err)
		}
		// On ErrCaseExists the case is left over from an interrupted
		// earlier run whose flag flip never landed. Fall through and
		// flip it now.

		flipped, err := ts.store.MarkTransferred(rec.ID)
		if err != nil {
			return count, fmt.Errorf("転記済みフラグ更新 (intake %s): %w", rec.ID, err)
		}
		if !flipped {
			// A concurrent run flipped it first; its case exists, skip.
			continue
		}
		count++
	}

	log.Printf("%d件のデータを転記しました", count)
	return count, nil
}

// BuildCase maps one intake row to its triage case. Route, category,
// material, progress and comment are copied verbatim; location and photo
// are linkified; triage fields start at their defaults.
func BuildCase(rec models.Intake) models.Case {
	var point *orb.Point
	if rec.Latitude != nil && rec.Longitude != nil {
		p := orb.Point{*rec.Longitude, *rec.Latitude}
		point = &p
	}
	loc := utils.LinkifyLocation(point, rec.Address)
	view, preview := utils.PhotoLinks(rec.ImageURL)

	return models.Case{
		SourceID:        rec.ID,
		AcquiredAt:      rec.ReceivedAt,
		Status:          models.CaseStatusPending,
		Route:           rec.Route,
		Category:        rec.Category,
		LocationText:    loc.Text,
		LocationURL:     loc.URL,
		Material:        rec.Material,
		Progress:        rec.Progress,
		Comment:         rec.Comment,
		PhotoViewURL:    view,
		PhotoPreviewURL: preview,
	}
}

// RunTranscription triggers an on-demand transcription run.
func RunTranscription(w http.ResponseWriter, r *http.Request) {
	count, err := transcriber.Transcribe()
	if err != nil {
		logError("転記処理", err, "")
		ackError(w, http.StatusInternalServerError, "転記処理に失敗しました")
		return
	}

	if count > 0 {
		notifier.Dispatch(TranscribeMessage(count, time.Now(), app.SheetURL))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"result": "success",
		"count":  count,
	})
}
