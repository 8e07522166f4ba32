package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"p9e.in/hotinfo/models"
	"p9e.in/hotinfo/utils"
)

// IntakeService normalizes and persists submissions. Image persistence
// failure degrades the image ref to empty but never fails the submission;
// notification delivery is likewise off the acceptance path.
type IntakeService struct {
	store        IntakeStore
	uploader     Uploader
	notifier     *ChatworkNotifier
	dashboardURL string
}

func NewIntakeService(store IntakeStore, uploader Uploader, notifier *ChatworkNotifier, dashboardURL string) *IntakeService {
	return &IntakeService{
		store:        store,
		uploader:     uploader,
		notifier:     notifier,
		dashboardURL: dashboardURL,
	}
}

// Accept is the single normalization path both transports share. Inline
// image data takes precedence over a pre-hosted image URL.
func (s *IntakeService) Accept(ctx context.Context, sub models.Submission, now time.Time) (models.Intake, error) {
	if sub.ImageData != "" {
		sub.ImageURL = s.persistInlineImage(ctx, sub.ImageData)
		sub.ImageData = ""
	}

	rec := sub.ToIntake(now)
	if err := s.store.CreateIntake(&rec); err != nil {
		return rec, err
	}

	s.notifier.Dispatch(IntakeMessage(rec, s.dashboardURL))
	return rec, nil
}

// persistInlineImage decodes and uploads an inline base64 image, returning
// the public URL or "" on any failure. Failures are logged, not surfaced.
func (s *IntakeService) persistInlineImage(ctx context.Context, imageData string) string {
	b64, mimeType := utils.StripDataURL(imageData)
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		logError("画像デコード", err, "")
		return ""
	}

	name := utils.ImageObjectName(time.Now(), mimeType)
	url, err := s.uploader.Upload(ctx, data, name, mimeType)
	if err != nil {
		logError("画像保存", err, name)
		return ""
	}
	return url
}

// SubmitIntake accepts a JSON submission.
func SubmitIntake(w http.ResponseWriter, r *http.Request) {
	var sub models.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		ackError(w, http.StatusBadRequest, "リクエストの解析に失敗しました: "+err.Error())
		return
	}
	acceptSubmission(w, r, sub)
}

// SubmitIntakeViaGet accepts the same submission as query parameters. A
// requestType=routes request is a registry read instead; any other
// requestType is rejected the way the original endpoint did.
func SubmitIntakeViaGet(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	switch q.Get("requestType") {
	case "", "submit":
		acceptSubmission(w, r, submissionFromQuery(q))
	case "routes":
		ListRoutes(w, r)
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"status":  "error",
			"message": "不正なリクエストタイプです",
		})
	}
}

func submissionFromQuery(q url.Values) models.Submission {
	return models.Submission{
		Route:     q.Get("route"),
		Latitude:  models.ParseFlexFloat(q.Get("latitude")),
		Longitude: models.ParseFlexFloat(q.Get("longitude")),
		Category:  q.Get("category"),
		Comment:   q.Get("comment"),
		ImageURL:  q.Get("imageUrl"),
		Address:   q.Get("address"),
		Material:  q.Get("material"),
		Progress:  q.Get("progress"),
	}
}

func acceptSubmission(w http.ResponseWriter, r *http.Request, sub models.Submission) {
	rec, err := intakeSvc.Accept(r.Context(), sub, time.Now())
	if err != nil {
		logError("受信データ登録", err, rec.Route)
		ackError(w, http.StatusInternalServerError, "データの保存に失敗しました")
		return
	}
	ackSuccess(w)
}
