package handlers

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"p9e.in/hotinfo/models"
)

// ChatworkNotifier posts plain-text messages to a Chatwork room. Delivery
// is best-effort and always off the request path: intake correctness never
// depends on it.
type ChatworkNotifier struct {
	Token  string
	RoomID string
	Client *http.Client
}

func NewChatworkNotifier(token, roomID string) *ChatworkNotifier {
	return &ChatworkNotifier{
		Token:  token,
		RoomID: roomID,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether a token and room are configured.
func (n *ChatworkNotifier) Enabled() bool {
	return n != nil && n.Token != "" && n.RoomID != ""
}

// Send posts a message synchronously.
func (n *ChatworkNotifier) Send(message string) error {
	if !n.Enabled() {
		return nil
	}

	endpoint := fmt.Sprintf("https://api.chatwork.com/v2/rooms/%s/messages", n.RoomID)
	form := url.Values{"body": {message}}

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("chatwork request: %w", err)
	}
	req.Header.Set("X-ChatWorkToken", n.Token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.Client.Do(req)
	if err != nil {
		return fmt.Errorf("chatwork post: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("chatwork post: status %d", resp.StatusCode)
	}
	return nil
}

// Dispatch sends on a detached goroutine, logging failures.
func (n *ChatworkNotifier) Dispatch(message string) {
	if !n.Enabled() {
		return
	}
	go func() {
		if err := n.Send(message); err != nil {
			logError("Chatwork通知", err, "")
		}
	}()
}

// orDefault substitutes the 未設定 placeholder for blank notification
// fields, the way operators expect them rendered.
func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// IntakeMessage renders the new-submission notification.
func IntakeMessage(rec models.Intake, dashboardURL string) string {
	location := rec.Address
	if location == "" && rec.Latitude != nil && rec.Longitude != nil {
		location = strconv.FormatFloat(*rec.Latitude, 'f', -1, 64) + ", " +
			strconv.FormatFloat(*rec.Longitude, 'f', -1, 64)
	}

	msg := "【新規HOT情報受信】\n" +
		"ルート: " + orDefault(rec.Route, "未設定") + "\n" +
		"カテゴリ: " + orDefault(rec.Category, "未設定") + "\n" +
		"場所: " + orDefault(location, "未設定") + "\n" +
		"資料配布: " + orDefault(rec.Material, "未設定") + "\n" +
		"工事進捗: " + orDefault(rec.Progress, "未設定") + "\n" +
		"コメント: " + orDefault(rec.Comment, "なし") + "\n" +
		"受信日時: " + rec.ReceivedAt.Format("2006/01/02 15:04:05")
	if dashboardURL != "" {
		msg += "\n\n確認はこちら: " + dashboardURL
	}
	return msg
}

// TranscribeMessage renders the transcription run summary, sent only when
// new cases were created.
func TranscribeMessage(count int, at time.Time, dashboardURL string) string {
	msg := "【HOT情報転記完了】\n" +
		fmt.Sprintf("%d件の新規データを案件管理へ転記しました。\n", count) +
		"日時: " + at.Format("2006/01/02 15:04:05")
	if dashboardURL != "" {
		msg += "\n\n確認はこちら: " + dashboardURL
	}
	return msg
}
