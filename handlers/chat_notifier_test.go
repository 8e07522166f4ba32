package handlers

import (
	"strings"
	"testing"
	"time"

	"p9e.in/hotinfo/models"
)

func TestIntakeMessage(t *testing.T) {
	received := time.Date(2025, 5, 16, 15, 32, 25, 0, time.UTC)

	t.Run("full record", func(t *testing.T) {
		lat, lng := 35.68, 139.76
		rec := models.Intake{
			ReceivedAt: received,
			Route:      "東京都心エリア",
			Category:   "工事",
			Address:    "東京都千代田区",
			Material:   "配布済み",
			Progress:   "基礎工事中",
			Comment:    "現場確認",
			Latitude:   &lat,
			Longitude:  &lng,
		}

		msg := IntakeMessage(rec, "https://example.com/dashboard")

		for _, want := range []string{
			"【新規HOT情報受信】",
			"ルート: 東京都心エリア",
			"カテゴリ: 工事",
			"場所: 東京都千代田区",
			"資料配布: 配布済み",
			"工事進捗: 基礎工事中",
			"コメント: 現場確認",
			"確認はこちら: https://example.com/dashboard",
		} {
			if !strings.Contains(msg, want) {
				t.Errorf("message missing %q:\n%s", want, msg)
			}
		}
	})

	t.Run("coordinates fill in for missing address", func(t *testing.T) {
		lat, lng := 35.68, 139.76
		rec := models.Intake{ReceivedAt: received, Latitude: &lat, Longitude: &lng}

		msg := IntakeMessage(rec, "")
		if !strings.Contains(msg, "場所: 35.68, 139.76") {
			t.Errorf("message missing coordinate location:\n%s", msg)
		}
	})

	t.Run("blank fields get placeholders", func(t *testing.T) {
		msg := IntakeMessage(models.Intake{ReceivedAt: received}, "")

		for _, want := range []string{
			"ルート: 未設定",
			"カテゴリ: 未設定",
			"場所: 未設定",
			"コメント: なし",
		} {
			if !strings.Contains(msg, want) {
				t.Errorf("message missing %q:\n%s", want, msg)
			}
		}
		if strings.Contains(msg, "確認はこちら") {
			t.Error("dashboard link must be omitted when unconfigured")
		}
	})
}

func TestTranscribeMessage(t *testing.T) {
	msg := TranscribeMessage(3, time.Date(2025, 5, 16, 16, 0, 0, 0, time.UTC), "")
	if !strings.Contains(msg, "【HOT情報転記完了】") {
		t.Errorf("message missing title:\n%s", msg)
	}
	if !strings.Contains(msg, "3件") {
		t.Errorf("message missing count:\n%s", msg)
	}
}

func TestChatworkNotifierDisabled(t *testing.T) {
	n := NewChatworkNotifier("", "")
	if n.Enabled() {
		t.Error("notifier without token/room must be disabled")
	}
	if err := n.Send("ignored"); err != nil {
		t.Errorf("disabled Send must be a no-op, got %v", err)
	}
}
