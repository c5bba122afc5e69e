package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/toygarage/server/internal/domain"
)

func TestGetSettingsDefaults(t *testing.T) {
	app, _ := newTestApp(t)
	router := newTestRouter(app)

	var resp struct {
		Settings domain.Settings `json:"settings"`
	}
	if code := getJSON(t, router, "/api/settings", &resp); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if resp.Settings.PerUserDailyQuota != 1 || resp.Settings.GlobalLifetimeQuota != 50 {
		t.Fatalf("default quotas = %+v", resp.Settings)
	}
	if resp.Settings.PromptTemplate == "" || resp.Settings.NoticeMessage == "" {
		t.Fatalf("default text fields empty: %+v", resp.Settings)
	}
}

func TestUpdateSettingsClampViaHTTP(t *testing.T) {
	app, _ := newTestApp(t)
	router := newTestRouter(app)

	rec := postJSON(t, router, "/api/settings", `{"perUserDailyQuota":0,"globalLifetimeQuota":-5}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, clamp must not reject", rec.Code)
	}
	var resp struct {
		Settings domain.Settings `json:"settings"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Settings.PerUserDailyQuota != 1 || resp.Settings.GlobalLifetimeQuota != 1 {
		t.Fatalf("quotas = %+v, want clamped to 1", resp.Settings)
	}
}

func TestUpdateSettingsPartialViaHTTP(t *testing.T) {
	app, _ := newTestApp(t)
	router := newTestRouter(app)
	before := app.Store.Settings()

	rec := postJSON(t, router, "/api/settings", `{"noticeMessage":"new notice"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	after := app.Store.Settings()
	if after.NoticeMessage != "new notice" {
		t.Fatalf("notice = %q", after.NoticeMessage)
	}
	if after.PromptTemplate != before.PromptTemplate || after.PerUserDailyQuota != before.PerUserDailyQuota {
		t.Fatalf("partial update touched other fields: %+v", after)
	}
}

func TestUpdateSettingsRejectsEmptyBody(t *testing.T) {
	app, _ := newTestApp(t)
	router := newTestRouter(app)

	rec := postJSON(t, router, "/api/settings", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for empty body", rec.Code)
	}
}
