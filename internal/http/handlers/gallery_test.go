package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/toygarage/server/internal/domain"
)

func getJSON(t *testing.T, router http.Handler, path string, out any) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if out != nil {
		if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return rec.Code
}

func TestGalleryOrderingAndLimit(t *testing.T) {
	app, _ := newTestApp(t)
	router := newTestRouter(app)

	for i := 0; i < 3; i++ {
		cookie := &http.Cookie{Name: "toy_uid", Value: "toy-user-" + string(rune('a'+i))}
		if rec := postJSON(t, router, "/api/generate", `{"image":"`+testDataURI+`"}`, cookie); rec.Code != http.StatusCreated {
			t.Fatalf("generate %d: status = %d", i, rec.Code)
		}
	}

	var resp struct {
		Items []domain.Generation `json:"items"`
	}
	if code := getJSON(t, router, "/api/gallery", &resp); code != http.StatusOK {
		t.Fatalf("gallery status = %d", code)
	}
	if len(resp.Items) != 3 {
		t.Fatalf("gallery has %d items", len(resp.Items))
	}
	for i := 1; i < len(resp.Items); i++ {
		if resp.Items[i-1].CreatedAt.Before(resp.Items[i].CreatedAt) {
			t.Fatalf("gallery not newest first at %d", i)
		}
	}

	var limited struct {
		Items []domain.Generation `json:"items"`
	}
	if code := getJSON(t, router, "/api/gallery?limit=2", &limited); code != http.StatusOK {
		t.Fatalf("limited gallery status = %d", code)
	}
	if len(limited.Items) != 2 {
		t.Fatalf("limited gallery has %d items, want 2", len(limited.Items))
	}
}

func TestToggleLikeRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)
	router := newTestRouter(app)
	gen := app.Store.SaveGeneration("owner", "input", "p", "", timeNow())

	cookie := &http.Cookie{Name: "toy_uid", Value: "toy-fan"}
	var first struct {
		Generation domain.Generation `json:"generation"`
	}
	rec := postJSON(t, router, "/api/gallery/"+gen.ID+"/like", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("like status = %d", rec.Code)
	}
	if err := json.NewDecoder(rec.Body).Decode(&first); err != nil {
		t.Fatalf("decode like response: %v", err)
	}
	if first.Generation.Likes != 1 {
		t.Fatalf("likes = %d after like", first.Generation.Likes)
	}

	rec = postJSON(t, router, "/api/gallery/"+gen.ID+"/like", "", cookie)
	var second struct {
		Generation domain.Generation `json:"generation"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&second); err != nil {
		t.Fatalf("decode unlike response: %v", err)
	}
	if second.Generation.Likes != 0 {
		t.Fatalf("likes = %d after unlike, want 0", second.Generation.Likes)
	}
}

func TestToggleLikeUnknownID(t *testing.T) {
	app, _ := newTestApp(t)
	router := newTestRouter(app)

	rec := postJSON(t, router, "/api/gallery/no-such-id/like", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestLogsEndpoint(t *testing.T) {
	app, _ := newTestApp(t)
	router := newTestRouter(app)

	if rec := postJSON(t, router, "/api/generate", `{"image":"`+testDataURI+`"}`, nil); rec.Code != http.StatusCreated {
		t.Fatalf("generate: status = %d", rec.Code)
	}

	var resp struct {
		Items []domain.LogEntry `json:"items"`
	}
	if code := getJSON(t, router, "/api/logs", &resp); code != http.StatusOK {
		t.Fatalf("logs status = %d", code)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("logs has %d entries, want 1", len(resp.Items))
	}
	if resp.Items[0].Status != domain.StatusCompleted {
		t.Fatalf("log status = %q", resp.Items[0].Status)
	}
}

func TestStatsEndpoint(t *testing.T) {
	app, gen := newTestApp(t)
	router := newTestRouter(app)

	if rec := postJSON(t, router, "/api/generate", `{"image":"`+testDataURI+`"}`, &http.Cookie{Name: "toy_uid", Value: "toy-a"}); rec.Code != http.StatusCreated {
		t.Fatalf("generate: status = %d", rec.Code)
	}
	gen.err = errTest
	if rec := postJSON(t, router, "/api/generate", `{"image":"`+testDataURI+`"}`, &http.Cookie{Name: "toy_uid", Value: "toy-b"}); rec.Code != http.StatusCreated {
		t.Fatalf("generate: status = %d", rec.Code)
	}

	var resp struct {
		Total     int `json:"total"`
		Completed int `json:"completed"`
		Failed    int `json:"failed"`
		Users     int `json:"users"`
	}
	if code := getJSON(t, router, "/api/stats", &resp); code != http.StatusOK {
		t.Fatalf("stats status = %d", code)
	}
	if resp.Total != 2 || resp.Completed != 1 || resp.Failed != 1 {
		t.Fatalf("stats = %+v", resp)
	}
	if resp.Users != 2 {
		t.Fatalf("users = %d, want 2", resp.Users)
	}
}

func TestHealthEndpoints(t *testing.T) {
	app, _ := newTestApp(t)
	router := newTestRouter(app)

	if code := getJSON(t, router, "/healthz", nil); code != http.StatusOK {
		t.Fatalf("healthz status = %d", code)
	}
	var probe map[string]any
	if code := getJSON(t, router, "/healthz/storage", &probe); code != http.StatusOK {
		t.Fatalf("storage probe status = %d: %v", code, probe)
	}
	if probe["status"] != "ok" {
		t.Fatalf("probe = %v", probe)
	}
}
