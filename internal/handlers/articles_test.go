package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"article_board/internal/models"
	"article_board/internal/service"
)

func TestListArticles(t *testing.T) {
	t3 := time.Date(2026, 8, 3, 12, 0, 0, 0, time.UTC)
	arts := &mockArticles{resp: []models.Article{
		{ID: 3, Title: "third", Body: "b", Category: "go", SubmittedBy: 1, AuthorEmail: "a@x.com", CreatedAt: t3},
		{ID: 2, Title: "second", Body: "b", Category: "go", SubmittedBy: 1, AuthorEmail: "a@x.com", CreatedAt: t3.Add(-time.Hour)},
		{ID: 1, Title: "first", Body: "b", Category: "go", SubmittedBy: 1, AuthorEmail: "a@x.com", CreatedAt: t3.Add(-2 * time.Hour)},
	}}
	s := &service.Service{Articles: arts}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	var out []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 articles, got %d", len(out))
	}
	for i, wantTitle := range []string{"third", "second", "first"} {
		if out[i]["title"] != wantTitle {
			t.Fatalf("position %d: want %q, got %v", i, wantTitle, out[i]["title"])
		}
	}
	if out[0]["author_email"] != "a@x.com" {
		t.Fatalf("expected author_email, got %v", out[0])
	}
}

func TestListArticles_StoreError(t *testing.T) {
	arts := &mockArticles{listErr: errors.New("db down")}
	s := &service.Service{Articles: arts}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var out struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Error != errListArtsFailed {
		t.Fatalf("internal detail must not leak: %q", out.Error)
	}
}

func TestCreateArticle_RequiresAuth(t *testing.T) {
	arts := &mockArticles{createID: 1}
	auth := &mockAuth{parseErr: errors.New("should not matter")}
	s := &service.Service{Authorization: auth, Articles: arts}
	r := newTestRouter(s)

	// no Authorization header → 401, handler never runs
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/articles", bytes.NewBufferString(`{"title":"T","body":"B","category":"C"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without header, got %d", w.Code)
	}

	// bad token → 403
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/articles", bytes.NewBufferString(`{"title":"T","body":"B","category":"C"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer expired")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for bad token, got %d", w.Code)
	}

	if arts.lastUserID != 0 {
		t.Fatalf("create must not run on rejected requests")
	}
}

func TestCreateArticle_Success(t *testing.T) {
	arts := &mockArticles{createID: 9}
	auth := &mockAuth{parseID: 7}
	s := &service.Service{Authorization: auth, Articles: arts}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/articles", bytes.NewBufferString(`{"title":"T","body":"B","category":"C"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if int(m["id"].(float64)) != 9 {
		t.Fatalf("expected id=9, got %v", m["id"])
	}
	if m["message"] != msgArticleCreated {
		t.Fatalf("unexpected message: %v", m["message"])
	}

	// the stored row is attributed to the token's user id
	if arts.lastUserID != 7 {
		t.Fatalf("expected submitted_by from token (7), got %d", arts.lastUserID)
	}
	if arts.lastCreate.Title != "T" || arts.lastCreate.Body != "B" || arts.lastCreate.Category != "C" {
		t.Fatalf("unexpected payload: %+v", arts.lastCreate)
	}
}

func TestCreateArticle_MissingFields(t *testing.T) {
	arts := &mockArticles{}
	auth := &mockAuth{parseID: 7}
	s := &service.Service{Authorization: auth, Articles: arts}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/articles", bytes.NewBufferString(`{"title":"T"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", w.Code)
	}
}

func TestCreateArticle_StoreError(t *testing.T) {
	arts := &mockArticles{createErr: errors.New("insert failed")}
	auth := &mockAuth{parseID: 7}
	s := &service.Service{Authorization: auth, Articles: arts}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/articles", bytes.NewBufferString(`{"title":"T","body":"B","category":"C"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestListUsers(t *testing.T) {
	users := &mockUsers{resp: []models.User{
		{ID: 1, Email: "a@x.com", PasswordHash: "h1", CreatedAt: time.Now().UTC()},
		{ID: 2, Email: "b@x.com", PasswordHash: "h2", CreatedAt: time.Now().UTC()},
	}}
	s := &service.Service{Users: users}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	var out []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 users, got %d", len(out))
	}
	if out[0]["email"] != "a@x.com" {
		t.Fatalf("unexpected user: %v", out[0])
	}
	if _, leaked := out[0]["password_hash"]; leaked {
		t.Fatalf("password hash must not be serialized: %v", out[0])
	}
}

func TestListUsers_StoreError(t *testing.T) {
	users := &mockUsers{err: errors.New("db down")}
	s := &service.Service{Users: users}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestRootAndHealth(t *testing.T) {
	s := &service.Service{}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("root status=%d", w.Code)
	}
	var m map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["message"] == "" {
		t.Fatalf("expected greeting message, got %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}
}
