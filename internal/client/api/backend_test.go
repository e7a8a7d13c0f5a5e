package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// capturedRequest is what the fake backend saw for one call.
type capturedRequest struct {
	Path        string
	ContentType string
	RequestID   string
	Auth        string
	Body        []byte
	Form        map[string][]string
	Files       map[string]string // field -> "filename:content"
	FilePart    int
}

// fakeBackend mimics the EMhub routes used by the client.
type fakeBackend struct {
	mu       sync.Mutex
	requests []capturedRequest

	status int
	reply  any
	raw    string
}

func newFakeBackend(t *testing.T) (*fakeBackend, *httptest.Server) {
	t.Helper()
	b := &fakeBackend{status: http.StatusOK, reply: map[string]any{"ok": true}}

	r := chi.NewRouter()
	r.Post("/get_content", b.content)
	r.Post("/api/{action}", b.action)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return b, ts
}

func (b *fakeBackend) capture(r *http.Request) capturedRequest {
	c := capturedRequest{
		Path:        r.URL.Path,
		ContentType: r.Header.Get("Content-Type"),
		RequestID:   r.Header.Get("X-Request-ID"),
		Auth:        r.Header.Get("Authorization"),
		Files:       map[string]string{},
	}
	if err := r.ParseMultipartForm(1 << 20); err == nil {
		c.Form = r.MultipartForm.Value
		for field, headers := range r.MultipartForm.File {
			for _, h := range headers {
				f, _ := h.Open()
				data, _ := io.ReadAll(f)
				f.Close()
				c.Files[field] = h.Filename + ":" + string(data)
				c.FilePart++
			}
		}
	} else if r.Header.Get("Content-Type") == "application/x-www-form-urlencoded" {
		_ = r.ParseForm()
		c.Form = r.PostForm
	} else {
		c.Body, _ = io.ReadAll(r.Body)
	}

	b.mu.Lock()
	b.requests = append(b.requests, c)
	b.mu.Unlock()
	return c
}

func (b *fakeBackend) content(w http.ResponseWriter, r *http.Request) {
	c := b.capture(r)
	switch c.Form["content_id"][0] {
	case "project_form":
		writeJSON(w, http.StatusOK, map[string]string{"html": "<form id=\"project-form\"></form>"})
	case "missing_form":
		writeJSON(w, http.StatusOK, map[string]string{"error": "unknown content"})
	default:
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<div>" + c.Form["content_id"][0] + "</div>"))
	}
}

func (b *fakeBackend) action(w http.ResponseWriter, r *http.Request) {
	b.capture(r)
	if b.raw != "" {
		w.WriteHeader(b.status)
		_, _ = w.Write([]byte(b.raw))
		return
	}
	writeJSON(w, b.status, b.reply)
}

func (b *fakeBackend) last(t *testing.T) capturedRequest {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.requests) == 0 {
		t.Fatal("no request reached the backend")
	}
	return b.requests[len(b.requests)-1]
}

func (b *fakeBackend) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
