package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/content"
	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/logging"
	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/model"
	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/render"
)

func newTestServer(t *testing.T, staticDir string) http.Handler {
	t.Helper()
	fsys := fstest.MapFS{
		"bio.md": {Data: []byte("---\nname: Ada Example\ninterests: [Vision]\n---\n")},
		"publications.md": {Data: []byte(`---
publications:
  - title: Gardening Paper
    authors: [Ada Example]
    venue: Journal of Quantum Gardening
    year: 2024
    status: Published
---
`)},
		"projects.md": {Data: []byte("---\nprojects:\n  - id: xai-toolkit\n    title: XAI Toolkit\n---\n")},
		"broken.md":   {Data: []byte("---\ntitle: [\n---\n")},
	}
	store := content.NewStore(fsys, logging.Discard())
	renderer, err := render.New("")
	if err != nil {
		t.Fatalf("render.New failed: %v", err)
	}
	return New(store, renderer, Options{SiteTitle: "Portfolio", StaticDir: staticDir, Logger: logging.Discard()}).Handler()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestPage(t *testing.T) {
	rec := get(t, newTestServer(t, ""), "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Ada Example") || !strings.Contains(body, "Gardening Paper") {
		t.Error("page is missing loaded content")
	}
}

func TestSearchAPI(t *testing.T) {
	rec := get(t, newTestServer(t, ""), "/api/search?q=quantum")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var res model.SearchResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Bio || len(res.Research) != 0 || len(res.Publications) != 1 {
		t.Errorf("result = %+v", res)
	}
}

func TestContentAPI(t *testing.T) {
	h := newTestServer(t, "")

	rec := get(t, h, "/api/content")
	var p model.Portfolio
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Bio.Profile.Name != "Ada Example" || p.Degraded {
		t.Errorf("portfolio = %+v", p.Bio)
	}

	rec = get(t, h, "/api/content/publications")
	var pubs model.PublicationsSection
	if err := json.Unmarshal(rec.Body.Bytes(), &pubs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(pubs.Publications) != 1 || pubs.Publications[0].Year != "2024" {
		t.Errorf("publications = %+v", pubs)
	}

	if rec := get(t, h, "/api/content/blog"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown domain status = %d", rec.Code)
	}
}

func TestProjectAPI(t *testing.T) {
	h := newTestServer(t, "")

	rec := get(t, h, "/api/projects/xai-toolkit")
	var p model.Project
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Code != http.StatusOK || p.Title != "XAI Toolkit" {
		t.Errorf("project = %d %+v", rec.Code, p)
	}

	if rec := get(t, h, "/api/projects/missing"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown project status = %d", rec.Code)
	}
}

func TestDiagnosticsAPI(t *testing.T) {
	rec := get(t, newTestServer(t, ""), "/api/diagnostics")
	var st content.Stats
	if err := json.Unmarshal(rec.Body.Bytes(), &st); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if st.Total != 4 || st.Valid != 3 || len(st.Invalid) != 1 || st.Invalid[0] != "broken.md" {
		t.Errorf("stats = %+v", st)
	}
}

func TestStaticAssets(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "site.css"), []byte("body{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "img"), 0o755); err != nil {
		t.Fatal(err)
	}
	h := newTestServer(t, dir)

	rec := get(t, h, "/static/site.css")
	if rec.Code != http.StatusOK || rec.Body.String() != "body{}" {
		t.Errorf("site.css: %d %q", rec.Code, rec.Body.String())
	}
	if cc := rec.Header().Get("Cache-Control"); !strings.Contains(cc, "no-cache") {
		t.Errorf("cache control = %q", cc)
	}
	if rec := get(t, h, "/static/img/"); rec.Code != http.StatusNotFound {
		t.Errorf("directory listing status = %d, want 404", rec.Code)
	}
}
