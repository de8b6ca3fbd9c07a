// Package server serves the portfolio page and its JSON API.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/content"
	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/model"
	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/render"
)

// Options configures the handler.
type Options struct {
	SiteTitle string
	BaseURL   string
	StaticDir string
	Logger    *slog.Logger
}

// Server renders the portfolio from a content store on every request.
type Server struct {
	store    *content.Store
	renderer *render.Renderer
	opts     Options
	log      *slog.Logger
}

// New returns a Server reading from store and rendering with renderer.
func New(store *content.Store, renderer *render.Renderer, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{store: store, renderer: renderer, opts: opts, log: logger}
}

// Handler returns the router. Every page and API request reads the content files afresh.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Route("/api", func(r chi.Router) {
		r.Get("/search", s.handleSearch)
		r.Get("/content", s.handlePortfolio)
		r.Get("/content/{domain}", s.handleSection)
		r.Get("/projects/{id}", s.handleProject)
		r.Get("/diagnostics", s.handleDiagnostics)
	})

	if s.opts.StaticDir != "" {
		if _, err := os.Stat(s.opts.StaticDir); err == nil {
			r.Handle("/static/*", noCache(http.StripPrefix("/static/", noListing(s.opts.StaticDir, http.FileServer(http.Dir(s.opts.StaticDir))))))
		} else {
			s.log.Warn("static directory not found, not serving assets", "dir", s.opts.StaticDir)
		}
	}
	return r
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	page := model.PageData{
		SiteTitle: s.opts.SiteTitle,
		BaseURL:   strings.TrimSuffix(s.opts.BaseURL, "/"),
		Portfolio: s.store.LoadAll(r.Context()),
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, page); err != nil {
		s.log.Error("failed to render page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Search(r.Context(), r.URL.Query().Get("q")))
}

func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.LoadAll(r.Context()))
}

func (s *Server) handleSection(w http.ResponseWriter, r *http.Request) {
	d, err := content.ParseDomain(chi.URLParam(r, "domain"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
		return
	}
	sec, err := s.store.Section(r.Context(), d)
	if errors.Is(err, content.ErrUnknownDomain) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, sec)
}

func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, ok := s.store.Projects(r.Context()).Find(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "project " + id + " not found"})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDiagnostics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Stats())
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// noCache sets headers that stop browsers caching assets while content is being edited.
func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}

// noListing answers 404 for directory paths that have no index.html.
func noListing(dir string, next http.Handler) http.Handler {
	root := http.Dir(dir)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			f, err := root.Open(strings.TrimSuffix("/"+r.URL.Path, "/") + "/index.html")
			if err != nil {
				http.NotFound(w, r)
				return
			}
			f.Close()
		}
		next.ServeHTTP(w, r)
	})
}
