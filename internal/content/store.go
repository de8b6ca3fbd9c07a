// Package content reads the portfolio's front-matter files and turns them
// into normalized model records.
//
// Every per-domain operation degrades to documented defaults instead of
// returning an error: a missing or malformed file still yields a complete
// section, with the problem reported through the logger.
package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/model"
)

// Domain names one content file under the content root.
type Domain string

const (
	DomainBio          Domain = "bio"
	DomainResearch     Domain = "research"
	DomainPublications Domain = "publications"
	DomainProjects     Domain = "projects"
	DomainTeaching     Domain = "teaching"
	DomainSeminars     Domain = "seminars"
	DomainExperience   Domain = "experience"
)

// Domains lists every domain in page order.
var Domains = []Domain{
	DomainBio,
	DomainResearch,
	DomainPublications,
	DomainProjects,
	DomainTeaching,
	DomainSeminars,
	DomainExperience,
}

// ErrUnknownDomain is returned by ParseDomain for names outside Domains.
var ErrUnknownDomain = errors.New("unknown content domain")

// File is the file name backing the domain.
func (d Domain) File() string {
	return string(d) + ".md"
}

// ParseDomain maps a domain or file name such as "projects" or "projects.md" to its Domain.
func ParseDomain(name string) (Domain, error) {
	name = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), ".md")
	for _, d := range Domains {
		if string(d) == name {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDomain, name)
}

// Store reads content files from a file system rooted at the content directory.
// It holds no state besides the file system and logger; every call reads fresh.
type Store struct {
	fsys fs.FS
	log  *slog.Logger
}

// NewStore returns a Store reading from fsys; a nil logger means slog.Default.
func NewStore(fsys fs.FS, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{fsys: fsys, log: logger}
}

// Open returns a Store for the content directory dir.
func Open(dir string, logger *slog.Logger) *Store {
	return NewStore(os.DirFS(dir), logger)
}

// document is a content file split into front matter and body.
type document struct {
	meta fields
	body string
}

func emptyDocument() document {
	return document{meta: fields{}}
}

// read loads the document for d. A missing file or malformed front matter
// is logged and yields an empty document; any other failure is returned.
func (s *Store) read(ctx context.Context, d Domain) (document, error) {
	if err := ctx.Err(); err != nil {
		return emptyDocument(), err
	}

	name := d.File()
	data, err := fs.ReadFile(s.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Warn("content file not found", "domain", d, "file", name)
		return emptyDocument(), nil
	}
	if err != nil {
		return emptyDocument(), fmt.Errorf("error reading content file %s: %w", name, err)
	}

	doc, err := parseDocument(data)
	if err != nil {
		s.log.Error("could not parse content file", "domain", d, "file", name, "error", err)
		return emptyDocument(), nil
	}
	return doc, nil
}

// load is read with every failure degraded to an empty document.
func (s *Store) load(ctx context.Context, d Domain) document {
	doc, err := s.read(ctx, d)
	if err != nil {
		s.log.Error("failed to load content, using defaults", "domain", d, "error", err)
		return emptyDocument()
	}
	return doc
}

func parseDocument(data []byte) (document, error) {
	var meta map[string]interface{}
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return document{}, fmt.Errorf("invalid front matter: %w", err)
	}
	doc := document{meta: fields{}, body: strings.TrimSpace(string(body))}
	for k, v := range meta {
		doc.meta[k] = normalize(v)
	}
	return doc, nil
}

func (s *Store) logIssues(issues []model.Issue) {
	for _, is := range issues {
		s.log.Warn("content data issue",
			"domain", is.Domain,
			"field", is.Field,
			"index", is.Index,
			"value", is.Value,
			"message", is.Message)
	}
}
