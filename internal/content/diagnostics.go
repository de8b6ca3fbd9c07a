package content

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// Stats summarises which content files parse.
type Stats struct {
	Total   int      `json:"totalFiles"`
	Valid   int      `json:"validFiles"`
	Invalid []string `json:"invalidFiles"`
}

// Exists reports whether the named file exists under the content root.
func (s *Store) Exists(name string) bool {
	if !fs.ValidPath(name) {
		return false
	}
	_, err := fs.Stat(s.fsys, name)
	return err == nil
}

// Files lists the markdown files directly under the content root, sorted by name.
// An unreadable root yields an empty list.
func (s *Store) Files() []string {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		s.log.Warn("could not list content directory", "error", err)
		return []string{}
	}
	files := []string{}
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(path.Ext(e.Name()), ".md") {
			files = append(files, e.Name())
		}
	}
	return files
}

// Validate reads and parses the named file, returning why it is unusable.
func (s *Store) Validate(name string) error {
	if !fs.ValidPath(name) {
		return fmt.Errorf("invalid content file name %q", name)
	}
	data, err := fs.ReadFile(s.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("file does not exist: %w", err)
	}
	if err != nil {
		return fmt.Errorf("error reading %s: %w", name, err)
	}
	if _, err := parseDocument(data); err != nil {
		return err
	}
	return nil
}

// Stats validates every file from Files.
func (s *Store) Stats() Stats {
	st := Stats{Invalid: []string{}}
	for _, name := range s.Files() {
		st.Total++
		if err := s.Validate(name); err != nil {
			st.Invalid = append(st.Invalid, name)
			continue
		}
		st.Valid++
	}
	return st
}
