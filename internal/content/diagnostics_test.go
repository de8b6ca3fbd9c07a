package content

import (
	"reflect"
	"testing"
	"testing/fstest"
)

func TestDiagnostics(t *testing.T) {
	s := newTestStore(fstest.MapFS{
		"bio.md":          {Data: []byte(bioFixture)},
		"research.md":     {Data: []byte("---\nitems: [\n---\n")},
		"notes.txt":       {Data: []byte("not content")},
		"plain.md":        {Data: []byte("# Just markdown\n")},
		"drafts/draft.md": {Data: []byte("---\ntitle: x\n---\n")},
	})

	if !s.Exists("bio.md") || s.Exists("teaching.md") || s.Exists("../bio.md") {
		t.Error("Exists gave wrong answers")
	}

	if got, want := s.Files(), []string{"bio.md", "plain.md", "research.md"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Files() = %v, want %v", got, want)
	}

	if err := s.Validate("bio.md"); err != nil {
		t.Errorf("Validate(bio.md) = %v", err)
	}
	if err := s.Validate("research.md"); err == nil {
		t.Error("Validate(research.md) should fail")
	}
	if err := s.Validate("missing.md"); err == nil {
		t.Error("Validate(missing.md) should fail")
	}

	st := s.Stats()
	if st.Total != 3 || st.Valid != 2 || !reflect.DeepEqual(st.Invalid, []string{"research.md"}) {
		t.Errorf("Stats() = %+v", st)
	}
}

func TestFilesOnUnreadableRoot(t *testing.T) {
	s := newTestStore(faultyFS{files: fstest.MapFS{}, fail: "."})
	if files := s.Files(); files == nil || len(files) != 0 {
		t.Errorf("Files() = %#v, want empty list", files)
	}
	if st := s.Stats(); st.Total != 0 || st.Invalid == nil {
		t.Errorf("Stats() = %+v", st)
	}
}
