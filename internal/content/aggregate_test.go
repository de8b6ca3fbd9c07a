package content

import (
	"context"
	"errors"
	"testing"
)

func TestLoadAllComposesEveryDomain(t *testing.T) {
	s := newTestStore(fixtureFS())
	p := s.LoadAll(context.Background())

	if p.Degraded {
		t.Fatal("unexpected degraded page")
	}
	if p.Bio.Profile.Name != "Ada Example" {
		t.Errorf("bio name = %q", p.Bio.Profile.Name)
	}
	if len(p.Research.Items) != 2 || len(p.Publications.Publications) != 3 || len(p.Projects.Projects) != 2 {
		t.Errorf("counts research=%d publications=%d projects=%d",
			len(p.Research.Items), len(p.Publications.Publications), len(p.Projects.Projects))
	}
	if len(p.Teaching.Courses) != 2 || len(p.Seminars.All()) != 2 || len(p.Experience.Work) != 1 {
		t.Errorf("counts courses=%d seminars=%d work=%d",
			len(p.Teaching.Courses), len(p.Seminars.All()), len(p.Experience.Work))
	}
	if issues := p.Issues(); len(issues) != 0 {
		t.Errorf("unexpected issues %v", issues)
	}
}

func TestLoadAllWithDeletedDomainFile(t *testing.T) {
	fsys := fixtureFS()
	delete(fsys, "publications.md")
	s := newTestStore(fsys)

	p := s.LoadAll(context.Background())
	if p.Degraded {
		t.Fatal("a missing file must not degrade the page")
	}
	if p.Publications.Publications == nil || len(p.Publications.Publications) != 0 {
		t.Errorf("publications = %#v, want empty list", p.Publications.Publications)
	}
	if p.Publications.Title != defaultPublicationsTitle {
		t.Errorf("publications title = %q", p.Publications.Title)
	}
	if len(p.Projects.Projects) != 2 || p.Bio.Profile.Name != "Ada Example" {
		t.Error("other domains should still be populated")
	}
}

func TestLoadAllFaultFallsBackToMinimalPage(t *testing.T) {
	s := newTestStore(faultyFS{files: fixtureFS(), fail: "projects.md"})

	p := s.LoadAll(context.Background())
	if !p.Degraded {
		t.Fatal("expected degraded page")
	}
	if p.Bio.Profile.Name != "Ada Example" {
		t.Errorf("bio should be loaded best-effort, got %q", p.Bio.Profile.Name)
	}
	if len(p.Research.Items) != 2 {
		t.Errorf("research should be loaded best-effort, got %d items", len(p.Research.Items))
	}
	if len(p.Publications.Publications) != 0 || len(p.Projects.Projects) != 0 || len(p.Teaching.Courses) != 0 {
		t.Error("other domains should be empty on the minimal page")
	}
	if p.Seminars.Upcoming == nil || p.Experience.Work == nil {
		t.Error("lists on the minimal page must be non-nil")
	}
}

func TestLoadAllPanicFallsBackToMinimalPage(t *testing.T) {
	s := newTestStore(panickyFS{files: fixtureFS(), name: "seminars.md"})

	p := s.LoadAll(context.Background())
	if !p.Degraded {
		t.Fatal("expected degraded page after a loader panic")
	}
	if p.Bio.Profile.Name != "Ada Example" {
		t.Errorf("bio name = %q, want the loaded bio", p.Bio.Profile.Name)
	}
	if len(p.Seminars.All()) != 0 || len(p.Projects.Projects) != 0 {
		t.Error("other domains should be empty on the minimal page")
	}
}

func TestSingleDomainDegradesReadFault(t *testing.T) {
	s := newTestStore(faultyFS{files: fixtureFS(), fail: "projects.md"})

	sec := s.Projects(context.Background())
	if sec.Projects == nil || len(sec.Projects) != 0 || sec.Title != defaultProjectsTitle {
		t.Errorf("projects = %+v, want defaults", sec)
	}
}

func TestLoadAllCancelledContext(t *testing.T) {
	s := newTestStore(fixtureFS())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := s.LoadAll(ctx)
	if !p.Degraded {
		t.Error("expected degraded page for cancelled context")
	}
	if p.Bio.Profile.Name == "" {
		t.Error("bio name must never be empty")
	}
}

func TestSection(t *testing.T) {
	s := newTestStore(fixtureFS())
	ctx := context.Background()

	for _, d := range Domains {
		v, err := s.Section(ctx, d)
		if err != nil || v == nil {
			t.Errorf("Section(%s) = %v, %v", d, v, err)
		}
	}
	if _, err := s.Section(ctx, Domain("blog")); !errors.Is(err, ErrUnknownDomain) {
		t.Errorf("unknown domain error = %v", err)
	}
}
