package content

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"

	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/model"
)

// Search matches query as a case-insensitive substring against the bio,
// research topics and publications. There is no ranking or tokenization,
// so the empty query is contained in every record and matches everything.
func (s *Store) Search(ctx context.Context, query string) model.SearchResult {
	var (
		bio          model.BioSection
		research     model.ResearchSection
		publications model.PublicationsSection
	)
	var g errgroup.Group
	g.Go(func() error { bio = s.Bio(ctx); return nil })
	g.Go(func() error { research = s.Research(ctx); return nil })
	g.Go(func() error { publications = s.Publications(ctx); return nil })
	_ = g.Wait()

	return search(query, bio.Profile, research.Items, publications.Publications)
}

func search(query string, bio model.BioProfile, research []model.ResearchTopic, publications []model.Publication) model.SearchResult {
	res := model.SearchResult{
		Query:        query,
		Research:     []model.ResearchTopic{},
		Publications: []model.Publication{},
	}
	m := newMatcher(query)
	res.Bio = m.any(bio.Name, bio.Bio) || m.any(bio.Interests...)
	for _, r := range research {
		if m.any(r.Title, r.Description) || m.any(r.Keywords...) {
			res.Research = append(res.Research, r)
		}
	}
	for _, p := range publications {
		if m.any(p.Title, p.Venue, p.Description) || m.any(p.Authors...) {
			res.Publications = append(res.Publications, p)
		}
	}
	return res
}

// matcher compares strings under Unicode case folding.
// A cases.Caser is stateful, so a matcher belongs to a single search.
type matcher struct {
	fold   cases.Caser
	needle string
}

func newMatcher(query string) *matcher {
	m := &matcher{fold: cases.Fold()}
	m.needle = m.fold.String(query)
	return m
}

func (m *matcher) any(haystacks ...string) bool {
	for _, h := range haystacks {
		if strings.Contains(m.fold.String(h), m.needle) {
			return true
		}
	}
	return false
}
