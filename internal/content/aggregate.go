package content

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/model"
)

// LoadAll loads every domain concurrently and composes the page.
//
// Missing and malformed files degrade per domain as in the single-domain
// operations. Any other fault in any domain (an unreadable file, a panic, a
// cancelled context) replaces the whole result with the minimal safe page:
// best-effort bio and research, empty lists elsewhere, Degraded set.
func (s *Store) LoadAll(ctx context.Context) model.Portfolio {
	p, err := s.loadAll(ctx)
	if err != nil {
		s.log.Error("error loading page data, serving minimal page", "error", err)
		return s.minimal(ctx)
	}
	return p
}

func (s *Store) loadAll(ctx context.Context) (model.Portfolio, error) {
	var p model.Portfolio
	g, gctx := errgroup.WithContext(ctx)

	// Each closure writes a distinct field of p.
	fetch := func(d Domain, apply func(document)) {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("loading %s panicked: %v", d, r)
				}
			}()
			doc, err := s.read(gctx, d)
			if err != nil {
				return err
			}
			apply(doc)
			return nil
		})
	}

	fetch(DomainBio, func(doc document) { p.Bio = s.bio(doc) })
	fetch(DomainResearch, func(doc document) { p.Research = s.research(doc) })
	fetch(DomainPublications, func(doc document) { p.Publications = s.publications(doc) })
	fetch(DomainProjects, func(doc document) { p.Projects = s.projects(doc) })
	fetch(DomainTeaching, func(doc document) { p.Teaching = s.teaching(doc) })
	fetch(DomainSeminars, func(doc document) { p.Seminars = s.seminars(doc) })
	fetch(DomainExperience, func(doc document) { p.Experience = s.experience(doc) })

	if err := g.Wait(); err != nil {
		return model.Portfolio{}, err
	}
	return p, nil
}

func (s *Store) minimal(ctx context.Context) model.Portfolio {
	empty := emptyDocument()
	return model.Portfolio{
		Bio:          s.Bio(ctx),
		Research:     s.Research(ctx),
		Publications: buildPublications(empty),
		Projects:     buildProjects(empty),
		Teaching:     buildTeaching(empty),
		Seminars:     buildSeminars(empty),
		Experience:   buildExperience(empty),
		Degraded:     true,
	}
}

// Section loads the single domain d and returns its section value.
func (s *Store) Section(ctx context.Context, d Domain) (interface{}, error) {
	switch d {
	case DomainBio:
		return s.Bio(ctx), nil
	case DomainResearch:
		return s.Research(ctx), nil
	case DomainPublications:
		return s.Publications(ctx), nil
	case DomainProjects:
		return s.Projects(ctx), nil
	case DomainTeaching:
		return s.Teaching(ctx), nil
	case DomainSeminars:
		return s.Seminars(ctx), nil
	case DomainExperience:
		return s.Experience(ctx), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, string(d))
}
