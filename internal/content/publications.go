package content

import (
	"context"

	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/model"
)

func (s *Store) Publications(ctx context.Context) model.PublicationsSection {
	return s.publications(s.load(ctx, DomainPublications))
}

func (s *Store) publications(doc document) model.PublicationsSection {
	sec := buildPublications(doc)
	s.logIssues(sec.Issues)
	return sec
}

func buildPublications(doc document) model.PublicationsSection {
	f := doc.meta
	raw, _ := f.objects("publications")

	sec := model.PublicationsSection{
		Title:        f.strOr("title", defaultPublicationsTitle),
		Subtitle:     f.str("subtitle"),
		Publications: make([]model.Publication, 0, len(raw)),
		Body:         doc.body,
	}

	for i, p := range raw {
		status, rawStatus, ok := enum(p, "status", model.PublicationStatus.Valid)
		if !ok {
			sec.Issues = append(sec.Issues, enumIssue(DomainPublications, "status", i, rawStatus, model.PublicationStatuses))
		}
		sec.Publications = append(sec.Publications, model.Publication{
			Title:       p.str("title"),
			Authors:     p.names("authors"),
			Venue:       p.str("venue"),
			Year:        p.str("year"),
			Status:      status,
			Description: p.str("description"),
			Link:        p.str("link"),
			PDF:         p.str("pdf"),
			DOI:         p.str("doi"),
			Citations:   p.optInt("citations"),
		})
	}
	return sec
}
