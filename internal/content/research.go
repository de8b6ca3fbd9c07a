package content

import (
	"context"

	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/model"
)

// Research loads research.md. When the file lists no usable items the
// default topics are returned, so the section is never empty.
func (s *Store) Research(ctx context.Context) model.ResearchSection {
	return s.research(s.load(ctx, DomainResearch))
}

func (s *Store) research(doc document) model.ResearchSection {
	sec := buildResearch(doc)
	s.logIssues(sec.Issues)
	return sec
}

func buildResearch(doc document) model.ResearchSection {
	f := doc.meta
	raw, _ := f.objects("items")

	items := make([]model.ResearchTopic, 0, len(raw))
	for _, item := range raw {
		keywords, _ := item.strList("keywords")
		items = append(items, model.ResearchTopic{
			Title:       item.str("title"),
			Description: item.str("description"),
			Icon:        item.strOr("icon", defaultTopicIcon),
			Color:       item.strOr("color", defaultTopicColor),
			Keywords:    keywords,
		})
	}
	if len(items) == 0 {
		items = defaultResearch()
	}

	return model.ResearchSection{
		Title:    f.strOr("title", defaultResearchTitle),
		Subtitle: f.str("subtitle"),
		Items:    items,
		Body:     doc.body,
	}
}
