package content

import (
	"context"
	"fmt"

	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/model"
)

// Seminars loads seminars.md. The list a seminar appears under decides its type,
// so the upcoming and past groups never share an entry.
func (s *Store) Seminars(ctx context.Context) model.SeminarsSection {
	return s.seminars(s.load(ctx, DomainSeminars))
}

func (s *Store) seminars(doc document) model.SeminarsSection {
	sec := buildSeminars(doc)
	s.logIssues(sec.Issues)
	return sec
}

func buildSeminars(doc document) model.SeminarsSection {
	f := doc.meta
	sec := model.SeminarsSection{
		Title:           f.strOr("title", defaultSeminarsTitle),
		Subtitle:        f.str("subtitle"),
		RegularSeminars: []model.RegularSeminar{},
		Body:            doc.body,
	}

	var issues []model.Issue
	sec.Upcoming, issues = seminarGroup(f, "upcoming", model.SeminarUpcoming)
	sec.Issues = append(sec.Issues, issues...)
	sec.Past, issues = seminarGroup(f, "past", model.SeminarPast)
	sec.Issues = append(sec.Issues, issues...)

	regular, ok := f.objects("regular_seminars")
	if !ok {
		regular, _ = f.objects("regularSeminars")
	}
	for _, r := range regular {
		sec.RegularSeminars = append(sec.RegularSeminars, model.RegularSeminar{
			Title:       r.str("title"),
			Schedule:    r.str("schedule"),
			Location:    r.str("location"),
			Description: r.str("description"),
		})
	}
	return sec
}

func seminarGroup(f fields, key string, want model.SeminarType) ([]model.Seminar, []model.Issue) {
	raw, _ := f.objects(key)
	out := make([]model.Seminar, 0, len(raw))
	var issues []model.Issue

	for i, e := range raw {
		declared, rawType, ok := enum(e, "type", model.SeminarType.Valid)
		switch {
		case rawType == "":
		case !ok:
			is := enumIssue(DomainSeminars, key+".type", i, rawType, model.SeminarTypes)
			is.Message += fmt.Sprintf("; using %q", want)
			issues = append(issues, is)
		case declared != want:
			issues = append(issues, model.Issue{
				Domain:  string(DomainSeminars),
				Field:   key + ".type",
				Index:   i,
				Value:   rawType,
				Message: fmt.Sprintf("type %q conflicts with the %s list; using %q", rawType, key, want),
			})
		}

		out = append(out, model.Seminar{
			Title:        e.str("title"),
			Date:         e.str("date"),
			Time:         e.str("time"),
			Location:     e.str("location"),
			Speaker:      e.str("speaker"),
			Topic:        e.str("topic"),
			Description:  e.str("description"),
			Type:         want,
			Registration: e.str("registration"),
		})
	}
	return out, issues
}
