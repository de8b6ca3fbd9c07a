package content

import (
	"context"
	"fmt"

	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/model"
)

// Experience loads experience.md. As with seminars, the list an entry sits
// under (education or work) decides its type.
func (s *Store) Experience(ctx context.Context) model.ExperienceSection {
	return s.experience(s.load(ctx, DomainExperience))
}

func (s *Store) experience(doc document) model.ExperienceSection {
	sec := buildExperience(doc)
	s.logIssues(sec.Issues)
	return sec
}

func buildExperience(doc document) model.ExperienceSection {
	f := doc.meta
	sec := model.ExperienceSection{
		Title:    f.strOr("title", defaultExperienceTitle),
		Subtitle: f.str("subtitle"),
		Body:     doc.body,
	}

	var issues []model.Issue
	sec.Education, issues = experienceGroup(f, "education", model.ExperienceEducation)
	sec.Issues = append(sec.Issues, issues...)
	sec.Work, issues = experienceGroup(f, "work", model.ExperienceWork)
	sec.Issues = append(sec.Issues, issues...)
	return sec
}

func experienceGroup(f fields, key string, want model.ExperienceType) ([]model.Experience, []model.Issue) {
	raw, _ := f.objects(key)
	out := make([]model.Experience, 0, len(raw))
	var issues []model.Issue

	for i, e := range raw {
		declared, rawType, ok := enum(e, "type", model.ExperienceType.Valid)
		if rawType != "" && (!ok || declared != want) {
			issues = append(issues, model.Issue{
				Domain:  string(DomainExperience),
				Field:   key + ".type",
				Index:   i,
				Value:   rawType,
				Message: fmt.Sprintf("type %q does not match the %s list; using %q", rawType, key, want),
			})
		}

		achievements, _ := e.strList("achievements")
		out = append(out, model.Experience{
			Title:        e.str("title"),
			Organization: e.str("organization"),
			Location:     e.str("location"),
			StartDate:    e.str("startDate"),
			EndDate:      e.str("endDate"),
			Description:  e.str("description"),
			Type:         want,
			Achievements: achievements,
		})
	}
	return out, issues
}
