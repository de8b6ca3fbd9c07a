package content

import (
	"context"

	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/model"
)

func (s *Store) Teaching(ctx context.Context) model.TeachingSection {
	return s.teaching(s.load(ctx, DomainTeaching))
}

func (s *Store) teaching(doc document) model.TeachingSection {
	sec := buildTeaching(doc)
	s.logIssues(sec.Issues)
	return sec
}

func buildTeaching(doc document) model.TeachingSection {
	f := doc.meta
	raw, _ := f.objects("courses")
	achievements, _ := f.strList("achievements")

	sec := model.TeachingSection{
		Title:        f.strOr("title", defaultTeachingTitle),
		Subtitle:     f.str("subtitle"),
		Philosophy:   f.str("philosophy"),
		Courses:      make([]model.Course, 0, len(raw)),
		Achievements: achievements,
		Body:         doc.body,
	}

	for i, c := range raw {
		level, rawLevel, ok := enum(c, "level", model.CourseLevel.Valid)
		if !ok {
			sec.Issues = append(sec.Issues, enumIssue(DomainTeaching, "level", i, rawLevel, model.CourseLevels))
		}
		sec.Courses = append(sec.Courses, model.Course{
			Code:        c.str("code"),
			Title:       c.str("title"),
			Semester:    c.first("semester", "term"),
			Year:        c.str("year"),
			Description: c.str("description"),
			Level:       level,
			Students:    c.optInt("students"),
			Materials:   c.str("materials"),
		})
	}
	return sec
}
