package content

import (
	"context"
	"fmt"
	"strconv"

	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/model"
)

// Projects loads projects.md. Project ids are unique within the section:
// a missing id is derived from the title, and a repeated one gets a numeric suffix.
func (s *Store) Projects(ctx context.Context) model.ProjectsSection {
	return s.projects(s.load(ctx, DomainProjects))
}

func (s *Store) projects(doc document) model.ProjectsSection {
	sec := buildProjects(doc)
	s.logIssues(sec.Issues)
	return sec
}

func buildProjects(doc document) model.ProjectsSection {
	f := doc.meta
	raw, _ := f.objects("projects")

	sec := model.ProjectsSection{
		Title:    f.strOr("title", defaultProjectsTitle),
		Subtitle: f.str("subtitle"),
		Projects: make([]model.Project, 0, len(raw)),
		Body:     doc.body,
	}

	seen := make(map[string]bool, len(raw))
	for i, p := range raw {
		status, rawStatus, ok := enum(p, "status", model.ProjectStatus.Valid)
		if !ok {
			sec.Issues = append(sec.Issues, enumIssue(DomainProjects, "status", i, rawStatus, model.ProjectStatuses))
		}

		title := p.str("title")
		id := p.str("id")
		if id == "" {
			id = slug(title)
		}
		if id == "" {
			id = "project-" + strconv.Itoa(i+1)
		}
		if seen[id] {
			unique := uniqueID(id, seen)
			sec.Issues = append(sec.Issues, model.Issue{
				Domain:  string(DomainProjects),
				Field:   "id",
				Index:   i,
				Value:   id,
				Message: fmt.Sprintf("duplicate project id %q renamed to %q", id, unique),
			})
			id = unique
		}
		seen[id] = true

		links := p.object("links")
		technologies, _ := p.strList("technologies")
		collaborators, _ := p.strList("collaborators")
		highlights, _ := p.strList("highlights")

		sec.Projects = append(sec.Projects, model.Project{
			ID:              id,
			Title:           title,
			Description:     p.str("description"),
			LongDescription: p.str("longDescription"),
			Category:        p.str("category"),
			Status:          status,
			StartDate:       p.str("startDate"),
			EndDate:         p.str("endDate"),
			Technologies:    technologies,
			Image:           p.str("image"),
			Links: model.ProjectLinks{
				GitHub:        links.str("github"),
				Demo:          links.str("demo"),
				Paper:         links.str("paper"),
				Documentation: links.str("documentation"),
			},
			Collaborators: collaborators,
			Funding:       p.str("funding"),
			Highlights:    highlights,
		})
	}
	return sec
}

func uniqueID(id string, seen map[string]bool) string {
	for n := 2; ; n++ {
		candidate := id + "-" + strconv.Itoa(n)
		if !seen[candidate] {
			return candidate
		}
	}
}
