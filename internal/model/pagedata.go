package model

// Issue is a data problem found while normalizing a content file.
// Issues never stop a load; they travel with the section so callers can report them.
type Issue struct {
	Domain  string `json:"domain" yaml:"domain"`
	Field   string `json:"field" yaml:"field"`
	Index   int    `json:"index" yaml:"index"` // position in the list, -1 for top-level fields
	Value   string `json:"value,omitempty" yaml:"value,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// Portfolio is everything rendered on the page, composed from one load of every domain.
type Portfolio struct {
	Bio          BioSection          `json:"bio" yaml:"bio"`
	Research     ResearchSection     `json:"research" yaml:"research"`
	Publications PublicationsSection `json:"publications" yaml:"publications"`
	Projects     ProjectsSection     `json:"projects" yaml:"projects"`
	Teaching     TeachingSection     `json:"teaching" yaml:"teaching"`
	Seminars     SeminarsSection     `json:"seminars" yaml:"seminars"`
	Experience   ExperienceSection   `json:"experience" yaml:"experience"`

	// Degraded is set when the aggregate load failed and the minimal safe page was used.
	Degraded bool `json:"degraded" yaml:"degraded"`
}

// Issues collects the issues of every section.
func (p Portfolio) Issues() []Issue {
	var out []Issue
	for _, is := range [][]Issue{
		p.Bio.Issues,
		p.Research.Issues,
		p.Publications.Issues,
		p.Projects.Issues,
		p.Teaching.Issues,
		p.Seminars.Issues,
		p.Experience.Issues,
	} {
		out = append(out, is...)
	}
	return out
}

// SearchResult holds the matches of a free-text query.
type SearchResult struct {
	Query        string          `json:"query" yaml:"query"`
	Bio          bool            `json:"bio" yaml:"bio"`
	Research     []ResearchTopic `json:"researchMatches" yaml:"researchMatches"`
	Publications []Publication   `json:"publicationMatches" yaml:"publicationMatches"`
}

// Empty reports whether nothing matched.
func (r SearchResult) Empty() bool {
	return !r.Bio && len(r.Research) == 0 && len(r.Publications) == 0
}

// PageData is the data handed to the page template.
type PageData struct {
	SiteTitle string
	BaseURL   string
	Portfolio Portfolio
}
