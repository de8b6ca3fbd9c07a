package model

// Each section is the normalized form of one content file: its records,
// the heading fields, the markdown body under the front matter, and any issues.

type BioSection struct {
	Profile BioProfile `json:"profile" yaml:"profile"`
	Body    string     `json:"body,omitempty" yaml:"body,omitempty"`
	Issues  []Issue    `json:"issues,omitempty" yaml:"issues,omitempty"`
}

type ResearchSection struct {
	Title    string          `json:"title" yaml:"title"`
	Subtitle string          `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Items    []ResearchTopic `json:"items" yaml:"items"`
	Body     string          `json:"body,omitempty" yaml:"body,omitempty"`
	Issues   []Issue         `json:"issues,omitempty" yaml:"issues,omitempty"`
}

type PublicationsSection struct {
	Title        string        `json:"title" yaml:"title"`
	Subtitle     string        `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Publications []Publication `json:"publications" yaml:"publications"`
	Body         string        `json:"body,omitempty" yaml:"body,omitempty"`
	Issues       []Issue       `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// ByStatus returns the publications with the given status, in file order.
func (s PublicationsSection) ByStatus(status PublicationStatus) []Publication {
	out := []Publication{}
	for _, p := range s.Publications {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

type ProjectsSection struct {
	Title    string    `json:"title" yaml:"title"`
	Subtitle string    `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Projects []Project `json:"projects" yaml:"projects"`
	Body     string    `json:"body,omitempty" yaml:"body,omitempty"`
	Issues   []Issue   `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// Find returns the project with the given id.
func (s ProjectsSection) Find(id string) (Project, bool) {
	for _, p := range s.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

type TeachingSection struct {
	Title        string   `json:"title" yaml:"title"`
	Subtitle     string   `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Philosophy   string   `json:"philosophy,omitempty" yaml:"philosophy,omitempty"`
	Courses      []Course `json:"courses" yaml:"courses"`
	Achievements []string `json:"achievements" yaml:"achievements"`
	Body         string   `json:"body,omitempty" yaml:"body,omitempty"`
	Issues       []Issue  `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// SeminarsSection keeps upcoming and past seminars in separate, disjoint lists.
type SeminarsSection struct {
	Title           string           `json:"title" yaml:"title"`
	Subtitle        string           `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Upcoming        []Seminar        `json:"upcoming" yaml:"upcoming"`
	Past            []Seminar        `json:"past" yaml:"past"`
	RegularSeminars []RegularSeminar `json:"regular_seminars" yaml:"regular_seminars"`
	Body            string           `json:"body,omitempty" yaml:"body,omitempty"`
	Issues          []Issue          `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// All returns upcoming seminars followed by past ones.
func (s SeminarsSection) All() []Seminar {
	out := make([]Seminar, 0, len(s.Upcoming)+len(s.Past))
	out = append(out, s.Upcoming...)
	return append(out, s.Past...)
}

type ExperienceSection struct {
	Title     string       `json:"title" yaml:"title"`
	Subtitle  string       `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Education []Experience `json:"education" yaml:"education"`
	Work      []Experience `json:"work" yaml:"work"`
	Body      string       `json:"body,omitempty" yaml:"body,omitempty"`
	Issues    []Issue      `json:"issues,omitempty" yaml:"issues,omitempty"`
}
