package model

// BioProfile is the researcher's profile, loaded from bio.md.
type BioProfile struct {
	Name        string   `json:"name" yaml:"name"`
	ChineseName string   `json:"chineseName,omitempty" yaml:"chineseName,omitempty"`
	KoreanName  string   `json:"koreanName,omitempty" yaml:"koreanName,omitempty"`
	Title       string   `json:"title" yaml:"title"`
	University  string   `json:"university" yaml:"university"`
	Department  string   `json:"department" yaml:"department"`
	Location    string   `json:"location" yaml:"location"`
	Avatar      string   `json:"avatar" yaml:"avatar"`
	Tagline     string   `json:"tagline" yaml:"tagline"`
	Bio         string   `json:"bio" yaml:"bio"`
	Interests   []string `json:"interests" yaml:"interests"`

	// Academic metrics. Nil when the source omits them or they are not integers.
	Citations         *int `json:"citations,omitempty" yaml:"citations,omitempty"`
	HIndex            *int `json:"hindex,omitempty" yaml:"hindex,omitempty"`
	PublicationsCount *int `json:"publications_count,omitempty" yaml:"publications_count,omitempty"`
	Students          *int `json:"students,omitempty" yaml:"students,omitempty"`

	Email  string `json:"email" yaml:"email"`
	Phone  string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Office string `json:"office,omitempty" yaml:"office,omitempty"`

	GitHub        string `json:"github" yaml:"github"`
	LinkedIn      string `json:"linkedin" yaml:"linkedin"`
	Kakao         string `json:"kakao,omitempty" yaml:"kakao,omitempty"`
	Twitter       string `json:"twitter,omitempty" yaml:"twitter,omitempty"`
	Instagram     string `json:"instagram,omitempty" yaml:"instagram,omitempty"`
	ORCID         string `json:"orcid,omitempty" yaml:"orcid,omitempty"`
	GoogleScholar string `json:"googleScholar,omitempty" yaml:"googleScholar,omitempty"`

	CVPath     string `json:"cvPath" yaml:"cvPath"`
	CVFileName string `json:"cvFileName" yaml:"cvFileName"`

	CollaborationEmailSubject string `json:"collaborationEmailSubject" yaml:"collaborationEmailSubject"`
	CollaborationEmailBody    string `json:"collaborationEmailBody" yaml:"collaborationEmailBody"`
}

// ResearchTopic is one research interest card.
type ResearchTopic struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Icon        string   `json:"icon" yaml:"icon"`
	Color       string   `json:"color" yaml:"color"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
}

type Publication struct {
	Title       string            `json:"title" yaml:"title"`
	Authors     []string          `json:"authors" yaml:"authors"`
	Venue       string            `json:"venue" yaml:"venue"`
	Year        string            `json:"year" yaml:"year"`
	Status      PublicationStatus `json:"status" yaml:"status"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Link        string            `json:"link,omitempty" yaml:"link,omitempty"`
	PDF         string            `json:"pdf,omitempty" yaml:"pdf,omitempty"`
	DOI         string            `json:"doi,omitempty" yaml:"doi,omitempty"`
	Citations   *int              `json:"citations,omitempty" yaml:"citations,omitempty"`
}

// ProjectLinks holds the optional external links of a project.
type ProjectLinks struct {
	GitHub        string `json:"github,omitempty" yaml:"github,omitempty"`
	Demo          string `json:"demo,omitempty" yaml:"demo,omitempty"`
	Paper         string `json:"paper,omitempty" yaml:"paper,omitempty"`
	Documentation string `json:"documentation,omitempty" yaml:"documentation,omitempty"`
}

// Empty reports whether no link is set.
func (l ProjectLinks) Empty() bool {
	return l == ProjectLinks{}
}

type Project struct {
	ID              string        `json:"id" yaml:"id"`
	Title           string        `json:"title" yaml:"title"`
	Description     string        `json:"description" yaml:"description"`
	LongDescription string        `json:"longDescription,omitempty" yaml:"longDescription,omitempty"`
	Category        string        `json:"category" yaml:"category"`
	Status          ProjectStatus `json:"status" yaml:"status"`
	StartDate       string        `json:"startDate" yaml:"startDate"`
	EndDate         string        `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	Technologies    []string      `json:"technologies" yaml:"technologies"`
	Image           string        `json:"image,omitempty" yaml:"image,omitempty"`
	Links           ProjectLinks  `json:"links" yaml:"links"`
	Collaborators   []string      `json:"collaborators" yaml:"collaborators"`
	Funding         string        `json:"funding,omitempty" yaml:"funding,omitempty"`
	Highlights      []string      `json:"highlights" yaml:"highlights"`
}

// Course is one taught course. Semester is the academic term.
type Course struct {
	Code        string      `json:"code" yaml:"code"`
	Title       string      `json:"title" yaml:"title"`
	Semester    string      `json:"semester" yaml:"semester"`
	Year        string      `json:"year" yaml:"year"`
	Description string      `json:"description" yaml:"description"`
	Level       CourseLevel `json:"level" yaml:"level"`
	Students    *int        `json:"students,omitempty" yaml:"students,omitempty"`
	Materials   string      `json:"materials,omitempty" yaml:"materials,omitempty"`
}

type Seminar struct {
	Title        string      `json:"title" yaml:"title"`
	Date         string      `json:"date" yaml:"date"`
	Time         string      `json:"time" yaml:"time"`
	Location     string      `json:"location" yaml:"location"`
	Speaker      string      `json:"speaker,omitempty" yaml:"speaker,omitempty"`
	Topic        string      `json:"topic" yaml:"topic"`
	Description  string      `json:"description" yaml:"description"`
	Type         SeminarType `json:"type" yaml:"type"`
	Registration string      `json:"registration,omitempty" yaml:"registration,omitempty"`
}

// RegularSeminar is a recurring seminar series.
type RegularSeminar struct {
	Title       string `json:"title" yaml:"title"`
	Schedule    string `json:"schedule" yaml:"schedule"`
	Location    string `json:"location" yaml:"location"`
	Description string `json:"description" yaml:"description"`
}

type Experience struct {
	Title        string         `json:"title" yaml:"title"`
	Organization string         `json:"organization" yaml:"organization"`
	Location     string         `json:"location" yaml:"location"`
	StartDate    string         `json:"startDate" yaml:"startDate"`
	EndDate      string         `json:"endDate" yaml:"endDate"`
	Description  string         `json:"description" yaml:"description"`
	Type         ExperienceType `json:"type" yaml:"type"`
	Achievements []string       `json:"achievements" yaml:"achievements"`
}
