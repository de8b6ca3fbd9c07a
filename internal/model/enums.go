package model

// PublicationStatus is the review state of a publication.
// The zero value means the source gave no recognised status.
type PublicationStatus string

const (
	StatusPublished     PublicationStatus = "Published"
	StatusUnderReview   PublicationStatus = "Under Review"
	StatusInPreparation PublicationStatus = "In Preparation"
)

// PublicationStatuses lists the allowed literals in display order.
var PublicationStatuses = []PublicationStatus{StatusPublished, StatusUnderReview, StatusInPreparation}

func (s PublicationStatus) Valid() bool {
	switch s {
	case StatusPublished, StatusUnderReview, StatusInPreparation:
		return true
	}
	return false
}

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "Active"
	ProjectCompleted ProjectStatus = "Completed"
	ProjectOnHold    ProjectStatus = "On Hold"
)

var ProjectStatuses = []ProjectStatus{ProjectActive, ProjectCompleted, ProjectOnHold}

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectActive, ProjectCompleted, ProjectOnHold:
		return true
	}
	return false
}

type CourseLevel string

const (
	LevelUndergraduate CourseLevel = "Undergraduate"
	LevelGraduate      CourseLevel = "Graduate"
)

var CourseLevels = []CourseLevel{LevelUndergraduate, LevelGraduate}

func (l CourseLevel) Valid() bool {
	return l == LevelUndergraduate || l == LevelGraduate
}

// SeminarType splits seminars into the upcoming and past groups.
type SeminarType string

const (
	SeminarUpcoming SeminarType = "Upcoming"
	SeminarPast     SeminarType = "Past"
)

var SeminarTypes = []SeminarType{SeminarUpcoming, SeminarPast}

func (t SeminarType) Valid() bool {
	return t == SeminarUpcoming || t == SeminarPast
}

type ExperienceType string

const (
	ExperienceWork      ExperienceType = "work"
	ExperienceEducation ExperienceType = "education"
)

func (t ExperienceType) Valid() bool {
	return t == ExperienceWork || t == ExperienceEducation
}
