package content

import (
	"io/fs"
	"testing/fstest"

	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/logging"
)

const bioFixture = `---
name: Ada Example
title: Assistant Professor
university: Example University
email: ada@example.edu
bio: Works on interpretable vision models.
interests:
  - Computer Vision
  - Explainable AI
citations: 120
hindex: "7"
students: many
---
Ada is a researcher.
`

const researchFixture = `---
title: Research
items:
  - title: Saliency Maps
    description: Explaining classifiers with gradients.
    icon: "🧠"
    color: from-blue-500 to-cyan-500
    keywords: [Attribution, Gradients]
  - title: Sensor Fusion
    description: Combining lidar and camera data.
    keywords: Robotics
---
`

const publicationsFixture = `---
publications:
  - title: Attention Is Not Explanation Enough
    authors: [Ada Example, Bo Author]
    venue: Journal of Quantum Gardening
    year: 2024
    status: Published
    citations: 12
  - title: Pruning for Interpretability
    authors: "Ada Example, Cy Writer"
    venue: NeurIPS Workshop
    year: "2023"
    status: Under Review
    description: Sparse networks are easier to read.
  - title: Draft Notes
    authors: Ada Example
    venue: arXiv
    year: 2025
    status: In Preparation
---
`

const projectsFixture = `---
title: Projects
projects:
  - id: xai-toolkit
    title: XAI Toolkit
    description: Explanation methods for vision models.
    category: Software
    status: Active
    startDate: 2023-03
    technologies: [Python, PyTorch, Go, Docker, React]
    links:
      github: https://github.com/example/xai
    collaborators: [Bo Author]
    highlights: [1k stars, Used in two courses, Conference demo]
  - id: sensing-rig
    title: Sensing Rig
    description: Hardware for multimodal data capture.
    category: Hardware
    status: Completed
    startDate: 2021-01
    endDate: 2022-12
    technologies: [C++, ROS]
---
`

const teachingFixture = `---
philosophy: Learning by building.
courses:
  - code: AI5001
    title: Artificial Intelligence Seminar
    semester: Fall
    year: 2024
    level: Graduate
    description: Reading group on interpretability.
    students: 18
    materials: /courses/ai5001-seminar
  - code: CS101
    title: Introduction to Programming
    term: Spring
    year: 2024
    level: Undergraduate
    description: First steps in Python.
achievements:
  - Teaching award 2024
---
`

const seminarsFixture = `---
upcoming:
  - title: Interpretable Vision
    date: "2025-03-01"
    time: "14:00"
    location: Room 101
    topic: XAI
    description: Talk on saliency.
    type: Upcoming
past:
  - title: Sensor Fusion Basics
    date: "2024-05-10"
    time: "10:00"
    location: Room 202
    topic: Sensing
    description: Tutorial.
regular_seminars:
  - title: AI Reading Group
    schedule: Fridays 16:00
    location: Lab 3
    description: Weekly paper discussion.
---
`

const experienceFixture = `---
education:
  - title: PhD in Artificial Intelligence
    organization: Example University
    location: Example City
    startDate: "2022"
    endDate: Present
    description: Interpretability research.
work:
  - title: Research Engineer
    organization: Example Labs
    location: Remote
    startDate: "2019"
    endDate: "2022"
    description: Built ML pipelines.
    type: work
    achievements: [Shipped model monitoring]
---
`

// fixtureFS returns a content root holding every domain file.
func fixtureFS() fstest.MapFS {
	return fstest.MapFS{
		"bio.md":          {Data: []byte(bioFixture)},
		"research.md":     {Data: []byte(researchFixture)},
		"publications.md": {Data: []byte(publicationsFixture)},
		"projects.md":     {Data: []byte(projectsFixture)},
		"teaching.md":     {Data: []byte(teachingFixture)},
		"seminars.md":     {Data: []byte(seminarsFixture)},
		"experience.md":   {Data: []byte(experienceFixture)},
	}
}

func newTestStore(fsys fs.FS) *Store {
	return NewStore(fsys, logging.Discard())
}

// faultyFS fails to open one file with a permission error.
// It implements only fs.FS so fs.ReadFile has to go through Open.
type faultyFS struct {
	files fstest.MapFS
	fail  string
}

func (f faultyFS) Open(name string) (fs.File, error) {
	if name == f.fail {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	return f.files.Open(name)
}

// panickyFS panics when the named file is opened.
type panickyFS struct {
	files fstest.MapFS
	name  string
}

func (f panickyFS) Open(name string) (fs.File, error) {
	if name == f.name {
		panic("open " + name)
	}
	return f.files.Open(name)
}
