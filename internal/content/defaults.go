package content

import (
	"fmt"

	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/model"
)

// Values substituted when a content file omits a field.
const (
	defaultName        = "Peng Lyu"
	defaultChineseName = "吕鹏"
	defaultKoreanName  = "여봉"
	defaultTitle       = "PhD Student in Artificial Intelligence"
	defaultUniversity  = "Jeonju University"
	defaultDepartment  = "Department of Computer Science and Engineering"
	defaultLocation    = "Jeonju, South Korea"
	defaultTagline     = "Advancing AI through interpretability and innovation"
	defaultBio         = "Passionate about AI interpretability, intelligent sensing, and neural architecture design."
	defaultEmail       = "penglyu@jj.ac.kr"
	defaultGitHub      = "https://github.com/LyuPeng-star"
	defaultLinkedIn    = "https://linkedin.com/in/penglyu"
	defaultCVPath      = "/cv/CV_PengLyu.pdf"
	defaultCVFileName  = "Peng_Lyu_CV.pdf"

	defaultEmailSubject    = "Research Collaboration Inquiry"
	defaultEmailSalutation = "Dr. Lyu"

	defaultResearchTitle     = "Research Interests"
	defaultPublicationsTitle = "Publications"
	defaultProjectsTitle     = "Projects"
	defaultTeachingTitle     = "Teaching"
	defaultSeminarsTitle     = "Seminars & Events"
	defaultExperienceTitle   = "Experience & Education"

	defaultTopicIcon  = "🔬"
	defaultTopicColor = "from-blue-500 to-cyan-500"
)

var defaultInterests = []string{
	"AI Interpretability",
	"Neural Architecture Search",
	"Intelligent Sensing",
	"Computer Vision",
	"Machine Learning",
	"Deep Learning",
}

func defaultEmailBody(name string) string {
	return fmt.Sprintf("Dear %s,\n\nI found your research very interesting and would like to explore potential collaboration opportunities.\n\nBest regards,", name)
}

func defaultResearch() []model.ResearchTopic {
	return []model.ResearchTopic{
		{
			Title:       "AI Interpretability",
			Description: "Developing methods to understand and explain AI decision-making processes, making black-box models more transparent and trustworthy.",
			Icon:        "🧠",
			Color:       "from-blue-500 to-cyan-500",
			Keywords:    []string{"Explainable AI", "Model Interpretation", "Transparency"},
		},
		{
			Title:       "Intelligent Sensing",
			Description: "Creating adaptive sensing systems that can intelligently perceive and interpret environmental data for autonomous systems.",
			Icon:        "👁️",
			Color:       "from-purple-500 to-pink-500",
			Keywords:    []string{"Sensor Fusion", "Adaptive Systems", "Robotics"},
		},
		{
			Title:       "Neural Architecture Design",
			Description: "Designing efficient neural network architectures that balance performance, interpretability, and computational efficiency.",
			Icon:        "🏗️",
			Color:       "from-green-500 to-teal-500",
			Keywords:    []string{"AutoML", "Architecture Search", "Efficiency"},
		},
	}
}
