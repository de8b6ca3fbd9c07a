package content

import (
	"context"

	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/model"
)

// Bio loads bio.md. Name, title, university and email are never empty.
func (s *Store) Bio(ctx context.Context) model.BioSection {
	return s.bio(s.load(ctx, DomainBio))
}

func (s *Store) bio(doc document) model.BioSection {
	sec := buildBio(doc)
	s.logIssues(sec.Issues)
	return sec
}

func buildBio(doc document) model.BioSection {
	f := doc.meta
	name := f.strOr("name", defaultName)
	salutation := f.strOr("name", defaultEmailSalutation)

	return model.BioSection{
		Profile: model.BioProfile{
			Name:        name,
			ChineseName: f.strOr("chineseName", defaultChineseName),
			KoreanName:  f.strOr("koreanName", defaultKoreanName),
			Title:       f.strOr("title", defaultTitle),
			University:  f.strOr("university", defaultUniversity),
			Department:  f.strOr("department", defaultDepartment),
			Location:    f.strOr("location", defaultLocation),
			Avatar:      f.str("avatar"),
			Tagline:     f.strOr("tagline", defaultTagline),
			Bio:         f.strOr("bio", defaultBio),
			Interests:   f.strListOr("interests", defaultInterests),

			Citations:         f.optInt("citations"),
			HIndex:            f.optInt("hindex"),
			PublicationsCount: f.optInt("publications_count"),
			Students:          f.optInt("students"),

			Email:  f.strOr("email", defaultEmail),
			Phone:  f.str("phone"),
			Office: f.str("office"),

			GitHub:        f.strOr("github", defaultGitHub),
			LinkedIn:      f.strOr("linkedin", defaultLinkedIn),
			Kakao:         f.str("kakao"),
			Twitter:       f.str("twitter"),
			Instagram:     f.str("instagram"),
			ORCID:         f.str("orcid"),
			GoogleScholar: f.str("googleScholar"),

			CVPath:     f.strOr("cvPath", defaultCVPath),
			CVFileName: f.strOr("cvFileName", defaultCVFileName),

			CollaborationEmailSubject: f.strOr("collaborationEmailSubject", defaultEmailSubject),
			CollaborationEmailBody:    f.strOr("collaborationEmailBody", defaultEmailBody(salutation)),
		},
		Body: doc.body,
	}
}
