// internal/domain/models/profile.go
package models

// Skills groups tool names by discipline for the about section.
type Skills struct {
	ThreeD []string `json:"threeD"`
	TwoD   []string `json:"twoD"`
}

// Experience is one entry of the experience timeline.
type Experience struct {
	Year  string `json:"year"`
	Title string `json:"title"`
}

// Education is one entry of the education history.
type Education struct {
	Period string `json:"period"`
	School string `json:"school"`
	Major  string `json:"major"`
}

// Profile is the singleton owner record behind the home, about and
// contact sections. Exactly one profile exists at any time; it is
// never deleted, only overwritten, and a default is supplied when
// nothing has been persisted.
type Profile struct {
	Name            string       `json:"name"`
	Alias           string       `json:"alias"`
	HomeTitle       string       `json:"homeTitle"`
	ShowHomeTitle   bool         `json:"showHomeTitle"`
	HomeSubtitle    string       `json:"homeSubtitle"`
	Role            string       `json:"role"`
	Email           string       `json:"email"`
	Behance         string       `json:"behance"`
	Notefolio       string       `json:"notefolio"`
	Bio             string       `json:"bio"`
	HeroImageURL    string       `json:"heroImageUrl"`
	ProfileImageURL string       `json:"profileImageUrl"`
	ResumeURL       string       `json:"resumeUrl"`
	Skills          Skills       `json:"skills"`
	Experience      []Experience `json:"experience"`
	Education       []Education  `json:"education"`
	Strengths       []string     `json:"strengths"`
}

// Clone returns a deep copy of the profile.
func (p Profile) Clone() Profile {
	out := p
	out.Skills.ThreeD = append([]string(nil), p.Skills.ThreeD...)
	out.Skills.TwoD = append([]string(nil), p.Skills.TwoD...)
	out.Experience = append([]Experience(nil), p.Experience...)
	out.Education = append([]Education(nil), p.Education...)
	out.Strengths = append([]string(nil), p.Strengths...)
	return out
}

// DefaultProfile returns the seeded owner profile used before any
// admin edit has been persisted.
func DefaultProfile() Profile {
	return Profile{
		Name:            "전혜미 (Haemi Jeon)",
		Alias:           "해몽가 (Haemonga)",
		HomeTitle:       "HAEMONGA",
		ShowHomeTitle:   true,
		HomeSubtitle:    "Jeon Haemi",
		Role:            "3D Generalist",
		Email:           "contact@haemonga.com",
		Behance:         "https://www.behance.net/haemonga",
		Notefolio:       "https://notefolio.net/haemonga",
		Bio:             "초현실적이고 상징적인 시각적 스토리텔링을 통해 사회적 메시지와 인간의 내면을 탐구합니다.",
		HeroImageURL:    "https://images.unsplash.com/photo-1620641788421-7a1c342ea42e?auto=format&fit=crop&q=80&w=1920",
		ProfileImageURL: "https://images.unsplash.com/photo-1514525253344-f81bad3b7436?auto=format&fit=crop&q=80&w=800",
		Skills: Skills{
			ThreeD: []string{"Cinema 4D", "Octane Render", "Marvelous Designer"},
			TwoD:   []string{"After Effects", "Premiere Pro", "Photoshop"},
		},
		Experience: []Experience{
			{Year: "2024", Title: "개인전: [침묵의 울림] - 성수동 갤러리 A"},
		},
		Education: []Education{
			{Period: "2021.03 ~ 2025.02", School: "동아방송예술대학교", Major: "디지털영상디자인과"},
		},
		Strengths: []string{
			"컨셉 중심의 논리적인 기획 능력",
			"상징적이고 철학적인 비주얼 연출",
			"사회적 메시지의 감각적 시각화",
		},
	}
}
