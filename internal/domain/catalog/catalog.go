// Package catalog provides the pure operations over the two top-level
// aggregates: the project list and the singleton profile. Persistence
// and remote sync are the caller's concern; everything here takes a
// value and returns a new value.
package catalog

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/haemonga/portfolio/internal/domain/models"
)

// Direction selects which neighbor a reorder swaps with.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a title: lower-cased, runs of
// non-alphanumeric characters collapsed to a single hyphen, leading
// and trailing hyphens trimmed. May return "" for titles with no
// usable characters; SaveProject supplies the fallback.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SaveProject upserts candidate into projects, repairing its slug
// first. A blank slug is derived from the title, falling back to a
// timestamp placeholder when the title yields nothing. A slug already
// used by a different project gets a timestamp suffix forced onto it.
// The operation never fails: it always produces a list in which the
// candidate has a non-empty slug unique among all other projects.
func SaveProject(projects []models.Project, candidate models.Project, now time.Time) []models.Project {
	p := candidate.Clone()

	if strings.TrimSpace(p.Slug) == "" {
		title := p.Title
		if title == "" {
			title = "untitled"
		}
		p.Slug = Slugify(title)
		if p.Slug == "" {
			p.Slug = fmt.Sprintf("project-%d", now.UnixMilli())
		}
	}

	for _, other := range projects {
		if other.Slug == p.Slug && other.ID != p.ID {
			p.Slug = fmt.Sprintf("%s-%d", p.Slug, now.UnixMilli())
			break
		}
	}

	out := models.CloneProjects(projects)
	for i, other := range out {
		if other.ID == p.ID {
			out[i] = p
			return out
		}
	}
	return append(out, p)
}

// DeleteProject removes the project with the given id. Absent ids are
// a no-op. Interactive confirmation is the caller's responsibility.
func DeleteProject(projects []models.Project, id string) []models.Project {
	for i, p := range projects {
		if p.ID == id {
			out := make([]models.Project, 0, len(projects)-1)
			out = append(out, projects[:i]...)
			return append(out, projects[i+1:]...)
		}
	}
	return projects
}

// MoveProject swaps the project at index with its neighbor in the
// given direction. Boundary and out-of-range indices return the input
// unchanged, same policy as block moves.
func MoveProject(projects []models.Project, index int, dir Direction) []models.Project {
	target := index - 1
	if dir == Down {
		target = index + 1
	}
	if index < 0 || index >= len(projects) || target < 0 || target >= len(projects) {
		return projects
	}
	out := make([]models.Project, len(projects))
	copy(out, projects)
	out[index], out[target] = out[target], out[index]
	return out
}

// ProfilePatch is a partial profile update. Nil fields keep the
// current value; set fields overwrite it without validation, matching
// the free-form nature of the profile editor.
type ProfilePatch struct {
	Name            *string              `json:"name,omitempty"`
	Alias           *string              `json:"alias,omitempty"`
	HomeTitle       *string              `json:"homeTitle,omitempty"`
	ShowHomeTitle   *bool                `json:"showHomeTitle,omitempty"`
	HomeSubtitle    *string              `json:"homeSubtitle,omitempty"`
	Role            *string              `json:"role,omitempty"`
	Email           *string              `json:"email,omitempty"`
	Behance         *string              `json:"behance,omitempty"`
	Notefolio       *string              `json:"notefolio,omitempty"`
	Bio             *string              `json:"bio,omitempty"`
	HeroImageURL    *string              `json:"heroImageUrl,omitempty"`
	ProfileImageURL *string              `json:"profileImageUrl,omitempty"`
	ResumeURL       *string              `json:"resumeUrl,omitempty"`
	Skills          *models.Skills       `json:"skills,omitempty"`
	Experience      *[]models.Experience `json:"experience,omitempty"`
	Education       *[]models.Education  `json:"education,omitempty"`
	Strengths       *[]string            `json:"strengths,omitempty"`
}

// MergeProfile applies patch to profile field-wise and returns the
// merged profile. The input profile is not mutated.
func MergeProfile(profile models.Profile, patch ProfilePatch) models.Profile {
	out := profile.Clone()
	if patch.Name != nil {
		out.Name = *patch.Name
	}
	if patch.Alias != nil {
		out.Alias = *patch.Alias
	}
	if patch.HomeTitle != nil {
		out.HomeTitle = *patch.HomeTitle
	}
	if patch.ShowHomeTitle != nil {
		out.ShowHomeTitle = *patch.ShowHomeTitle
	}
	if patch.HomeSubtitle != nil {
		out.HomeSubtitle = *patch.HomeSubtitle
	}
	if patch.Role != nil {
		out.Role = *patch.Role
	}
	if patch.Email != nil {
		out.Email = *patch.Email
	}
	if patch.Behance != nil {
		out.Behance = *patch.Behance
	}
	if patch.Notefolio != nil {
		out.Notefolio = *patch.Notefolio
	}
	if patch.Bio != nil {
		out.Bio = *patch.Bio
	}
	if patch.HeroImageURL != nil {
		out.HeroImageURL = *patch.HeroImageURL
	}
	if patch.ProfileImageURL != nil {
		out.ProfileImageURL = *patch.ProfileImageURL
	}
	if patch.ResumeURL != nil {
		out.ResumeURL = *patch.ResumeURL
	}
	if patch.Skills != nil {
		out.Skills = models.Skills{
			ThreeD: append([]string(nil), patch.Skills.ThreeD...),
			TwoD:   append([]string(nil), patch.Skills.TwoD...),
		}
	}
	if patch.Experience != nil {
		out.Experience = append([]models.Experience(nil), (*patch.Experience)...)
	}
	if patch.Education != nil {
		out.Education = append([]models.Education(nil), (*patch.Education)...)
	}
	if patch.Strengths != nil {
		out.Strengths = append([]string(nil), (*patch.Strengths)...)
	}
	return out
}
