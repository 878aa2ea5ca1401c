// Package models defines the data Launchpad persists: accounts, profiles,
// activity counters, quiz attempts and the session pointer.
package models

import (
	"slices"
	"strings"
)

// ActivityKind names one of the three activity counters.
type ActivityKind string

const (
	ActivityQuiz      ActivityKind = "quiz"
	ActivityInterview ActivityKind = "interview"
	ActivityMaterial  ActivityKind = "material"
)

// Activities counts completed activities. Counters only ever grow.
type Activities struct {
	QuizzesCompleted    int `json:"quizzesCompleted"`
	InterviewsCompleted int `json:"interviewsCompleted"`
	MaterialsCompleted  int `json:"materialsCompleted"`
}

// Total is the sum of all counters.
func (a Activities) Total() int {
	return a.QuizzesCompleted + a.InterviewsCompleted + a.MaterialsCompleted
}

// Increment bumps the counter for kind and reports whether kind is known.
func (a *Activities) Increment(kind ActivityKind) bool {
	switch kind {
	case ActivityQuiz:
		a.QuizzesCompleted++
	case ActivityInterview:
		a.InterviewsCompleted++
	case ActivityMaterial:
		a.MaterialsCompleted++
	default:
		return false
	}
	return true
}

// Profile is the user-facing part of an account.
type Profile struct {
	Email          string     `json:"email"`
	Name           string     `json:"name"`
	ProfilePicture string     `json:"profilePicture,omitempty"`
	Bio            string     `json:"bio,omitempty"`
	Skills         []string   `json:"skills"`
	Achievements   []string   `json:"achievements"`
	Activities     Activities `json:"activitiesCompleted"`
}

// NewProfile returns a fresh profile with zero counters and empty lists.
func NewProfile(email, name string) Profile {
	return Profile{
		Email:        email,
		Name:         name,
		Skills:       []string{},
		Achievements: []string{},
	}
}

// Clone returns a deep copy.
func (p Profile) Clone() Profile {
	p.Skills = slices.Clone(p.Skills)
	p.Achievements = slices.Clone(p.Achievements)
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Achievements == nil {
		p.Achievements = []string{}
	}
	return p
}

// HasSkill matches case-sensitively after trimming.
func (p Profile) HasSkill(skill string) bool {
	return slices.Contains(p.Skills, strings.TrimSpace(skill))
}

func (p Profile) HasAchievement(label string) bool {
	return slices.Contains(p.Achievements, label)
}

// ProfilePatch is a partial profile update; nil fields are left unchanged.
// Email is not patchable.
type ProfilePatch struct {
	Name           *string
	ProfilePicture *string
	Bio            *string
	Skills         []string
	// SetSkills distinguishes "replace with an empty list" from "leave
	// alone" since a nil slice cannot.
	SetSkills bool
}

// Apply merges the patch into p. Skills are trimmed, blanks dropped and
// duplicates removed keeping first occurrence.
func (pp ProfilePatch) Apply(p *Profile) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.ProfilePicture != nil {
		p.ProfilePicture = *pp.ProfilePicture
	}
	if pp.Bio != nil {
		p.Bio = *pp.Bio
	}
	if pp.SetSkills || pp.Skills != nil {
		p.Skills = NormalizeSkills(pp.Skills)
	}
}

// NormalizeSkills trims, drops blanks and de-duplicates preserving order.
func NormalizeSkills(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
