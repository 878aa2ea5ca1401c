package materials

import (
	"embed"
	"slices"
	"strings"
)

type Category string

const (
	CategoryTechnical     Category = "technical"
	CategoryAptitude      Category = "aptitude"
	CategoryCommunication Category = "communication"
)

type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

type Material struct {
	ID               string
	Title            string
	Description      string
	Category         Category
	Content          string
	Difficulty       Difficulty
	EstimatedMinutes int
	Tags             []string
	DateAdded        string
}

// Filter selects materials. Empty fields match everything; Completed nil
// matches both completed and pending.
type Filter struct {
	Search     string
	Category   Category
	Difficulty Difficulty
	Completed  *bool
}

func (f Filter) match(m Material, completed bool) bool {
	if f.Category != "" && m.Category != f.Category {
		return false
	}
	if f.Difficulty != "" && m.Difficulty != f.Difficulty {
		return false
	}
	if f.Completed != nil && *f.Completed != completed {
		return false
	}

	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(m.Title), term) || strings.Contains(strings.ToLower(m.Description), term) {
		return true
	}
	return slices.ContainsFunc(m.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), term)
	})
}

//go:embed content/*.md
var content embed.FS

func mustContent(id string) string {
	b, err := content.ReadFile("content/" + id + ".md")
	if err != nil {
		panic(err)
	}
	return string(b)
}
