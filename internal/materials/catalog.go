package materials

import (
	"errors"
	"fmt"
	"slices"
)

var ErrMaterialNotFound = errors.New("material not found")

type Catalog struct {
	items []Material
}

func NewCatalog(items []Material) *Catalog {
	return &Catalog{items: slices.Clone(items)}
}

// DefaultCatalog returns the built-in study materials.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultMaterials())
}

func (c *Catalog) All() []Material {
	return slices.Clone(c.items)
}

func (c *Catalog) Find(id string) (Material, error) {
	for _, m := range c.items {
		if m.ID == id {
			return m, nil
		}
	}
	return Material{}, fmt.Errorf("%w: %q", ErrMaterialNotFound, id)
}

// Filter keeps catalog order. completed lists the ids already completed.
func (c *Catalog) Filter(f Filter, completed []string) []Material {
	var out []Material
	for _, m := range c.items {
		if f.match(m, slices.Contains(completed, m.ID)) {
			out = append(out, m)
		}
	}
	return out
}

func defaultMaterials() []Material {
	return []Material{
		{
			ID:               "tech-js-basics",
			Title:            "JavaScript Fundamentals",
			Description:      "Core concepts of JavaScript programming language",
			Category:         CategoryTechnical,
			Content:          mustContent("tech-js-basics"),
			Difficulty:       Beginner,
			EstimatedMinutes: 30,
			Tags:             []string{"javascript", "web development", "programming"},
			DateAdded:        "2023-01-15",
		},
		{
			ID:               "tech-react-intro",
			Title:            "Introduction to React",
			Description:      "Learn the basics of React library for building user interfaces",
			Category:         CategoryTechnical,
			Content:          mustContent("tech-react-intro"),
			Difficulty:       Intermediate,
			EstimatedMinutes: 45,
			Tags:             []string{"react", "javascript", "web development", "frontend"},
			DateAdded:        "2023-02-10",
		},
		{
			ID:               "apt-quant-basics",
			Title:            "Quantitative Aptitude Basics",
			Description:      "Fundamental concepts for numerical problem solving",
			Category:         CategoryAptitude,
			Content:          mustContent("apt-quant-basics"),
			Difficulty:       Beginner,
			EstimatedMinutes: 35,
			Tags:             []string{"aptitude", "mathematics", "quantitative"},
			DateAdded:        "2023-01-20",
		},
		{
			ID:               "apt-logical-reasoning",
			Title:            "Logical Reasoning",
			Description:      "Develop your logical thinking and reasoning abilities",
			Category:         CategoryAptitude,
			Content:          mustContent("apt-logical-reasoning"),
			Difficulty:       Intermediate,
			EstimatedMinutes: 40,
			Tags:             []string{"aptitude", "logical reasoning", "problem solving"},
			DateAdded:        "2023-03-05",
		},
		{
			ID:               "comm-interview",
			Title:            "Effective Interview Communication",
			Description:      "Master the art of communicating effectively in interviews",
			Category:         CategoryCommunication,
			Content:          mustContent("comm-interview"),
			Difficulty:       Beginner,
			EstimatedMinutes: 25,
			Tags:             []string{"communication", "interview skills", "soft skills"},
			DateAdded:        "2023-02-28",
		},
		{
			ID:               "comm-public-speaking",
			Title:            "Public Speaking Fundamentals",
			Description:      "Build confidence and skill in presenting to an audience",
			Category:         CategoryCommunication,
			Content:          mustContent("comm-public-speaking"),
			Difficulty:       Intermediate,
			EstimatedMinutes: 30,
			Tags:             []string{"communication", "public speaking", "soft skills", "presentations"},
			DateAdded:        "2023-04-10",
		},
	}
}
