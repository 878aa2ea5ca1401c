package quiz

// Category groups questions.
type Category string

const (
	CategoryTechnical Category = "technical"
	CategoryAptitude  Category = "aptitude"
	// CategoryMixed tags attempts over questions from several categories.
	CategoryMixed Category = "mixed"
)

// ParseCategory accepts "technical" or "aptitude".
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryTechnical, CategoryAptitude:
		return Category(s), true
	}
	return "", false
}

type Question struct {
	ID       string
	Prompt   string
	Options  []string
	Correct  int
	Category Category
}

// IsCorrect reports whether choice is the right option.
func (q Question) IsCorrect(choice int) bool {
	return choice == q.Correct
}
