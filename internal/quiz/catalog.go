package quiz

// Catalog is a fixed, ordered question set.
type Catalog struct {
	questions []Question
}

func NewCatalog(questions []Question) *Catalog {
	return &Catalog{questions: append([]Question(nil), questions...)}
}

// DefaultCatalog returns the built-in questions.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultQuestions)
}

func (c *Catalog) All() []Question {
	return append([]Question(nil), c.questions...)
}

// ByCategory keeps catalog order.
func (c *Catalog) ByCategory(cat Category) []Question {
	var out []Question
	for _, q := range c.questions {
		if q.Category == cat {
			out = append(out, q)
		}
	}
	return out
}

var defaultQuestions = []Question{
	{
		ID:       "tech-binary-search",
		Prompt:   "What is the time complexity of binary search?",
		Options:  []string{"O(n)", "O(log n)", "O(n²)", "O(1)"},
		Correct:  1,
		Category: CategoryTechnical,
	},
	{
		ID:       "apt-train-speed",
		Prompt:   "If a train travels 360 kilometers in 4 hours, what is its speed in km/h?",
		Options:  []string{"80 km/h", "90 km/h", "85 km/h", "95 km/h"},
		Correct:  1,
		Category: CategoryAptitude,
	},
	{
		ID:       "tech-css",
		Prompt:   "What does CSS stand for?",
		Options:  []string{"Computer Style Sheets", "Creative Style System", "Cascading Style Sheets", "Colorful Style Sheets"},
		Correct:  2,
		Category: CategoryTechnical,
	},
	{
		ID:       "apt-linear-equation",
		Prompt:   "If 3x + 7 = 22, what is x?",
		Options:  []string{"5", "7", "3", "15"},
		Correct:  0,
		Category: CategoryAptitude,
	},
	{
		ID:       "tech-http-idempotent",
		Prompt:   "Which HTTP method is NOT idempotent?",
		Options:  []string{"GET", "PUT", "DELETE", "POST"},
		Correct:  3,
		Category: CategoryTechnical,
	},
	{
		ID:       "tech-stack",
		Prompt:   "Which data structure works on a last-in, first-out basis?",
		Options:  []string{"Queue", "Stack", "Heap", "Linked list"},
		Correct:  1,
		Category: CategoryTechnical,
	},
	{
		ID:       "apt-percentage",
		Prompt:   "A shirt costs 40 after a 20% discount. What was the original price?",
		Options:  []string{"48", "50", "52", "60"},
		Correct:  1,
		Category: CategoryAptitude,
	},
	{
		ID:       "apt-sequence",
		Prompt:   "What comes next: 2, 6, 12, 20, 30, ?",
		Options:  []string{"40", "42", "44", "36"},
		Correct:  1,
		Category: CategoryAptitude,
	},
}
