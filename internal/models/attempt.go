package models

// Attempt is one completed quiz run. Attempts are append-only.
type Attempt struct {
	ID             string `json:"id"`
	Date           string `json:"date"`
	Category       string `json:"category"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
	TimeSpent      int    `json:"timeSpent"`
}
