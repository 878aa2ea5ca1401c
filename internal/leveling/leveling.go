// Package leveling derives a user level from activity counters.
package leveling

import "github.com/dmitrijs2005/launchpad/internal/models"

// ActivitiesPerLevel is how many activities advance one level.
const ActivitiesPerLevel = 5

// Level is floor(total/5) + 1, so never below 1.
func Level(a models.Activities) int {
	total := a.Total()
	if total < 0 {
		total = 0
	}
	return total/ActivitiesPerLevel + 1
}

// Progress is total divided by the next level threshold (Level*5), as a
// fraction in [0,1). It is for display only.
func Progress(a models.Activities) float64 {
	total := a.Total()
	if total <= 0 {
		return 0
	}
	return float64(total) / float64(Level(a)*ActivitiesPerLevel)
}

// ProgressPercent is Progress scaled to 0..100.
func ProgressPercent(a models.Activities) float64 {
	return Progress(a) * 100
}

// NextLevelAt is the total at which the next level is reached.
func NextLevelAt(a models.Activities) int {
	return Level(a) * ActivitiesPerLevel
}
