// Package dashboard assembles the overview shown after sign-in.
package dashboard

import (
	"github.com/dmitrijs2005/launchpad/internal/leveling"
	"github.com/dmitrijs2005/launchpad/internal/models"
)

// RecentAchievementCount is how many trailing achievements are shown.
const RecentAchievementCount = 3

type Suggestion struct {
	Title       string
	Description string
	Command     string
	Completed   bool
}

type Dashboard struct {
	Name               string
	Activities         models.Activities
	Total              int
	Level              int
	NextLevelAt        int
	ProgressPercent    float64
	RecentAchievements []string
	Suggestions        []Suggestion
}

// Build derives the dashboard from a profile. Nothing is stored.
func Build(p models.Profile) Dashboard {
	a := p.Activities

	recent := p.Achievements
	if len(recent) > RecentAchievementCount {
		recent = recent[len(recent)-RecentAchievementCount:]
	}

	return Dashboard{
		Name:               p.Name,
		Activities:         a,
		Total:              a.Total(),
		Level:              leveling.Level(a),
		NextLevelAt:        leveling.NextLevelAt(a),
		ProgressPercent:    leveling.ProgressPercent(a),
		RecentAchievements: append([]string(nil), recent...),
		Suggestions: []Suggestion{
			{
				Title:       "Complete Your Profile",
				Description: "Add your skills and upload a profile picture",
				Command:     "profile",
				Completed:   len(p.Skills) > 0 && p.ProfilePicture != "",
			},
			{
				Title:       "Take Your First Quiz",
				Description: "Test your knowledge with an aptitude quiz",
				Command:     "quiz aptitude",
				Completed:   a.QuizzesCompleted > 0,
			},
			{
				Title:       "Try a Mock Interview",
				Description: "Practice your interview skills",
				Command:     "interview",
				Completed:   a.InterviewsCompleted > 0,
			},
			{
				Title:       "Study Technical Material",
				Description: "Learn key technical concepts",
				Command:     "materials technical",
				Completed:   a.MaterialsCompleted > 0,
			},
		},
	}
}
