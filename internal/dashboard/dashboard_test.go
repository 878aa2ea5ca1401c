package dashboard

import (
	"testing"

	"github.com/dmitrijs2005/launchpad/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_FreshProfile(t *testing.T) {
	d := Build(models.NewProfile("ada@example.com", "Ada"))

	assert.Equal(t, "Ada", d.Name)
	assert.Equal(t, 1, d.Level)
	assert.Equal(t, 5, d.NextLevelAt)
	assert.Zero(t, d.ProgressPercent)
	assert.Empty(t, d.RecentAchievements)
	require.Len(t, d.Suggestions, 4)
	for _, s := range d.Suggestions {
		assert.False(t, s.Completed, s.Title)
	}
}

func TestBuild_Progressed(t *testing.T) {
	p := models.NewProfile("ada@example.com", "Ada")
	p.Skills = []string{"Go"}
	p.ProfilePicture = "data:image/png;base64,AA=="
	p.Achievements = []string{"a", "b", "c", "d"}
	p.Activities = models.Activities{QuizzesCompleted: 4, MaterialsCompleted: 3}

	d := Build(p)

	assert.Equal(t, 7, d.Total)
	assert.Equal(t, 2, d.Level)
	assert.InDelta(t, 70.0, d.ProgressPercent, 1e-9)
	assert.Equal(t, []string{"b", "c", "d"}, d.RecentAchievements)

	done := map[string]bool{}
	for _, s := range d.Suggestions {
		done[s.Title] = s.Completed
	}
	assert.Equal(t, map[string]bool{
		"Complete Your Profile":    true,
		"Take Your First Quiz":     true,
		"Try a Mock Interview":     false,
		"Study Technical Material": true,
	}, done)
}

func TestBuild_DoesNotAliasAchievements(t *testing.T) {
	p := models.NewProfile("a@b.c", "A")
	p.Achievements = []string{"x"}

	d := Build(p)
	d.RecentAchievements[0] = "changed"

	assert.Equal(t, "x", p.Achievements[0])
}
