package materials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(ms []Material) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.ID
	}
	return out
}

func TestDefaultCatalog_ContentLoaded(t *testing.T) {
	for _, m := range DefaultCatalog().All() {
		assert.NotEmpty(t, m.Content, m.ID)
		assert.Positive(t, m.EstimatedMinutes, m.ID)
	}
}

func TestFind(t *testing.T) {
	c := DefaultCatalog()

	m, err := c.Find("comm-interview")
	require.NoError(t, err)
	assert.Equal(t, "Effective Interview Communication", m.Title)

	_, err = c.Find("missing")
	assert.ErrorIs(t, err, ErrMaterialNotFound)
}

func TestFilter(t *testing.T) {
	c := DefaultCatalog()
	yes := true

	tests := []struct {
		name      string
		f         Filter
		completed []string
		want      []string
	}{
		{"search title case-insensitive", Filter{Search: "REACT"}, nil, []string{"tech-react-intro"}},
		{"search tags", Filter{Search: "soft skills"}, nil, []string{"comm-interview", "comm-public-speaking"}},
		{"category", Filter{Category: CategoryAptitude}, nil, []string{"apt-quant-basics", "apt-logical-reasoning"}},
		{"difficulty and category", Filter{Category: CategoryCommunication, Difficulty: Intermediate}, nil, []string{"comm-public-speaking"}},
		{"completed only", Filter{Completed: &yes}, []string{"apt-quant-basics"}, []string{"apt-quant-basics"}},
		{"no match", Filter{Search: "kubernetes"}, nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(c.Filter(tt.f, tt.completed)))
		})
	}
}

func TestFilter_EmptyMatchesAll(t *testing.T) {
	c := DefaultCatalog()
	assert.Len(t, c.Filter(Filter{}, nil), len(c.All()))
}
