package landing_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisb-selection/aisb/internal/landing"
)

func TestCourses(t *testing.T) {
	s := landing.Courses()

	assert.Equal(t, "Boost your Skills. Join our Bootcamp today.", s.Headline)
	if assert.Len(t, s.Features, 3) {
		assert.Equal(t, "Agentic AI Course.", s.Features[0].Name)
		assert.Equal(t, "Autonomous AI Agents", s.Features[1].Description)
		assert.Equal(t, "Generative AI Course.", s.Features[2].Name)
	}

	// Names are distinct even though two differ only in punctuation.
	seen := map[string]bool{}
	for _, f := range s.Features {
		assert.False(t, seen[f.Name], f.Name)
		seen[f.Name] = true
	}

	s.Features[0].Name = "mutated"
	assert.Equal(t, "Agentic AI Course.", landing.Courses().Features[0].Name)
}

func TestCourses_ImageIsServed(t *testing.T) {
	image := landing.Courses().Image
	require.True(t, strings.HasPrefix(image, "/static/"))
	_, err := os.Stat(filepath.Join("..", "..", "static", strings.TrimPrefix(image, "/static/")))
	assert.NoError(t, err)
}
