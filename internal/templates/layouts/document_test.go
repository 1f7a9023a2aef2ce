package layouts_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisb-selection/aisb/internal/templates/layouts"
	"github.com/aisb-selection/aisb/internal/templates/ui"
	"github.com/aisb-selection/aisb/internal/theme"
)

func TestDocument(t *testing.T) {
	var sb strings.Builder
	err := layouts.Document("Students | AISB <Admin>", theme.NewDocument(theme.DarkClass), ui.Text("body")).
		Render(context.Background(), &sb)
	require.NoError(t, err)

	html := sb.String()
	assert.True(t, strings.HasPrefix(html, `<!doctype html><html lang="en" class="dark">`))
	assert.Contains(t, html, "<title>Students | AISB &lt;Admin&gt;</title>")
	assert.Contains(t, html, ">body</body></html>")
}

func TestDocument_NoClasses(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, layouts.Document("AISB", nil, nil).Render(context.Background(), &sb))
	assert.True(t, strings.HasPrefix(sb.String(), `<!doctype html><html lang="en"><head>`))

	sb.Reset()
	require.NoError(t, layouts.Document("AISB", theme.NewDocument(), nil).Render(context.Background(), &sb))
	assert.NotContains(t, sb.String(), "class=\"\"")
}
