package shell_test

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisb-selection/aisb/internal/shell"
	"github.com/aisb-selection/aisb/internal/templates/ui"
)

func TestModeFor(t *testing.T) {
	tests := []struct {
		path string
		want shell.RenderMode
	}{
		{"/admin/login", shell.Bare},
		{"/admin/students", shell.Chrome},
		{"/admin", shell.Chrome},
		{"/admin/", shell.Chrome},
		{"/", shell.Chrome},
		{"", shell.Chrome},
		{"/no/such/page", shell.Chrome},

		// Exact match only: these keep the chrome.
		{"/admin/login/", shell.Chrome},
		{"/admin/login/reset", shell.Chrome},
		{"/admin/loginx", shell.Chrome},
		{"/ADMIN/LOGIN", shell.Chrome},
		{" /admin/login", shell.Chrome},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, shell.ModeFor(tt.path))
		})
	}
}

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

func TestLayout_Bare(t *testing.T) {
	navbar := ui.Text("NAVBAR")
	html := render(t, shell.Layout(shell.ModeFor("/admin/login"), navbar, ui.Text("login form")))

	assert.Equal(t, "login form", html)
}

func TestLayout_Chrome(t *testing.T) {
	navbar := ui.Text("NAVBAR")
	html := render(t, shell.Layout(shell.ModeFor("/admin/students"), navbar, ui.Text("students")))

	assert.Contains(t, html, `data-shell="chrome"`)
	nav := strings.Index(html, "NAVBAR")
	main := strings.Index(html, `<main class="flex-1 overflow-auto p-6">students</main>`)
	require.NotEqual(t, -1, nav)
	require.NotEqual(t, -1, main)
	assert.Less(t, nav, main, "navbar renders above the content region")
}

func TestRenderMode_String(t *testing.T) {
	assert.Equal(t, "bare", shell.Bare.String())
	assert.Equal(t, "chrome", shell.Chrome.String())
}

func TestLayout_NilParts(t *testing.T) {
	assert.Equal(t, "", render(t, shell.Layout(shell.Bare, nil, nil)))
	assert.Equal(t,
		`<div class="flex flex-col h-screen w-full" data-shell="chrome"><main class="flex-1 overflow-auto p-6"></main></div>`,
		render(t, shell.Layout(shell.Chrome, nil, nil)))
}
