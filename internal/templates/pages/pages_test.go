package pages_test

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisb-selection/aisb/internal/landing"
	"github.com/aisb-selection/aisb/internal/navigation"
	"github.com/aisb-selection/aisb/internal/templates/pages"
	"github.com/aisb-selection/aisb/internal/theme"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

var (
	groupRe = regexp.MustCompile(`data-nav-group="([^"]*)"`)
	hrefRe  = regexp.MustCompile(`<a href="([^"]*)"[^>]*data-nav-item`)
)

func syntheticGroups(n, m int) []navigation.Group {
	groups := make([]navigation.Group, n)
	for i := range groups {
		groups[i].Title = fmt.Sprintf("Group %d", i)
		for j := 0; j < m; j++ {
			groups[i].Items = append(groups[i].Items, navigation.Item{
				Title: fmt.Sprintf("Item %d.%d", i, j),
				URL:   fmt.Sprintf("/admin/g%d/i%d", i, j),
				Icon:  "home",
			})
		}
	}
	return groups
}

func TestAdminNavbar_RendersEveryGroupAndItemInOrder(t *testing.T) {
	for _, size := range []struct{ n, m int }{{0, 0}, {1, 1}, {3, 2}, {4, 5}} {
		t.Run(fmt.Sprintf("%dx%d", size.n, size.m), func(t *testing.T) {
			groups := syntheticGroups(size.n, size.m)
			html := render(t, pages.AdminNavbar(pages.AdminNavbarView{Groups: groups}))

			gotGroups := groupRe.FindAllStringSubmatch(html, -1)
			require.Len(t, gotGroups, size.n)
			for i, g := range gotGroups {
				assert.Equal(t, groups[i].Title, g[1])
			}

			// Split on group markers so each chunk holds one group's links.
			chunks := groupRe.Split(html, -1)[1:]
			for i, chunk := range chunks {
				links := hrefRe.FindAllStringSubmatch(chunk, -1)
				require.Len(t, links, size.m, "group %d", i)
				for j, l := range links {
					assert.Equal(t, groups[i].Items[j].URL, l[1])
				}
			}
		})
	}
}

func TestAdminNavbar_Config(t *testing.T) {
	html := render(t, pages.AdminNavbar(pages.AdminNavbarView{
		Groups:    navigation.AdminGroups(),
		Active:    "/admin/students",
		Theme:     theme.Light,
		ReturnTo:  "/admin/students",
		AdminName: "Ada",
	}))

	assert.Len(t, hrefRe.FindAllString(html, -1), len(navigation.Items(navigation.AdminGroups())))
	assert.Contains(t, html, `<a href="/admin/students" class="flex items-center gap-2 text-sm font-medium hover:text-accent transition" data-nav-item aria-current="page">`)
	assert.Equal(t, 1, strings.Count(html, `aria-current="page"`))
	assert.Contains(t, html, "AISB Admin")
	assert.Contains(t, html, `data-admin-name>Ada</span>`)

	// Light shows the moon and offers dark.
	assert.Contains(t, html, `data-theme-toggle="light"`)
	assert.Contains(t, html, `data-icon="moon"`)
	assert.NotContains(t, html, `data-icon="sun"`)
	assert.Contains(t, html, `name="return_to" value="/admin/students"`)

	assert.Contains(t, html, `action="/admin/logout"`)
	assert.Contains(t, html, "Logout</button>")
}

func TestAdminNavbar_DarkShowsSun(t *testing.T) {
	html := render(t, pages.AdminNavbar(pages.AdminNavbarView{Theme: theme.Dark}))

	assert.Contains(t, html, `data-theme-toggle="dark"`)
	assert.Contains(t, html, `data-icon="sun"`)
	assert.Contains(t, html, `aria-label="Switch to light theme"`)
	assert.NotContains(t, html, "data-admin-name")
}

func TestLanding(t *testing.T) {
	html := render(t, pages.Landing())

	assert.Contains(t, html, `data-navbar="public"`)
	assert.Contains(t, html, "AISB Selection")
	assert.Contains(t, html, `<a href="/admin/dashboard"`)

	features := landing.Courses().Features
	assert.Equal(t, len(features), strings.Count(html, "data-course"))
	last := -1
	for _, f := range features {
		idx := strings.Index(html, ">"+f.Name+"</dt>")
		require.NotEqual(t, -1, idx, f.Name)
		assert.Greater(t, idx, last, "features keep their order")
		last = idx
	}
}

func TestPublicNavbar_Empty(t *testing.T) {
	html := render(t, pages.PublicNavbar(nil))
	assert.NotContains(t, html, "<a ")
}

func TestAdminLogin(t *testing.T) {
	html := render(t, pages.AdminLogin(pages.AdminLoginView{
		Email: `a"b@example.com`,
		Error: pages.LoginErrorMessage("invalid_credentials"),
	}))

	assert.Contains(t, html, `data-page="login"`)
	assert.Contains(t, html, `role="alert">Invalid email or password.</p>`)
	assert.Contains(t, html, `value="a&#34;b@example.com"`)
	assert.NotContains(t, html, "/admin/auth/github")
	assert.NotContains(t, html, "data-navbar")

	html = render(t, pages.AdminLogin(pages.AdminLoginView{GitHubEnabled: true}))
	assert.Contains(t, html, `action="/admin/auth/github"`)
	assert.NotContains(t, html, `role="alert"`)
}

func TestLoginErrorMessage_Unknown(t *testing.T) {
	assert.Equal(t, "", pages.LoginErrorMessage("<script>"))
}

func TestAdminSection(t *testing.T) {
	html := render(t, pages.AdminSection("Quiz Results", "Scores & rankings"))
	assert.Contains(t, html, `data-section="Quiz Results"`)
	assert.Contains(t, html, "Scores &amp; rankings")
}

func TestAdminNavbar_SanitizesLinkURLs(t *testing.T) {
	html := render(t, pages.AdminNavbar(pages.AdminNavbarView{Groups: []navigation.Group{{
		Title: "Bad",
		Items: []navigation.Item{{Title: "Script", URL: "javascript:alert(1)", Icon: "home"}},
	}}}))

	assert.NotContains(t, html, "javascript:")
	assert.Contains(t, html, `href="about:invalid#TemplFailedSanitizationURL"`)
}

func TestAdminNavbar_Logo(t *testing.T) {
	html := render(t, pages.AdminNavbar(pages.AdminNavbarView{}))
	assert.Contains(t, html, `<img src="`+navigation.Logo+`" alt="AISB Logo"`)
}
