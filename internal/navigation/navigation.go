// Package navigation holds the fixed navigation configuration of the
// public site and the admin area.
package navigation

import (
	"fmt"

	"github.com/aisb-selection/aisb/internal/domain"
)

// Item is a single navigable entry. Icon names an icon in the ui package.
type Item struct {
	Title string
	URL   string
	Icon  string
}

// Group is a titled, ordered run of items.
type Group struct {
	Title string
	Items []Item
}

// PublicBrand is the wordmark of the public navbar.
const PublicBrand = "AISB Selection"

// AdminBrand is the title of the admin navbar.
const AdminBrand = "AISB Admin"

// Logo is the URL of the admin navbar logo, served from the static directory.
const Logo = "/static/logo.svg"

var adminGroups = []Group{
	{
		Title: "Overview",
		Items: []Item{
			{Title: "Dashboard", URL: "/admin", Icon: "home"},
			{Title: "Students", URL: "/admin/students", Icon: "users"},
		},
	},
	{
		Title: "Quiz Management",
		Items: []Item{
			{Title: "Upload Excel", URL: "/admin/upload", Icon: "upload"},
			{Title: "Quiz Details", URL: "/admin/quiz", Icon: "file-text"},
			{Title: "Quiz Results", URL: "/admin/quiz-results", Icon: "trophy"},
		},
	},
	{
		Title: "Video Contest",
		Items: []Item{
			{Title: "Submissions", URL: "/admin/videos", Icon: "video"},
			{Title: "Winners", URL: "/admin/winners", Icon: "trophy"},
		},
	},
	{
		Title: "System",
		Items: []Item{
			{Title: "Settings", URL: "/admin/settings", Icon: "settings"},
		},
	},
}

var publicLinks = []Item{
	{Title: "Dashboard", URL: "/admin/dashboard"},
}

// AdminGroups returns a copy of the admin navbar configuration in display
// order.
func AdminGroups() []Group {
	out := make([]Group, len(adminGroups))
	for i, g := range adminGroups {
		out[i] = Group{
			Title: g.Title,
			Items: append([]Item(nil), g.Items...),
		}
	}
	return out
}

// PublicLinks returns a copy of the public navbar links.
func PublicLinks() []Item {
	return append([]Item(nil), publicLinks...)
}

// Items flattens groups into their items, preserving order.
func Items(groups []Group) []Item {
	var out []Item
	for _, g := range groups {
		out = append(out, g.Items...)
	}
	return out
}

// Lookup returns the admin item whose URL is exactly path.
func Lookup(path string) (Item, bool) {
	for _, item := range Items(adminGroups) {
		if item.URL == path {
			return item, true
		}
	}
	return Item{}, false
}

// Validate checks that every item URL is a well-formed internal path and
// that group titles are unique.
func Validate(groups []Group) error {
	seen := make(map[string]bool, len(groups))
	for _, g := range groups {
		if g.Title == "" {
			return fmt.Errorf("navigation group with empty title")
		}
		if seen[g.Title] {
			return fmt.Errorf("duplicate navigation group %q", g.Title)
		}
		seen[g.Title] = true

		for _, item := range g.Items {
			if err := domain.ValidatePath(item.URL); err != nil {
				return fmt.Errorf("navigation item %q in %q: %w", item.Title, g.Title, err)
			}
		}
	}
	return nil
}
