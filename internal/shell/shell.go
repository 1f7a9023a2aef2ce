// Package shell decides whether an admin page is wrapped in the admin
// chrome and composes the page body accordingly.
package shell

import (
	"github.com/a-h/templ"
)

// LoginPath is the only admin path rendered without chrome.
const LoginPath = "/admin/login"

// RenderMode selects how admin content is composed.
type RenderMode int

const (
	// Chrome wraps content with the admin navbar and a scrollable main region.
	Chrome RenderMode = iota
	// Bare renders content alone.
	Bare
)

func (m RenderMode) String() string {
	if m == Bare {
		return "bare"
	}
	return "chrome"
}

// ModeFor returns Bare when path is exactly LoginPath and Chrome for every
// other string. The match is exact: "/admin/login/" and any future login
// sub-path get the chrome.
func ModeFor(path string) RenderMode {
	if path == LoginPath {
		return Bare
	}
	return Chrome
}

// Layout composes the page body for mode. navbar is ignored in Bare mode.
func Layout(mode RenderMode, navbar, content templ.Component) templ.Component {
	if mode == Bare {
		if content == nil {
			return templ.NopComponent
		}
		return content
	}
	return chrome(navbar, content)
}
