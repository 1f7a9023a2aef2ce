// Package pages contains the page-level components of the public site
// and the admin area.
package pages

import (
	"github.com/aisb-selection/aisb/internal/navigation"
	"github.com/aisb-selection/aisb/internal/templates/ui"
	"github.com/aisb-selection/aisb/internal/theme"
)

// AdminNavbarView is everything the admin navbar needs to render.
type AdminNavbarView struct {
	Groups    []navigation.Group
	Active    string // path of the current page
	Theme     theme.Theme
	ReturnTo  string // where the theme toggle redirects back to
	AdminName string
}

// AdminLoginView carries the state of the login form.
type AdminLoginView struct {
	Email         string
	Error         string
	GitHubEnabled bool
}

// loginErrors maps the error codes used in redirects to messages.
var loginErrors = map[string]string{
	"invalid_credentials": "Invalid email or password.",
	"invalid_state":       "Your sign-in attempt expired. Please try again.",
	"github_error":        "GitHub sign-in was cancelled or failed.",
	"token_exchange":      "Could not complete GitHub sign-in.",
	"user_fetch":          "Could not read your GitHub profile.",
	"not_allowed":         "This account is not an administrator.",
	"session":             "Could not start your session. Please try again.",
	"unavailable":         "Sign-in is temporarily unavailable.",
}

// LoginErrorMessage returns the message for an error code, or "" for an
// unknown code.
func LoginErrorMessage(code string) string {
	return loginErrors[code]
}

// toggleIcon shows the sun while dark and the moon while light.
func toggleIcon(current theme.Theme) string {
	if current == theme.Dark {
		return "sun"
	}
	return "moon"
}

func toggleOptions(current theme.Theme) []ui.ButtonOption {
	label := "Switch to dark theme"
	if current == theme.Dark {
		label = "Switch to light theme"
	}
	return []ui.ButtonOption{
		ui.Variant(ui.ButtonVariantGhost),
		ui.Size(ui.ButtonSizeIcon),
		ui.AriaLabel(label),
	}
}
