package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aisb-selection/aisb/internal/auth"
	"github.com/aisb-selection/aisb/internal/domain"
	"github.com/aisb-selection/aisb/internal/middleware"
	"github.com/aisb-selection/aisb/internal/shell"
	"github.com/aisb-selection/aisb/internal/templates/pages"
)

const (
	oauthStateCookie = "oauth_state"
	adminHome        = domain.AdminRoot
)

// stateSource supplies the randomness of OAuth state values.
var stateSource io.Reader = rand.Reader

// Login renders the admin login page. Signed-in admins go straight to the
// dashboard.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if middleware.GetSession(r.Context()) != nil {
		http.Redirect(w, r, adminHome, http.StatusSeeOther)
		return
	}

	h.renderLogin(w, r, http.StatusOK, pages.AdminLoginView{
		Error: pages.LoginErrorMessage(r.URL.Query().Get("error")),
	})
}

// LoginSubmit checks the submitted credentials and starts a session.
func (h *Handlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	email := r.PostFormValue("email")

	account, err := h.authn.Authenticate(r.Context(), email, r.PostFormValue("password"))
	if err != nil {
		h.metrics.SignIn(auth.ProviderPassword, false)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.logger.Info("admin sign-in rejected", "email", auth.NormalizeEmail(email))
			h.renderLogin(w, r, http.StatusUnauthorized, pages.AdminLoginView{
				Email: email,
				Error: pages.LoginErrorMessage("invalid_credentials"),
			})
			return
		}
		h.logger.Error("admin sign-in failed", "error", err)
		h.renderLogin(w, r, http.StatusServiceUnavailable, pages.AdminLoginView{
			Email: email,
			Error: pages.LoginErrorMessage("unavailable"),
		})
		return
	}

	h.startSession(w, r, account, auth.ProviderPassword)
}

// Logout clears the session and returns to the login page.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, shell.LoginPath, http.StatusSeeOther)
}

// GitHubStart initiates the GitHub OAuth flow.
func (h *Handlers) GitHubStart(w http.ResponseWriter, r *http.Request) {
	if h.github == nil {
		http.NotFound(w, r)
		return
	}

	// Generate random state for CSRF protection
	state, err := generateState()
	if err != nil {
		h.logger.Error("failed to generate oauth state", "error", err)
		h.loginError(w, r, "session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/admin/auth",
		MaxAge:   600, // 10 minutes
		HttpOnly: true,
		Secure:   h.config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.github.AuthorizeURL(state), http.StatusTemporaryRedirect)
}

// GitHubCallback handles the OAuth callback from GitHub.
func (h *Handlers) GitHubCallback(w http.ResponseWriter, r *http.Request) {
	if h.github == nil {
		http.NotFound(w, r)
		return
	}
	ctx := r.Context()

	// Verify state
	stateCookie, err := r.Cookie(oauthStateCookie)
	if err != nil || stateCookie.Value == "" || r.URL.Query().Get("state") != stateCookie.Value {
		h.logger.Error("oauth state mismatch")
		h.loginError(w, r, "invalid_state")
		return
	}

	// Clear state cookie
	http.SetCookie(w, &http.Cookie{
		Name:   oauthStateCookie,
		Value:  "",
		Path:   "/admin/auth",
		MaxAge: -1,
	})

	if errMsg := r.URL.Query().Get("error"); errMsg != "" {
		h.logger.Error("github oauth error", "error", errMsg)
		h.loginError(w, r, "github_error")
		return
	}

	accessToken, err := h.github.ExchangeCode(ctx, r.URL.Query().Get("code"))
	if err != nil {
		h.logger.Error("failed to exchange code", "error", err)
		h.loginError(w, r, "token_exchange")
		return
	}

	githubUser, err := h.github.GetUser(ctx, accessToken)
	if err != nil {
		h.logger.Error("failed to get github user", "error", err)
		h.loginError(w, r, "user_fetch")
		return
	}

	account, err := h.github.Admit(githubUser)
	if err != nil {
		h.logger.Info("github user not allowed", "login", githubUser.Login)
		h.loginError(w, r, "not_allowed")
		return
	}

	h.startSession(w, r, account, auth.ProviderGitHub)
}

func (h *Handlers) startSession(w http.ResponseWriter, r *http.Request, account *auth.Account, provider string) {
	if err := h.sessions.Set(w, account.Session(provider)); err != nil {
		h.logger.Error("failed to set session", "error", err)
		h.metrics.SignIn(provider, false)
		h.loginError(w, r, "session")
		return
	}

	h.metrics.SignIn(provider, true)
	h.logger.Info("admin signed in", "admin_id", account.ID, "provider", provider)
	http.Redirect(w, r, adminHome, http.StatusSeeOther)
}

func (h *Handlers) renderLogin(w http.ResponseWriter, r *http.Request, status int, view pages.AdminLoginView) {
	view.GitHubEnabled = h.github != nil
	h.renderAdmin(w, r, status, "Sign in", "", pages.AdminLogin(view))
}

func (h *Handlers) loginError(w http.ResponseWriter, r *http.Request, code string) {
	http.Redirect(w, r, shell.LoginPath+"?error="+code, http.StatusSeeOther)
}

// generateState generates a random state string for CSRF protection.
func generateState() (string, error) {
	b := make([]byte, 16)
	if _, err := io.ReadFull(stateSource, b); err != nil {
		return "", fmt.Errorf("failed to read random state: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// safeReturnPath keeps post-action redirects inside the admin area.
func safeReturnPath(p string) string {
	return domain.SafeReturnPath(p, adminHome)
}
