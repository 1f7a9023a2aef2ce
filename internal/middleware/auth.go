package middleware

import (
	"net/http"
)

// RequireAdmin redirects requests without an admin session to the login
// page.
func RequireAdmin(loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := GetSession(r.Context())
			if session == nil {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
