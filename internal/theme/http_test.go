package theme_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisb-selection/aisb/internal/theme"
)

func TestCookieStore_GetAndSet(t *testing.T) {
	req := httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})
	w := httptest.NewRecorder()

	store := theme.NewCookieStore(w, req, true)

	v, ok := store.Get("theme")
	require.True(t, ok)
	assert.Equal(t, "dark", v)

	_, ok = store.Get("missing")
	assert.False(t, ok)

	store.Set("theme", "light")
	v, _ = store.Get("theme")
	assert.Equal(t, "light", v)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "theme", cookies[0].Name)
	assert.Equal(t, "light", cookies[0].Value)
	assert.Equal(t, "/", cookies[0].Path)
	assert.Equal(t, 365*24*60*60, cookies[0].MaxAge)
	assert.False(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
}

func TestClientHintScheme(t *testing.T) {
	tests := []struct {
		header string
		want   bool
	}{
		{"dark", true},
		{`"dark"`, true},
		{"Dark", true},
		{"light", false},
		{"", false},
		{"no-preference", false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/admin", nil)
			if tt.header != "" {
				req.Header.Set(theme.ClientHintHeader, tt.header)
			}
			assert.Equal(t, tt.want, theme.NewClientHintScheme(req).PrefersDark())
		})
	}
}

func TestController_OverHTTP(t *testing.T) {
	req := httptest.NewRequest("POST", "/admin/theme", nil)
	req.Header.Set(theme.ClientHintHeader, "dark")
	w := httptest.NewRecorder()

	c := theme.NewController(theme.NewCookieStore(w, req, false), theme.NewClientHintScheme(req), nil)
	assert.Equal(t, theme.Dark, c.Init())
	assert.Empty(t, w.Header().Values("Set-Cookie"))

	assert.Equal(t, theme.Light, c.Toggle())
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "light", cookies[0].Value)
}
