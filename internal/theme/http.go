package theme

import (
	"net/http"
	"strings"
)

// ClientHintHeader carries the browser's prefers-color-scheme value.
const ClientHintHeader = "Sec-CH-Prefers-Color-Scheme"

// cookieMaxAge keeps the preference for a year.
const cookieMaxAge = 365 * 24 * 60 * 60

// CookieStore is a PreferenceStore backed by request and response cookies.
// Values written during the request are visible to later Gets.
type CookieStore struct {
	r       *http.Request
	w       http.ResponseWriter
	secure  bool
	written map[string]string
}

// NewCookieStore binds a store to one request/response pair.
func NewCookieStore(w http.ResponseWriter, r *http.Request, secure bool) *CookieStore {
	return &CookieStore{
		r:       r,
		w:       w,
		secure:  secure,
		written: make(map[string]string),
	}
}

// Get returns the cookie value for key.
func (s *CookieStore) Get(key string) (string, bool) {
	if v, ok := s.written[key]; ok {
		return v, true
	}
	c, err := s.r.Cookie(key)
	if err != nil {
		return "", false
	}
	return c.Value, true
}

// Set writes key as a cookie. Not HttpOnly so client scripts may read it
// before first paint.
func (s *CookieStore) Set(key, value string) {
	s.written[key] = value
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		Secure:   s.secure,
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClientHintScheme reads the ambient color scheme from the
// Sec-CH-Prefers-Color-Scheme request header.
type ClientHintScheme struct {
	r *http.Request
}

// NewClientHintScheme wraps r.
func NewClientHintScheme(r *http.Request) ClientHintScheme {
	return ClientHintScheme{r: r}
}

// PrefersDark reports whether the hint is "dark". Structured header values
// may arrive quoted.
func (s ClientHintScheme) PrefersDark() bool {
	v := strings.TrimSpace(s.r.Header.Get(ClientHintHeader))
	v = strings.Trim(v, `"`)
	return strings.EqualFold(v, MarkerDark)
}

// MemoryStore is an in-process PreferenceStore.
type MemoryStore map[string]string

// Get returns the value for key.
func (m MemoryStore) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Set stores value under key.
func (m MemoryStore) Set(key, value string) {
	m[key] = value
}

// StaticScheme is a fixed ambient signal.
type StaticScheme bool

// PrefersDark returns the fixed value.
func (s StaticScheme) PrefersDark() bool {
	return bool(s)
}
