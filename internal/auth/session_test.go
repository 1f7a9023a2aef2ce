package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisb-selection/aisb/internal/auth"
)

// testSecret is a 64-byte secret for testing
const testSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestSessionStore_SetAndGet(t *testing.T) {
	store := auth.NewSessionStore(testSecret, time.Hour, false)

	session := &auth.SessionData{
		AdminID:  uuid.New(),
		Email:    "admin@aisb.example",
		Name:     "Ada",
		Provider: auth.ProviderPassword,
	}

	// Set session
	w := httptest.NewRecorder()
	err := store.Set(w, session)
	require.NoError(t, err)

	// Get cookies from response
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "aisb_session", cookies[0].Name)

	// Create request with cookie
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookies[0])

	// Get session
	got, err := store.Get(req)
	require.NoError(t, err)
	assert.Equal(t, session.AdminID, got.AdminID)
	assert.Equal(t, session.Email, got.Email)
	assert.Equal(t, session.Name, got.Name)
	assert.Equal(t, auth.ProviderPassword, got.Provider)
	assert.WithinDuration(t, time.Now().Add(time.Hour), got.ExpiresAt, time.Minute)
}

func TestSessionStore_NoCookie(t *testing.T) {
	store := auth.NewSessionStore(testSecret, time.Hour, false)

	req := httptest.NewRequest("GET", "/", nil)

	_, err := store.Get(req)
	assert.Error(t, err)
}

func TestSessionStore_ExpiredSession(t *testing.T) {
	// Create store with negative max age (already expired)
	store := auth.NewSessionStore(testSecret, -time.Hour, false)

	session := &auth.SessionData{
		AdminID: uuid.New(),
		Email:   "admin@aisb.example",
	}

	// Set session
	w := httptest.NewRecorder()
	err := store.Set(w, session)
	require.NoError(t, err)

	// Get cookies
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	// Create request with cookie
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookies[0])

	// Get session should fail due to expiration
	_, err = store.Get(req)
	assert.Error(t, err)
}

func TestSessionStore_Clear(t *testing.T) {
	store := auth.NewSessionStore(testSecret, time.Hour, false)

	w := httptest.NewRecorder()
	store.Clear(w)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "aisb_session", cookies[0].Name)
	assert.Equal(t, "", cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestSessionStore_SecureCookie(t *testing.T) {
	// Test with secure=true (production)
	store := auth.NewSessionStore(testSecret, time.Hour, true)

	session := &auth.SessionData{
		AdminID: uuid.New(),
		Email:   "admin@aisb.example",
	}

	w := httptest.NewRecorder()
	err := store.Set(w, session)
	require.NoError(t, err)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
}

func TestSessionStore_InvalidCookie(t *testing.T) {
	store := auth.NewSessionStore(testSecret, time.Hour, false)

	// Create request with invalid cookie value
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{
		Name:  "aisb_session",
		Value: "invalid-cookie-value",
	})

	_, err := store.Get(req)
	assert.Error(t, err)
}

func TestSessionStore_TamperedCookie(t *testing.T) {
	store := auth.NewSessionStore(testSecret, time.Hour, false)
	other := auth.NewSessionStore("fedcba9876543210fedcba9876543210fedcba9876543210fedcba9876543210", time.Hour, false)

	w := httptest.NewRecorder()
	require.NoError(t, other.Set(w, &auth.SessionData{AdminID: uuid.New()}))

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(w.Result().Cookies()[0])

	_, err := store.Get(req)
	assert.Error(t, err)
}

func TestSessionData_DisplayName(t *testing.T) {
	assert.Equal(t, "Ada", (&auth.SessionData{Name: "Ada", Email: "a@x"}).DisplayName())
	assert.Equal(t, "a@x", (&auth.SessionData{Email: "a@x"}).DisplayName())
}
