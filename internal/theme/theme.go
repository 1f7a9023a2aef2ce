// Package theme resolves, applies and persists the light/dark display
// preference of the admin area.
//
// A Controller owns the current Theme. It reads the persisted preference
// from a PreferenceStore, falls back to the ambient color-scheme signal of a
// ColorSchemeProvider, mirrors the result onto a Document, and writes the
// marker back on every Toggle.
package theme

// Theme is the binary presentation mode.
type Theme int

const (
	Light Theme = iota
	Dark
)

// Literal markers written to the preference store.
const (
	MarkerLight = "light"
	MarkerDark  = "dark"
)

// StorageKey is the preference store key holding the marker.
const StorageKey = "theme"

// DarkClass is the document root class present while Dark is applied.
const DarkClass = "dark"

// String returns the persisted marker for t.
func (t Theme) String() string {
	if t == Dark {
		return MarkerDark
	}
	return MarkerLight
}

// Flip returns the opposite theme.
func (t Theme) Flip() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// PreferenceStore is durable client-local key-value storage.
type PreferenceStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// ColorSchemeProvider reports the ambient color-scheme signal.
type ColorSchemeProvider interface {
	PrefersDark() bool
}

// Resolve picks the initial theme. A stored "dark" marker wins; any other
// stored value means Light. Only an absent or empty value consults the
// ambient signal, and a nil provider counts as not preferring dark.
func Resolve(store PreferenceStore, scheme ColorSchemeProvider) Theme {
	if store != nil {
		if saved, ok := store.Get(StorageKey); ok && saved != "" {
			if saved == MarkerDark {
				return Dark
			}
			return Light
		}
	}
	if scheme != nil && scheme.PrefersDark() {
		return Dark
	}
	return Light
}
