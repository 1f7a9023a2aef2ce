package theme_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aisb-selection/aisb/internal/theme"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		stored map[string]string
		dark   bool
		want   theme.Theme
	}{
		{"stored dark, ambient light", map[string]string{"theme": "dark"}, false, theme.Dark},
		{"stored dark, ambient dark", map[string]string{"theme": "dark"}, true, theme.Dark},
		{"stored light, ambient dark", map[string]string{"theme": "light"}, true, theme.Light},
		{"stored light, ambient light", map[string]string{"theme": "light"}, false, theme.Light},
		{"absent, ambient dark", map[string]string{}, true, theme.Dark},
		{"absent, ambient light", map[string]string{}, false, theme.Light},
		{"empty, ambient dark", map[string]string{"theme": ""}, true, theme.Dark},
		{"unrecognised, ambient dark", map[string]string{"theme": "blue"}, true, theme.Light},
		{"other key only", map[string]string{"lang": "dark"}, true, theme.Dark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := theme.Resolve(theme.MemoryStore(tt.stored), theme.StaticScheme(tt.dark))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_NilCollaborators(t *testing.T) {
	assert.Equal(t, theme.Light, theme.Resolve(nil, nil))
	assert.Equal(t, theme.Dark, theme.Resolve(nil, theme.StaticScheme(true)))
	assert.Equal(t, theme.Dark, theme.Resolve(theme.MemoryStore{"theme": "dark"}, nil))
}

func TestTheme_String(t *testing.T) {
	assert.Equal(t, "light", theme.Light.String())
	assert.Equal(t, "dark", theme.Dark.String())
	assert.Equal(t, theme.Dark, theme.Light.Flip())
	assert.Equal(t, theme.Light, theme.Dark.Flip())
}

func TestController_InitAbsentAmbientDark(t *testing.T) {
	store := theme.MemoryStore{}
	doc := theme.NewDocument()
	c := theme.NewController(store, theme.StaticScheme(true), doc)

	assert.Equal(t, theme.Dark, c.Init())
	assert.Equal(t, theme.Dark, c.Current())
	assert.True(t, doc.Has(theme.DarkClass))

	// Init does not persist anything.
	_, ok := store.Get(theme.StorageKey)
	assert.False(t, ok)
}

func TestController_InitStoredLightClearsStaleFlag(t *testing.T) {
	doc := theme.NewDocument("antialiased", theme.DarkClass)
	c := theme.NewController(theme.MemoryStore{"theme": "light"}, theme.StaticScheme(true), doc)

	assert.Equal(t, theme.Light, c.Init())
	assert.False(t, doc.Has(theme.DarkClass))
	assert.Equal(t, []string{"antialiased"}, doc.Classes())
}

func TestController_InitRunsOnce(t *testing.T) {
	store := theme.MemoryStore{}
	c := theme.NewController(store, theme.StaticScheme(false), nil)
	assert.Equal(t, theme.Light, c.Init())

	// A preference written elsewhere after mount is not re-read.
	store.Set(theme.StorageKey, theme.MarkerDark)
	assert.Equal(t, theme.Light, c.Init())
	assert.False(t, c.Document().Has(theme.DarkClass))
}

func TestController_ApplyIdempotent(t *testing.T) {
	doc := theme.NewDocument()
	c := theme.NewController(theme.MemoryStore{}, nil, doc)

	c.Apply(theme.Dark)
	c.Apply(theme.Dark)
	assert.Equal(t, []string{"dark"}, doc.Classes())

	c.Apply(theme.Light)
	c.Apply(theme.Light)
	assert.Empty(t, doc.Classes())
}

func TestController_ToggleRoundTrip(t *testing.T) {
	store := theme.MemoryStore{}
	doc := theme.NewDocument()
	c := theme.NewController(store, theme.StaticScheme(false), doc)
	assert.Equal(t, theme.Light, c.Init())

	assert.Equal(t, theme.Dark, c.Toggle())
	assert.Equal(t, theme.Dark, c.Current())
	assert.True(t, doc.Has(theme.DarkClass))
	v, ok := store.Get(theme.StorageKey)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	assert.Equal(t, theme.Light, c.Toggle())
	assert.Equal(t, theme.Light, c.Current())
	assert.False(t, doc.Has(theme.DarkClass))
	v, _ = store.Get(theme.StorageKey)
	assert.Equal(t, "light", v)
}

func TestController_ToggleKeepsStoreAndDocumentInSync(t *testing.T) {
	store := theme.MemoryStore{"theme": "dark"}
	doc := theme.NewDocument()
	c := theme.NewController(store, nil, doc)
	c.Init()

	for i := 0; i < 5; i++ {
		got := c.Toggle()
		v, _ := store.Get(theme.StorageKey)
		assert.Equal(t, got.String(), v)
		assert.Equal(t, got == theme.Dark, doc.Has(theme.DarkClass))
	}
}

func TestDocument(t *testing.T) {
	doc := theme.NewDocument("a", "b", "a", "")
	assert.Equal(t, []string{"a", "b"}, doc.Classes())
	assert.Equal(t, "a b", doc.ClassAttr())

	doc.Remove("missing")
	doc.Remove("a")
	assert.Equal(t, "b", doc.ClassAttr())

	// Classes returns a copy.
	classes := doc.Classes()
	classes[0] = "mutated"
	assert.True(t, doc.Has("b"))
}
