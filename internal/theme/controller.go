package theme

// Controller holds the current theme for one mounted admin chrome.
// It is not safe for concurrent use; each request builds its own.
type Controller struct {
	store       PreferenceStore
	scheme      ColorSchemeProvider
	doc         *Document
	current     Theme
	initialized bool
}

// NewController binds a controller to its store, ambient signal and
// document. A nil document gets a fresh empty one.
func NewController(store PreferenceStore, scheme ColorSchemeProvider, doc *Document) *Controller {
	if doc == nil {
		doc = NewDocument()
	}
	return &Controller{
		store:  store,
		scheme: scheme,
		doc:    doc,
	}
}

// Init resolves the initial theme and applies it. Only the first call has
// any effect.
func (c *Controller) Init() Theme {
	if c.initialized {
		return c.current
	}
	c.initialized = true
	c.Apply(Resolve(c.store, c.scheme))
	return c.current
}

// Apply makes t current and mirrors it onto the document.
func (c *Controller) Apply(t Theme) {
	c.current = t
	if t == Dark {
		c.doc.Add(DarkClass)
	} else {
		c.doc.Remove(DarkClass)
	}
}

// Toggle flips the theme, applies it and persists the new marker.
func (c *Controller) Toggle() Theme {
	next := c.current.Flip()
	c.Apply(next)
	if c.store != nil {
		c.store.Set(StorageKey, next.String())
	}
	return next
}

// Current returns the theme last applied.
func (c *Controller) Current() Theme {
	return c.current
}

// Document returns the presentation state the controller writes to.
func (c *Controller) Document() *Document {
	return c.doc
}
