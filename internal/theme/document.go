package theme

import "strings"

// Document is the document-level presentation state: the ordered set of
// classes on the root element.
type Document struct {
	classes []string
}

// NewDocument returns a document carrying the given root classes.
func NewDocument(classes ...string) *Document {
	d := &Document{}
	for _, c := range classes {
		d.Add(c)
	}
	return d
}

// Add appends class unless it is already present.
func (d *Document) Add(class string) {
	if class == "" || d.Has(class) {
		return
	}
	d.classes = append(d.classes, class)
}

// Remove drops class if present.
func (d *Document) Remove(class string) {
	for i, c := range d.classes {
		if c == class {
			d.classes = append(d.classes[:i], d.classes[i+1:]...)
			return
		}
	}
}

// Has reports whether class is present.
func (d *Document) Has(class string) bool {
	for _, c := range d.classes {
		if c == class {
			return true
		}
	}
	return false
}

// Classes returns a copy of the root classes in insertion order.
func (d *Document) Classes() []string {
	return append([]string(nil), d.classes...)
}

// ClassAttr renders the classes as an HTML class attribute value.
func (d *Document) ClassAttr() string {
	return strings.Join(d.classes, " ")
}
