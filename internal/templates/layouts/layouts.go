// Package layouts contains full-page wrappers.
package layouts

import "github.com/aisb-selection/aisb/internal/theme"

// rootClass is the class list of the <html> element, "" for a nil doc.
func rootClass(doc *theme.Document) string {
	if doc == nil {
		return ""
	}
	return doc.ClassAttr()
}
