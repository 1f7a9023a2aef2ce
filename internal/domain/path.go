package domain

import (
	"errors"
	"regexp"
	"strings"
)

// Path validation errors
var (
	ErrPathEmpty        = errors.New("path must not be empty")
	ErrPathNotAbsolute  = errors.New("path must start with a slash")
	ErrPathHasHost      = errors.New("path must not name a host")
	ErrPathHasQuery     = errors.New("path must not contain a query or fragment")
	ErrPathInvalidChars = errors.New("path contains invalid characters")
	ErrPathEmptySegment = errors.New("path cannot contain empty segments")
	ErrPathDotSegment   = errors.New("path cannot contain dot segments")
)

// AdminRoot is the prefix every admin page lives under.
const AdminRoot = "/admin"

// pathRegex matches the unreserved URL characters plus slash and
// percent-escapes.
var pathRegex = regexp.MustCompile(`^/[A-Za-z0-9\-._~%/]*$`)

// ValidatePath checks that p is a well-formed application-internal path:
// - Starts with a single slash (no scheme, no host)
// - No query string or fragment
// - Only unreserved characters, slashes and percent-escapes
// - No empty segments except a trailing slash
// - No "." or ".." segments
func ValidatePath(p string) error {
	if p == "" {
		return ErrPathEmpty
	}
	if p[0] != '/' {
		return ErrPathNotAbsolute
	}
	if strings.HasPrefix(p, "//") {
		return ErrPathHasHost
	}
	if strings.ContainsAny(p, "?#") {
		return ErrPathHasQuery
	}
	if !pathRegex.MatchString(p) {
		return ErrPathInvalidChars
	}

	segments := strings.Split(strings.TrimSuffix(p[1:], "/"), "/")
	if len(segments) == 1 && segments[0] == "" {
		// Root path
		return nil
	}
	for _, seg := range segments {
		switch seg {
		case "":
			return ErrPathEmptySegment
		case ".", "..":
			return ErrPathDotSegment
		}
	}

	return nil
}

// IsAdminPath reports whether p is a valid path inside the admin area.
func IsAdminPath(p string) bool {
	if ValidatePath(p) != nil {
		return false
	}
	return p == AdminRoot || strings.HasPrefix(p, AdminRoot+"/")
}

// SafeReturnPath returns p when it is a valid admin path and fallback
// otherwise. Used for redirects driven by form input.
func SafeReturnPath(p, fallback string) string {
	if IsAdminPath(p) {
		return p
	}
	return fallback
}
