package slug

import (
	"errors"
	"regexp"
	"strings"
)

// LegacyPrefix marks slugs produced by a deprecated content-generation
// phase. Slugs carrying it are invalid and are targets for bulk removal.
const LegacyPrefix = "about-"

var (
	// ErrDuplicateSlug signals a uniqueness collision within the caller's
	// scope. Resolution (reject, or ask for a distinguishing title) is the
	// caller's decision; the normalizer never suffixes.
	ErrDuplicateSlug = errors.New("duplicate slug")

	// ErrEmptySlug signals that the input reduced to nothing.
	ErrEmptySlug = errors.New("slug is empty")

	validPattern   = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	invalidChars   = regexp.MustCompile(`[^a-z0-9]+`)
	hyphenCollapse = regexp.MustCompile(`-{2,}`)
)

// Make maps arbitrary human text to a canonical URL-safe token: lowercase,
// only [a-z0-9-], no repeated hyphens, no leading or trailing hyphen.
func Make(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = invalidChars.ReplaceAllString(s, "-")
	s = hyphenCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Unique normalizes raw and checks the result against the caller's scope
// snapshot. taken reports whether a candidate slug already exists in that
// scope. On collision the caller gets ErrDuplicateSlug, never a suffixed
// variant.
func Unique(raw string, taken func(string) bool) (string, error) {
	s := Make(raw)
	if s == "" {
		return "", ErrEmptySlug
	}
	if taken != nil && taken(s) {
		return "", ErrDuplicateSlug
	}
	return s, nil
}

// IsValid reports whether s already is a canonical slug.
func IsValid(s string) bool {
	return validPattern.MatchString(s)
}

// IsLegacy reports whether s belongs to the deprecated legacy class.
func IsLegacy(s string) bool {
	return strings.HasPrefix(s, LegacyPrefix)
}
