package util

import (
	"strings"
)

// Slugify derives a URL-safe identifier from a display name: lowercase,
// runs of non-alphanumeric characters collapsed to a single hyphen,
// leading and trailing hyphens stripped. A name containing no alphanumeric
// characters yields the empty string.
func Slugify(name string) string {
	lower := strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(lower))
	lastHyphen := false
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}
