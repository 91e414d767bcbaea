package slugify

import (
	"strings"

	"github.com/gosimple/slug"
)

// Make turns a free-text title into a URL-safe identifier: lowercase,
// non-alphanumeric runs collapsed to single dashes, no leading or trailing
// dash. Applying it twice gives the same result.
func Make(title string) string {
	s := slug.Make(title)
	return strings.Trim(s, "-")
}
