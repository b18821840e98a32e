package normalize

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s+`)

// DisplayName joins first and last name with a single space, collapsing
// inner whitespace. Either part may be empty.
func DisplayName(first, last string) string {
	s := strings.TrimSpace(first + " " + last)
	return multiSpace.ReplaceAllString(s, " ")
}
