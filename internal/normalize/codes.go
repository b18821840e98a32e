package normalize

import "strings"

// NormalizeCode trims whitespace and uppercases an HCPCS code. Punctuation
// is kept, so the stored code matches what CMS published.
func NormalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
