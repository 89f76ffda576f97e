// Package listtext converts between free multi-line text, one item per line,
// and ordered lists of trimmed non-empty items
package listtext

import "strings"

// FromText splits raw on line breaks, trims every line and drops the blank ones.
// Order is kept and duplicates are not removed. The result is never nil
func FromText(raw string) []string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if s := strings.TrimSpace(line); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ToText joins items with a single line break. It is the inverse of FromText
// for lists whose items are already trimmed and non-empty
func ToText(items []string) string {
	return strings.Join(items, "\n")
}
