// Package format renders feature annotations for popup text.
package format

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// AttributeFormatter renders key/value annotations as HTML lines.
type AttributeFormatter struct{}

// Format renders attrs in key order, one "<br><b>key</b>: value" line per
// entry. Values longer than maxWidth runes are cut and suffixed with "...".
// A maxWidth <= 0 disables truncation.
func (AttributeFormatter) Format(attrs map[string]string, maxWidth int) string {
	if len(attrs) == 0 {
		return ""
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString("<br><b>")
		b.WriteString(k)
		b.WriteString("</b>: ")
		b.WriteString(Truncate(attrs[k], maxWidth))
	}
	return b.String()
}

// Truncate cuts s to maxWidth runes, marking the cut with "...".
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 || utf8.RuneCountInString(s) <= maxWidth {
		return s
	}
	r := []rune(s)
	return string(r[:maxWidth]) + "..."
}
