// Package slug derives the normalized identifiers used for invoice
// filenames and invoice-number strings.
package slug

import (
	"fmt"
	"strings"
)

// Make returns the slug form of a name: lower-cased, whitespace runs
// collapsed, joined with hyphens. Stable for names that differ only in
// case or spacing.
func Make(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// Prefix derives the default invoice-number prefix from a slug: its
// first three runes, upper-cased.
func Prefix(s string) string {
	runes := []rune(s)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return strings.ToUpper(string(runes))
}

// FormatNumber returns an invoice-number string like "ACM_4".
func FormatNumber(prefix string, n uint64) string {
	return fmt.Sprintf("%s_%d", prefix, n)
}
