package parsers

import (
	"regexp"
	"strings"
)

var (
	// Entries are separated by newlines, commas or semicolons.
	entrySeparators = regexp.MustCompile(`[\n\r,;]+`)

	// Joiner words users paste between identifiers ("1//DP1 and 2//DP2").
	joiners = regexp.MustCompile(`(?i)\s+(and|&)\s+`)

	nonPlanChars = regexp.MustCompile(`[^A-Z0-9]`)
	nonLotChars  = regexp.MustCompile(`[^A-Z0-9-]`)
)

// SplitEntries splits raw bulk input into trimmed, non-empty entries.
// Order is preserved; downstream result ordering follows entry order.
// Joiner words are treated as separators, a tolerance extension over the
// documented comma/newline set.
func SplitEntries(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	cleaned := joiners.ReplaceAllString(raw, ";")

	var entries []string
	for _, piece := range entrySeparators.Split(cleaned, -1) {
		entry := strings.TrimSpace(piece)
		if entry == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// NormalizePlan uppercases a plan label and strips everything that is not
// alphanumeric, so "dp 1242624" becomes "DP1242624".
func NormalizePlan(plan string) string {
	p := strings.ToUpper(strings.TrimSpace(plan))
	return nonPlanChars.ReplaceAllString(p, "")
}

// NormalizeLot uppercases a lot token, keeping alphanumerics and dashes
// (dashes carry range syntax, letters carry lots like "7A").
func NormalizeLot(lot string) string {
	l := strings.ToUpper(strings.TrimSpace(lot))
	return nonLotChars.ReplaceAllString(l, "")
}
