package arcgis

import "strings"

// NoMatchClause matches nothing. Used by Validate as a cheap reachability
// probe that returns an empty feature set.
const NoMatchClause = "1=2"

// EscapeValue doubles single quotes for safe embedding in a WHERE literal.
func EscapeValue(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// InClauses builds case-insensitive `UPPER(field) IN (...)` clauses,
// chunked to stay under ArcGIS URL length limits.
func InClauses(field string, values []string, chunkSize int) []string {
	if len(values) == 0 {
		return nil
	}

	clauses := make([]string, 0, (len(values)+chunkSize-1)/chunkSize)
	for _, group := range chunk(values, chunkSize) {
		quoted := make([]string, len(group))
		for i, v := range group {
			quoted[i] = "'" + EscapeValue(strings.ToUpper(v)) + "'"
		}
		clauses = append(clauses, "UPPER("+field+") IN ("+strings.Join(quoted, ", ")+")")
	}
	return clauses
}

// OrClauses joins prebuilt terms with OR, chunked.
func OrClauses(terms []string, chunkSize int) []string {
	if len(terms) == 0 {
		return nil
	}

	clauses := make([]string, 0, (len(terms)+chunkSize-1)/chunkSize)
	for _, group := range chunk(terms, chunkSize) {
		clauses = append(clauses, strings.Join(group, " OR "))
	}
	return clauses
}

// DedupeOrdered removes duplicates while preserving first-seen order.
func DedupeOrdered(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func chunk(values []string, n int) [][]string {
	if n <= 0 {
		return [][]string{values}
	}

	var groups [][]string
	for start := 0; start < len(values); start += n {
		end := start + n
		if end > len(values) {
			end = len(values)
		}
		groups = append(groups, values[start:end])
	}
	return groups
}
