package helper

import "strings"

// List-valued text fields (highlight words, points) round-trip between a
// stored list and delimited text. Parsing trims every element and drops
// empties, so parsing already-parsed-then-serialized text is a no-op.

// ParseCommaList: "education, health , ,environment" → [education health environment]
func ParseCommaList(raw string) []string {
	return splitClean(raw, ",")
}

// ParseLines: one item per line.
func ParseLines(raw string) []string {
	return splitClean(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
}

func JoinCommaList(items []string) string {
	return strings.Join(items, ", ")
}

func JoinLines(items []string) string {
	return strings.Join(items, "\n")
}

func splitClean(raw, sep string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, sep) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
