// Package flatscan implements the permissive single-level key/value scan
// used as the ingestion fallback. It is deliberately not a YAML parser: no
// nesting, no lists, no anchors, no type coercion beyond stripping one layer
// of enclosing quotes. Its output is a flat salvage, structurally weaker
// than the strict JSON path.
package flatscan

import (
	"regexp"
	"strings"
)

var linePat = regexp.MustCompile(`^(\w+):\s*(.*)$`)

// Scan extracts `key: value` pairs from text, one per line. Blank lines and
// lines whose first non-space character is '#' are skipped; lines matching
// neither pattern are ignored. Repeated keys overwrite (last wins). Returns
// nil when no line matched.
func Scan(text string) map[string]string {
	var out map[string]string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		m := linePat.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[m[1]] = unquote(strings.TrimSpace(m[2]))
	}
	return out
}

// unquote strips a single layer of matching enclosing quote characters.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
