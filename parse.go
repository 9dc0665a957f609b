package dashcfg

import (
	json "github.com/goccy/go-json"

	"github.com/reoring/dashcfg/internal/flatscan"
)

// Parse ingests raw configuration text into an untyped tree. It tries a
// strict JSON parse first; that is the only path that round-trips nesting,
// arrays, numbers and booleans faithfully. On failure it falls back to the
// permissive flat key/value scan, whose output is a flat string-valued
// mapping: a best-effort salvage that is not schema-shaped and is expected
// to fail structural validation on any realistic document.
//
// ok is false when neither format yields structure. Parse never panics; all
// failure folds into the return value.
func Parse(text string) (any, bool) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err == nil {
		if v != nil {
			return v, true
		}
		// A bare JSON null carries no structure; fall through to the scan.
	}
	flat := flatscan.Scan(text)
	if len(flat) == 0 {
		return nil, false
	}
	out := make(map[string]any, len(flat))
	for k, val := range flat {
		out[k] = val
	}
	return out, true
}
