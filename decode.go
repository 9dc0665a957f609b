package dashcfg

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Decode converts an untyped tree (typically the strict-parse output of
// Parse) into the typed model. It is not a validation gate: enum fields keep
// whatever string the tree carried, and callers who want diagnostics run
// Validate first. It fails only when the tree cannot be shaped into the
// model at all, e.g. a component config that is not an object.
func Decode(v any) (*Config, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("dashcfg: encode intermediate: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("dashcfg: decode config: %w", err)
	}
	return &cfg, nil
}
