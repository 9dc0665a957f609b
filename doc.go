package dashcfg

// Package dashcfg implements a schema-driven configuration engine for
// dashboard definitions. It provides:
//
// - Two-stage ingestion: a strict JSON parse first, then a permissive flat
//   key/value salvage (Parse)
// - A stable diagnostic model via Issues (JSON Pointer path, code, severity)
// - Structural validation against the fixed dashboard schema (Validate/IsValid)
// - Lossless JSON export and a lossy YAML projection (EncodeJSON/EncodeYAML)
// - Override-wins layering of two configurations (Merge)
// - Canonical default and sample instances (DefaultConfig/SampleConfig)
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Every operation is a pure function: no I/O, no shared state, safe for
//   unsynchronized concurrent use on independent inputs.
// - Malformed input is represented as data (ok == false, a diagnostic list),
//   never as a panic.
//
// Typical usage:
//
//	v, ok := dashcfg.Parse(text)
//	if !ok {
//		// could not parse; do not proceed to validation
//	}
//	if iss := dashcfg.Validate(v); iss.HasErrors() {
//		// path-addressed diagnostics, e.g. invalid_enum at /dashboard/layout
//	}
//	cfg, err := dashcfg.Decode(v)
//	out := dashcfg.EncodeJSON(cfg, true)
