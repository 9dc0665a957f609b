package dashcfg

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Validate walks an untyped tree against the fixed dashboard schema and
// returns path-addressed diagnostics in a fixed emission order. It never
// panics; an empty result is the sole success signal. Typed *Config values
// are accepted too and are normalized into the tree form first.
//
// The walk short-circuits twice: a non-object root yields exactly one issue
// at "/" and nothing else, and a missing or malformed dashboard yields
// exactly one issue at "/dashboard" and nothing deeper. Every later rule
// presumes those structural checks passed.
//
// Blocking issues carry Error severity. The soft checks (unknown theme,
// duplicate ids, dangling dataSource references) carry Warn severity and
// never affect IsValid.
func Validate(v any) Issues {
	root, ok := normalize(v).(map[string]any)
	if !ok {
		return Issues{{Path: "/", Code: CodeInvalidType, Message: "configuration must be a non-null object"}}
	}

	rawDash, ok := root["dashboard"]
	if !ok {
		return Issues{{Path: "/dashboard", Code: CodeRequired, Message: "dashboard is required"}}
	}
	dash, ok := rawDash.(map[string]any)
	if !ok {
		return Issues{{Path: "/dashboard", Code: CodeInvalidType, Message: "dashboard must be an object"}}
	}

	var iss Issues

	if raw, ok := dash["title"]; !ok {
		iss = append(iss, Issue{Path: "/dashboard/title", Code: CodeRequired, Message: "title is required"})
	} else if _, ok := raw.(string); !ok {
		iss = append(iss, Issue{Path: "/dashboard/title", Code: CodeInvalidType, Message: "title must be a string"})
	}

	if raw, ok := dash["layout"]; ok {
		if s, isStr := raw.(string); !isStr || !LayoutKind(s).Valid() {
			iss = append(iss, Issue{
				Path:    "/dashboard/layout",
				Code:    CodeInvalidEnum,
				Message: fmt.Sprintf("layout must be one of: %s", kindList(LayoutKinds)),
			})
		}
	}

	if raw, ok := dash["theme"]; ok {
		if s, isStr := raw.(string); !isStr || !ThemeKind(s).Valid() {
			iss = append(iss, Issue{
				Path:     "/dashboard/theme",
				Code:     CodeInvalidEnum,
				Severity: Warn,
				Message:  fmt.Sprintf("unknown theme %s", quoteVal(raw)),
			})
		}
	}

	// Declared data source ids, used only for the reference soft check.
	// refsKnown stays false unless dataSources is a well-formed sequence.
	knownIDs, refsKnown := declaredSourceIDs(root)

	if rawComps, ok := dash["components"]; !ok {
		iss = append(iss, Issue{Path: "/dashboard/components", Code: CodeRequired, Message: "components is required"})
	} else if list, isList := rawComps.([]any); !isList {
		iss = append(iss, Issue{Path: "/dashboard/components", Code: CodeInvalidType, Message: "components must be an array"})
	} else {
		seen := map[string]bool{}
		for i, el := range list {
			base := fmt.Sprintf("/dashboard/components/%d", i)
			comp, _ := el.(map[string]any)
			if raw, ok := comp["type"]; !ok {
				iss = append(iss, Issue{Path: base + "/type", Code: CodeRequired, Message: "type is required"})
			} else if s, isStr := raw.(string); !isStr || !ComponentKind(s).Valid() {
				iss = append(iss, Issue{
					Path:    base + "/type",
					Code:    CodeInvalidEnum,
					Message: fmt.Sprintf("unknown component type %s", quoteVal(raw)),
				})
			}
			if id, ok := comp["id"].(string); ok && id != "" {
				if seen[id] {
					iss = append(iss, Issue{
						Path:     base + "/id",
						Code:     CodeDuplicateID,
						Severity: Warn,
						Message:  fmt.Sprintf("duplicate component id %q", id),
					})
				}
				seen[id] = true
			}
			if ref, ok := comp["dataSource"].(string); ok && ref != "" && refsKnown && !knownIDs[ref] {
				iss = append(iss, Issue{
					Path:     base + "/dataSource",
					Code:     CodeUnknownReference,
					Severity: Warn,
					Message:  fmt.Sprintf("dataSource %q does not match any declared data source id", ref),
				})
			}
		}
	}

	if raw, ok := root["dataSources"]; ok {
		if list, isList := raw.([]any); !isList {
			iss = append(iss, Issue{Path: "/dataSources", Code: CodeInvalidType, Message: "dataSources must be an array"})
		} else {
			seen := map[string]bool{}
			for i, el := range list {
				base := fmt.Sprintf("/dataSources/%d", i)
				ds, _ := el.(map[string]any)
				if raw, ok := ds["type"]; !ok {
					iss = append(iss, Issue{Path: base + "/type", Code: CodeRequired, Message: "type is required"})
				} else if s, isStr := raw.(string); !isStr || !DataSourceKind(s).Valid() {
					iss = append(iss, Issue{
						Path:    base + "/type",
						Code:    CodeInvalidEnum,
						Message: fmt.Sprintf("unknown data source type %s", quoteVal(raw)),
					})
				}
				if id, ok := ds["id"].(string); ok && id != "" {
					if seen[id] {
						iss = append(iss, Issue{
							Path:     base + "/id",
							Code:     CodeDuplicateID,
							Severity: Warn,
							Message:  fmt.Sprintf("duplicate data source id %q", id),
						})
					}
					seen[id] = true
				}
			}
		}
	}

	return iss
}

// IsValid reports whether v carries no blocking diagnostics. Warn-severity
// issues do not count.
func IsValid(v any) bool { return !Validate(v).HasErrors() }

// normalize converts typed model values into the untyped tree form the walk
// expects; everything else passes through untouched.
func normalize(v any) any {
	switch v.(type) {
	case *Config, Config:
		data, err := json.Marshal(v)
		if err != nil {
			return v
		}
		var tree any
		if err := json.Unmarshal(data, &tree); err != nil {
			return v
		}
		return tree
	}
	return v
}

// declaredSourceIDs collects DataSource ids when dataSources is a
// well-formed sequence. ok is false otherwise, which disables the
// dangling-reference soft check.
func declaredSourceIDs(root map[string]any) (map[string]bool, bool) {
	raw, ok := root["dataSources"]
	if !ok {
		return nil, false
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	ids := make(map[string]bool, len(list))
	for _, el := range list {
		ds, _ := el.(map[string]any)
		if id, ok := ds["id"].(string); ok && id != "" {
			ids[id] = true
		}
	}
	return ids, true
}

// quoteVal renders an offending value for a diagnostic message: strings are
// quoted, everything else formats as-is.
func quoteVal(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}
