package dashcfg_test

import (
	"reflect"
	"strings"
	"testing"

	dashcfg "github.com/reoring/dashcfg"
)

func errorsOnly(iss dashcfg.Issues) dashcfg.Issues {
	var out dashcfg.Issues
	for _, it := range iss {
		if it.Severity == dashcfg.Error {
			out = append(out, it)
		}
	}
	return out
}

func TestValidate_RootMustBeObject(t *testing.T) {
	for _, v := range []any{nil, "text", float64(42), []any{map[string]any{"dashboard": 1}}} {
		iss := dashcfg.Validate(v)
		if len(iss) != 1 {
			t.Fatalf("Validate(%#v): want exactly one issue, got %v", v, iss)
		}
		if iss[0].Path != "/" || iss[0].Code != dashcfg.CodeInvalidType {
			t.Fatalf("unexpected root issue: %+v", iss[0])
		}
	}
}

func TestValidate_DashboardShortCircuit(t *testing.T) {
	// Missing dashboard: exactly one issue at /dashboard, nothing deeper,
	// regardless of other malformations alongside it.
	iss := dashcfg.Validate(map[string]any{"dataSources": "bogus"})
	if len(iss) != 1 || iss[0].Path != "/dashboard" || iss[0].Code != dashcfg.CodeRequired {
		t.Fatalf("unexpected issues for missing dashboard: %v", iss)
	}

	iss = dashcfg.Validate(map[string]any{"dashboard": []any{}})
	if len(iss) != 1 || iss[0].Path != "/dashboard" || iss[0].Code != dashcfg.CodeInvalidType {
		t.Fatalf("unexpected issues for non-object dashboard: %v", iss)
	}
}

func TestValidate_TitleChecks(t *testing.T) {
	iss := dashcfg.Validate(map[string]any{"dashboard": map[string]any{
		"components": []any{},
	}})
	if got := findPath(iss, "/dashboard/title"); got == nil || got.Code != dashcfg.CodeRequired {
		t.Fatalf("expected required title issue, got %v", iss)
	}

	iss = dashcfg.Validate(map[string]any{"dashboard": map[string]any{
		"title":      float64(7),
		"components": []any{},
	}})
	got := findPath(iss, "/dashboard/title")
	if got == nil || got.Code != dashcfg.CodeInvalidType || !strings.Contains(got.Message, "must be a string") {
		t.Fatalf("expected title type issue, got %v", iss)
	}
}

func TestValidate_LayoutEnumListsAllowedSet(t *testing.T) {
	iss := dashcfg.Validate(map[string]any{"dashboard": map[string]any{
		"title":      "x",
		"layout":     "diagonal",
		"components": []any{},
	}})
	got := findPath(iss, "/dashboard/layout")
	if got == nil || got.Code != dashcfg.CodeInvalidEnum {
		t.Fatalf("expected layout enum issue, got %v", iss)
	}
	if !strings.Contains(got.Message, "grid, flex, stack") {
		t.Fatalf("allowed set missing from message: %q", got.Message)
	}
	// Absence of layout is not an error.
	if iss := dashcfg.Validate(map[string]any{"dashboard": map[string]any{"title": "x", "components": []any{}}}); len(iss) != 0 {
		t.Fatalf("minimal valid config should produce no issues, got %v", iss)
	}
}

func TestValidate_ComponentsChecks(t *testing.T) {
	iss := dashcfg.Validate(map[string]any{"dashboard": map[string]any{"title": "x"}})
	if got := findPath(iss, "/dashboard/components"); got == nil || got.Code != dashcfg.CodeRequired {
		t.Fatalf("expected required components issue, got %v", iss)
	}

	iss = dashcfg.Validate(map[string]any{"dashboard": map[string]any{"title": "x", "components": "nope"}})
	if got := findPath(iss, "/dashboard/components"); got == nil || got.Code != dashcfg.CodeInvalidType {
		t.Fatalf("expected components type issue, got %v", iss)
	}
}

func TestValidate_ComponentKind(t *testing.T) {
	iss := dashcfg.Validate(map[string]any{"dashboard": map[string]any{
		"title": "x",
		"components": []any{
			map[string]any{"type": "bogus-chart", "config": map[string]any{}},
		},
	}})
	if len(iss) != 1 {
		t.Fatalf("want exactly one issue, got %v", iss)
	}
	got := iss[0]
	if got.Path != "/dashboard/components/0/type" || got.Code != dashcfg.CodeInvalidEnum {
		t.Fatalf("unexpected issue: %+v", got)
	}
	if !strings.Contains(got.Message, `"bogus-chart"`) {
		t.Fatalf("offending value missing from message: %q", got.Message)
	}

	iss = dashcfg.Validate(map[string]any{"dashboard": map[string]any{
		"title": "x",
		"components": []any{
			map[string]any{"type": "table", "config": map[string]any{}},
			map[string]any{"config": map[string]any{}},
		},
	}})
	if len(iss) != 1 || iss[0].Path != "/dashboard/components/1/type" || iss[0].Code != dashcfg.CodeRequired {
		t.Fatalf("want a single required issue for the second component, got %v", iss)
	}
}

func TestValidate_DataSourcesChecks(t *testing.T) {
	iss := dashcfg.Validate(map[string]any{
		"dashboard":   map[string]any{"title": "x", "components": []any{}},
		"dataSources": map[string]any{},
	})
	if got := findPath(iss, "/dataSources"); got == nil || got.Code != dashcfg.CodeInvalidType {
		t.Fatalf("expected dataSources type issue, got %v", iss)
	}

	iss = dashcfg.Validate(map[string]any{
		"dashboard": map[string]any{"title": "x", "components": []any{}},
		"dataSources": []any{
			map[string]any{"id": "a", "type": "rest"},
			map[string]any{"id": "b"},
			map[string]any{"id": "c", "type": "carrier-pigeon"},
		},
	})
	if got := findPath(iss, "/dataSources/1/type"); got == nil || got.Code != dashcfg.CodeRequired {
		t.Fatalf("expected required type issue at index 1, got %v", iss)
	}
	got := findPath(iss, "/dataSources/2/type")
	if got == nil || got.Code != dashcfg.CodeInvalidEnum || !strings.Contains(got.Message, `"carrier-pigeon"`) {
		t.Fatalf("expected enum issue at index 2, got %v", iss)
	}
}

func TestValidate_EmissionOrderIsFixed(t *testing.T) {
	v := map[string]any{
		"dashboard": map[string]any{
			"title":  float64(1),
			"layout": "diagonal",
			"components": []any{
				map[string]any{"type": "bogus", "config": map[string]any{}},
			},
		},
		"dataSources": []any{map[string]any{"id": "a"}},
	}
	iss := errorsOnly(dashcfg.Validate(v))
	wantPaths := []string{
		"/dashboard/title",
		"/dashboard/layout",
		"/dashboard/components/0/type",
		"/dataSources/0/type",
	}
	if len(iss) != len(wantPaths) {
		t.Fatalf("want %d issues, got %v", len(wantPaths), iss)
	}
	for i, p := range wantPaths {
		if iss[i].Path != p {
			t.Fatalf("issue %d: want path %s, got %s", i, p, iss[i].Path)
		}
	}
}

func TestValidate_Idempotent(t *testing.T) {
	v := map[string]any{
		"dashboard": map[string]any{
			"layout":     "swirl",
			"components": []any{map[string]any{"config": map[string]any{}}},
		},
	}
	first := dashcfg.Validate(v)
	second := dashcfg.Validate(v)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("validation is not idempotent:\n first %v\nsecond %v", first, second)
	}
}

func TestValidate_WarningsDoNotBlock(t *testing.T) {
	v := map[string]any{
		"dashboard": map[string]any{
			"title": "x",
			"theme": "neon",
			"components": []any{
				map[string]any{"id": "w", "type": "stat", "config": map[string]any{}},
				map[string]any{"id": "w", "type": "stat", "config": map[string]any{}},
				map[string]any{"type": "table", "dataSource": "missing", "config": map[string]any{}},
			},
		},
		"dataSources": []any{
			map[string]any{"id": "a", "type": "rest"},
			map[string]any{"id": "a", "type": "mock"},
		},
	}
	iss := dashcfg.Validate(v)
	if iss.HasErrors() {
		t.Fatalf("soft checks must not produce blocking issues: %v", iss)
	}
	if !dashcfg.IsValid(v) {
		t.Fatalf("IsValid must ignore warnings")
	}
	for _, path := range []string{
		"/dashboard/theme",
		"/dashboard/components/1/id",
		"/dashboard/components/2/dataSource",
		"/dataSources/1/id",
	} {
		got := findPath(iss, path)
		if got == nil || got.Severity != dashcfg.Warn {
			t.Fatalf("expected warning at %s, got %v", path, iss)
		}
	}
}

func TestIsValid_CanonicalConfigs(t *testing.T) {
	if !dashcfg.IsValid(dashcfg.DefaultConfig()) {
		t.Fatalf("default config must validate: %v", dashcfg.Validate(dashcfg.DefaultConfig()))
	}
	if !dashcfg.IsValid(dashcfg.SampleConfig()) {
		t.Fatalf("sample config must validate: %v", dashcfg.Validate(dashcfg.SampleConfig()))
	}
}

func findPath(iss dashcfg.Issues, path string) *dashcfg.Issue {
	for i := range iss {
		if iss[i].Path == path {
			return &iss[i]
		}
	}
	return nil
}
