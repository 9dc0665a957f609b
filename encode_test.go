package dashcfg_test

import (
	"reflect"
	"strings"
	"testing"

	dashcfg "github.com/reoring/dashcfg"
)

func roundTrip(t *testing.T, cfg *dashcfg.Config, pretty bool) *dashcfg.Config {
	t.Helper()
	text := dashcfg.EncodeJSON(cfg, pretty)
	if text == "" {
		t.Fatalf("EncodeJSON returned empty output")
	}
	v, ok := dashcfg.Parse(text)
	if !ok {
		t.Fatalf("strict parse of encoded output failed:\n%s", text)
	}
	got, err := dashcfg.Decode(v)
	if err != nil {
		t.Fatalf("decode after round trip: %v", err)
	}
	return got
}

func TestEncodeJSON_RoundTrip(t *testing.T) {
	for _, cfg := range []*dashcfg.Config{dashcfg.DefaultConfig(), dashcfg.SampleConfig()} {
		got := roundTrip(t, cfg, false)
		if !reflect.DeepEqual(got, cfg) {
			t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", got, cfg)
		}
	}
}

func TestEncodeJSON_PrettyControlsIndentationOnly(t *testing.T) {
	cfg := dashcfg.SampleConfig()
	compact := roundTrip(t, cfg, false)
	pretty := roundTrip(t, cfg, true)
	if !reflect.DeepEqual(compact, pretty) {
		t.Fatalf("pretty output changed content")
	}
	if !strings.Contains(dashcfg.EncodeJSON(cfg, true), "\n") {
		t.Fatalf("pretty output should be indented")
	}
}

func TestEncodeYAML_ProjectionSubset(t *testing.T) {
	out := dashcfg.EncodeYAML(dashcfg.SampleConfig())
	for _, want := range []string{
		"title: Sample Dashboard",
		"layout: grid",
		"theme: light",
		"type: line-chart",
		"dataSource: traffic-api",
		"id: metrics-api",
		"url: https://api.example.com/metrics",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("projection missing %q:\n%s", want, out)
		}
	}
	// Everything outside the enumerated subset is silently dropped.
	for _, dropped := range []string{"settings", "columns", "headers", "refreshInterval", "config", "gridColumn"} {
		if strings.Contains(out, dropped) {
			t.Fatalf("projection leaked %q:\n%s", dropped, out)
		}
	}
}

func TestEncodeYAML_DoesNotRoundTrip(t *testing.T) {
	out := dashcfg.EncodeYAML(dashcfg.SampleConfig())
	// The permissive path salvages flat lines from the YAML text, but the
	// result is not schema-shaped; this asymmetry is part of the contract.
	v, ok := dashcfg.Parse(out)
	if !ok {
		t.Fatalf("expected a flat salvage from the YAML text")
	}
	if dashcfg.IsValid(v) {
		t.Fatalf("YAML projection must not reconstruct a valid config: %#v", v)
	}
}
