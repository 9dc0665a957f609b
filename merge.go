package dashcfg

// Merge layers a partial override onto a base configuration and returns a
// fresh Config; neither input is mutated and the result shares no mutable
// state with either.
//
// Semantics, field by field:
//   - Dashboard scalars (title, layout, theme, columns): override wins for
//     every field it supplies; unsupplied (zero-value) fields keep base's.
//   - Components: whole-sequence replacement whenever override supplies the
//     sequence, even empty. A nil slice means "not supplied".
//   - DataSources: whole-sequence replacement only when override's sequence
//     is non-empty; an explicitly empty override keeps base's. This
//     asymmetry with components is a preserved behavior, not an accident.
//   - Settings: shallow key-wise merge; override's set fields win.
//
// Single-level, two-way, override-wins: no recursive deep merge, no
// conflict reporting.
func Merge(base, override *Config) *Config {
	out := &Config{}
	if base != nil {
		out = cloneConfig(base)
	}
	if override == nil {
		return out
	}

	if override.Dashboard.Title != "" {
		out.Dashboard.Title = override.Dashboard.Title
	}
	if override.Dashboard.Layout != "" {
		out.Dashboard.Layout = override.Dashboard.Layout
	}
	if override.Dashboard.Theme != "" {
		out.Dashboard.Theme = override.Dashboard.Theme
	}
	if override.Dashboard.Columns != 0 {
		out.Dashboard.Columns = override.Dashboard.Columns
	}
	if override.Dashboard.Components != nil {
		out.Dashboard.Components = cloneComponents(override.Dashboard.Components)
	}
	if len(override.DataSources) > 0 {
		out.DataSources = cloneDataSources(override.DataSources)
	}
	if override.Settings != nil {
		if out.Settings == nil {
			out.Settings = &Settings{}
		}
		mergeSettings(out.Settings, override.Settings)
	}
	return out
}

func mergeSettings(dst, src *Settings) {
	if src.AutoRefresh != nil {
		dst.AutoRefresh = ptr(*src.AutoRefresh)
	}
	if src.RefreshInterval != nil {
		dst.RefreshInterval = ptr(*src.RefreshInterval)
	}
	if src.ShowHeader != nil {
		dst.ShowHeader = ptr(*src.ShowHeader)
	}
	if src.CompactMode != nil {
		dst.CompactMode = ptr(*src.CompactMode)
	}
}

// ---- deep copy helpers ----

func cloneConfig(c *Config) *Config {
	out := &Config{Dashboard: c.Dashboard}
	out.Dashboard.Components = cloneComponents(c.Dashboard.Components)
	out.DataSources = cloneDataSources(c.DataSources)
	if c.Settings != nil {
		s := &Settings{}
		mergeSettings(s, c.Settings)
		out.Settings = s
	}
	return out
}

func cloneComponents(src []Component) []Component {
	if src == nil {
		return nil
	}
	out := make([]Component, len(src))
	for i, c := range src {
		out[i] = c
		if c.Config != nil {
			m := make(map[string]any, len(c.Config))
			for k, v := range c.Config {
				m[k] = cloneValue(v)
			}
			out[i].Config = m
		}
	}
	return out
}

func cloneDataSources(src []DataSource) []DataSource {
	if src == nil {
		return nil
	}
	out := make([]DataSource, len(src))
	for i, ds := range src {
		out[i] = ds
		if ds.Headers != nil {
			h := make(map[string]string, len(ds.Headers))
			for k, v := range ds.Headers {
				h[k] = v
			}
			out[i].Headers = h
		}
	}
	return out
}

// cloneValue deep-copies the dynamic values an opaque component config may
// hold (string/number/bool/nil/nested map/sequence).
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = cloneValue(e)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = cloneValue(e)
		}
		return s
	default:
		return v
	}
}
