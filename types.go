package dashcfg

// Config is the root of a dashboard configuration. Values are owned by
// whoever built or decoded them; Merge and the canonical constructors hand
// out independent copies, never shared state.
type Config struct {
	Dashboard   Dashboard    `json:"dashboard"`
	DataSources []DataSource `json:"dataSources,omitempty"`
	Settings    *Settings    `json:"settings,omitempty"`
}

// Dashboard is the top-level visual layout definition. Components is an
// ordered sequence; order is display order and is preserved everywhere.
type Dashboard struct {
	Title      string      `json:"title"`
	Layout     LayoutKind  `json:"layout,omitempty"`
	Theme      ThemeKind   `json:"theme,omitempty"`
	Columns    int         `json:"columns,omitempty"`
	Components []Component `json:"components"`
}

// Component is one renderable widget placed within a dashboard. Config is
// intentionally opaque: its shape depends on Type and is not schema-checked
// here. DataSource is a logical foreign key into DataSource.ID; existence is
// not validated (a dangling reference surfaces only as a warning).
type Component struct {
	ID         string         `json:"id,omitempty"`
	Type       ComponentKind  `json:"type"`
	Title      string         `json:"title,omitempty"`
	DataSource string         `json:"dataSource,omitempty"`
	Config     map[string]any `json:"config"`
	GridColumn string         `json:"gridColumn,omitempty"`
	GridRow    string         `json:"gridRow,omitempty"`
	Width      string         `json:"width,omitempty"`
	Height     string         `json:"height,omitempty"`
}

// DataSource is a named external feed a component may bind to.
// RefreshInterval is in milliseconds.
type DataSource struct {
	ID              string            `json:"id"`
	Name            string            `json:"name,omitempty"`
	Type            DataSourceKind    `json:"type"`
	URL             string            `json:"url,omitempty"`
	Query           string            `json:"query,omitempty"`
	Transform       string            `json:"transform,omitempty"`
	RefreshInterval float64           `json:"refreshInterval,omitempty"`
	Headers         map[string]string `json:"headers,omitempty"`
}

// Settings controls refresh behavior and layout chrome. Every field is
// optional; pointers keep "unset" distinguishable from a zero value so the
// shallow merge can honor key presence.
type Settings struct {
	AutoRefresh     *bool    `json:"autoRefresh,omitempty"`
	RefreshInterval *float64 `json:"refreshInterval,omitempty"`
	ShowHeader      *bool    `json:"showHeader,omitempty"`
	CompactMode     *bool    `json:"compactMode,omitempty"`
}

func ptr[T any](v T) *T { return &v }
