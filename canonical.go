package dashcfg

// DefaultConfig returns the canonical minimal configuration: a grid
// dashboard titled "My Dashboard" with a single stat component. The result
// is a fresh copy on every call and always passes validation.
func DefaultConfig() *Config {
	return &Config{
		Dashboard: Dashboard{
			Title:  "My Dashboard",
			Layout: LayoutGrid,
			Components: []Component{
				{
					Type:   KindStat,
					Title:  "Total Users",
					Config: map[string]any{"value": float64(0)},
				},
			},
		},
	}
}

// SampleConfig returns the canonical multi-component demo configuration:
// three stats, a line chart and a pie chart over two REST data sources. The
// result is a fresh copy on every call and always passes validation.
func SampleConfig() *Config {
	return &Config{
		Dashboard: Dashboard{
			Title:   "Sample Dashboard",
			Layout:  LayoutGrid,
			Theme:   ThemeLight,
			Columns: 12,
			Components: []Component{
				{
					ID:         "total-users",
					Type:       KindStat,
					Title:      "Total Users",
					DataSource: "metrics-api",
					Config:     map[string]any{"field": "users", "format": "number"},
				},
				{
					ID:         "revenue",
					Type:       KindStat,
					Title:      "Revenue",
					DataSource: "metrics-api",
					Config:     map[string]any{"field": "revenue", "format": "currency"},
				},
				{
					ID:         "active-sessions",
					Type:       KindStat,
					Title:      "Active Sessions",
					DataSource: "metrics-api",
					Config:     map[string]any{"field": "sessions", "format": "number"},
				},
				{
					ID:         "traffic",
					Type:       KindLineChart,
					Title:      "Traffic Over Time",
					DataSource: "traffic-api",
					Config:     map[string]any{"xField": "timestamp", "yField": "requests", "smooth": true},
					GridColumn: "span 2",
				},
				{
					ID:         "browsers",
					Type:       KindPieChart,
					Title:      "Browser Share",
					DataSource: "traffic-api",
					Config:     map[string]any{"labelField": "browser", "valueField": "share"},
				},
			},
		},
		DataSources: []DataSource{
			{
				ID:              "metrics-api",
				Name:            "Metrics API",
				Type:            SourceREST,
				URL:             "https://api.example.com/metrics",
				RefreshInterval: 30000,
				Headers:         map[string]string{"Accept": "application/json"},
			},
			{
				ID:              "traffic-api",
				Name:            "Traffic API",
				Type:            SourceREST,
				URL:             "https://api.example.com/traffic",
				RefreshInterval: 60000,
			},
		},
		Settings: &Settings{
			AutoRefresh:     ptr(true),
			RefreshInterval: ptr(float64(30000)),
			ShowHeader:      ptr(true),
		},
	}
}
