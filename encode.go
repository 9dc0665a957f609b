package dashcfg

import (
	json "github.com/goccy/go-json"
	yaml "gopkg.in/yaml.v3"
)

// EncodeJSON serializes the entire typed model losslessly. pretty controls
// indentation only, never content: Decode(Parse(EncodeJSON(x, p))) equals x
// for any well-typed x and either p. It returns "" only for values outside
// the model's JSON-safe domain (garbage in, garbage out — this is not a
// validation gate).
func EncodeJSON(cfg *Config, pretty bool) string {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(cfg, "", "  ")
	} else {
		data, err = json.Marshal(cfg)
	}
	if err != nil {
		return ""
	}
	return string(data)
}

// The YAML export is a lossy projection, not a second durable format. It
// covers exactly: dashboard title/layout/theme, each component's
// type/title/dataSource, and each data source's id/type/url. Settings,
// columns, component config maps, headers, refresh intervals and
// query/transform are dropped. It is not expected to round-trip through
// Parse: the permissive path cannot reconstruct nesting, and that asymmetry
// is part of the contract.

type yamlConfig struct {
	Dashboard   yamlDashboard    `yaml:"dashboard"`
	DataSources []yamlDataSource `yaml:"dataSources,omitempty"`
}

type yamlDashboard struct {
	Title      string          `yaml:"title"`
	Layout     string          `yaml:"layout,omitempty"`
	Theme      string          `yaml:"theme,omitempty"`
	Components []yamlComponent `yaml:"components"`
}

type yamlComponent struct {
	Type       string `yaml:"type"`
	Title      string `yaml:"title,omitempty"`
	DataSource string `yaml:"dataSource,omitempty"`
}

type yamlDataSource struct {
	ID   string `yaml:"id"`
	Type string `yaml:"type"`
	URL  string `yaml:"url,omitempty"`
}

// EncodeYAML renders the lossy display/export projection of cfg.
func EncodeYAML(cfg *Config) string {
	doc := yamlConfig{
		Dashboard: yamlDashboard{
			Title:  cfg.Dashboard.Title,
			Layout: string(cfg.Dashboard.Layout),
			Theme:  string(cfg.Dashboard.Theme),
		},
	}
	for _, c := range cfg.Dashboard.Components {
		doc.Dashboard.Components = append(doc.Dashboard.Components, yamlComponent{
			Type:       string(c.Type),
			Title:      c.Title,
			DataSource: c.DataSource,
		})
	}
	for _, ds := range cfg.DataSources {
		doc.DataSources = append(doc.DataSources, yamlDataSource{
			ID:   ds.ID,
			Type: string(ds.Type),
			URL:  ds.URL,
		})
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return ""
	}
	return string(data)
}
