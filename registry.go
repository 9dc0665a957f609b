package dashcfg

import (
	"slices"
	"strings"
)

// The fixed dashboard schema: every closed enumeration lives here as pure
// data. Unknown values are rejected at the validation boundary, never at
// construction.

// LayoutKind selects the dashboard layout mode.
type LayoutKind string

const (
	LayoutGrid  LayoutKind = "grid"
	LayoutFlex  LayoutKind = "flex"
	LayoutStack LayoutKind = "stack"
)

// LayoutKinds is the closed member list, in canonical order.
var LayoutKinds = []LayoutKind{LayoutGrid, LayoutFlex, LayoutStack}

func (k LayoutKind) Valid() bool { return slices.Contains(LayoutKinds, k) }

// ThemeKind selects the dashboard color theme.
type ThemeKind string

const (
	ThemeLight ThemeKind = "light"
	ThemeDark  ThemeKind = "dark"
)

var ThemeKinds = []ThemeKind{ThemeLight, ThemeDark}

func (k ThemeKind) Valid() bool { return slices.Contains(ThemeKinds, k) }

// ComponentKind names one renderable widget kind.
type ComponentKind string

const (
	KindLineChart    ComponentKind = "line-chart"
	KindBarChart     ComponentKind = "bar-chart"
	KindPieChart     ComponentKind = "pie-chart"
	KindAreaChart    ComponentKind = "area-chart"
	KindScatterChart ComponentKind = "scatter-chart"
	KindHeatmap      ComponentKind = "heatmap"
	KindGauge        ComponentKind = "gauge"
	KindStat         ComponentKind = "stat"
	KindTable        ComponentKind = "table"
	KindText         ComponentKind = "text"
	KindMarkdown     ComponentKind = "markdown"
	KindImage        ComponentKind = "image"
	KindIframe       ComponentKind = "iframe"
)

var ComponentKinds = []ComponentKind{
	KindLineChart, KindBarChart, KindPieChart, KindAreaChart, KindScatterChart,
	KindHeatmap, KindGauge, KindStat, KindTable, KindText, KindMarkdown,
	KindImage, KindIframe,
}

func (k ComponentKind) Valid() bool { return slices.Contains(ComponentKinds, k) }

// DataSourceKind names one external feed kind.
type DataSourceKind string

const (
	SourceREST      DataSourceKind = "rest"
	SourceGraphQL   DataSourceKind = "graphql"
	SourceMock      DataSourceKind = "mock"
	SourceWebSocket DataSourceKind = "websocket"
)

var DataSourceKinds = []DataSourceKind{SourceREST, SourceGraphQL, SourceMock, SourceWebSocket}

func (k DataSourceKind) Valid() bool { return slices.Contains(DataSourceKinds, k) }

// kindList renders a closed member list for diagnostic messages,
// comma-joined in canonical order.
func kindList[K ~string](kinds []K) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}
