// Package waypoint holds the caller-side marker model: which markers take part
// in a tour, and the comma-separated custom route text format.
//
// Nothing here depends on the annealer; waypoints are reduced to orb.Point
// before being handed to tsp.Solve.
package waypoint

import (
	"slices"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"
)

// Marker is a named map location.
type Marker struct {
	Name     string  `yaml:"name"`
	Category string  `yaml:"category"`
	Subdata  string  `yaml:"subdata,omitempty"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`

	// Visible defaults to true when decoded from YAML.
	Visible   bool `yaml:"visible"`
	Collected bool `yaml:"collected,omitempty"`
	Amount    int  `yaml:"amount,omitempty"`
	Tool      int  `yaml:"tool,omitempty"`

	// Day is the cycle day the marker appears on. The same Name may exist
	// once per day.
	Day int `yaml:"day,omitempty"`
}

// UnmarshalYAML decodes a marker, treating an absent "visible" key as true.
func (m *Marker) UnmarshalYAML(value *yaml.Node) error {
	type plain Marker
	p := plain{Visible: true}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*m = Marker(p)

	return nil
}

// Point returns the marker's location.
func (m Marker) Point() orb.Point {
	return orb.Point{m.X, m.Y}
}

// Cycle maps a category to its active day. Categories without an entry are
// not restricted by day.
type Cycle map[string]int

// Matches reports whether m is on the active day of its category.
func (c Cycle) Matches(m Marker) bool {
	day, ok := c[m.Category]
	return !ok || m.Day == day
}

// Filter decides which markers a tour visits.
//
// The Categories and Names lists restrict only when non-empty: an empty
// Categories enables every category rather than none, so a config without a
// filter section visits all visible markers.
type Filter struct {
	// Categories lists the enabled categories; empty enables all.
	Categories []string `yaml:"categories,omitempty"`
	// Names, when non-empty, limits the tour to markers with these names
	// (a search result, for example).
	Names []string `yaml:"names,omitempty"`
	// Cycle selects the active day per category.
	Cycle Cycle `yaml:"cycle,omitempty"`
	// Disabled lists subdata values excluded regardless of category.
	Disabled []string `yaml:"disabled,omitempty"`

	// InventoryEnabled skips markers whose Amount reached StackSize.
	InventoryEnabled bool `yaml:"inventory_enabled,omitempty"`
	StackSize        int  `yaml:"stack_size,omitempty"`

	// MaxTool is the best tool available; markers needing more are skipped.
	MaxTool int `yaml:"max_tool,omitempty"`
}

// Eligible reports whether m passes every filter condition.
func (f Filter) Eligible(m Marker) bool {
	if !m.Visible || m.Collected {
		return false
	}
	if f.InventoryEnabled && m.Amount >= f.StackSize {
		return false
	}
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, m.Category) {
		return false
	}
	if len(f.Names) > 0 && !slices.Contains(f.Names, m.Name) {
		return false
	}
	if !f.Cycle.Matches(m) {
		return false
	}
	if m.Subdata != "" && slices.Contains(f.Disabled, m.Subdata) {
		return false
	}

	return m.Tool <= f.MaxTool
}

// Apply returns the eligible markers in input order.
func (f Filter) Apply(markers []Marker) []Marker {
	out := make([]Marker, 0, len(markers))
	for _, m := range markers {
		if f.Eligible(m) {
			out = append(out, m)
		}
	}

	return out
}

// Points maps markers to their locations, index for index.
func Points(markers []Marker) []orb.Point {
	pts := make([]orb.Point, len(markers))
	for i, m := range markers {
		pts[i] = m.Point()
	}

	return pts
}

// Names returns the marker names, index for index.
func Names(markers []Marker) []string {
	names := make([]string, len(markers))
	for i, m := range markers {
		names[i] = m.Name
	}

	return names
}

// Ordered returns markers permuted by order.
func Ordered(markers []Marker, order []int) []Marker {
	out := make([]Marker, len(order))
	for k, idx := range order {
		out[k] = markers[idx]
	}

	return out
}
