package catalog

import (
	"github.com/ryanthedev/cycle-cli/internal/types"
)

const (
	// DefaultEdgeSlack is how far left of the primary/secondary boundary a
	// window's x may sit while still counting as on the secondary monitor.
	// Windows straddling the boundary land on the monitor they mostly occupy.
	DefaultEdgeSlack = 200
)

// Monitor describes one display in the catalog
type Monitor struct {
	Name    string  `yaml:"name" json:"name"`
	Width   float64 `yaml:"width" json:"width"`
	Height  float64 `yaml:"height" json:"height"`
	OriginX float64 `yaml:"originX" json:"originX"`
	OriginY float64 `yaml:"originY" json:"originY"`

	// Ratio sequences cycled on repeated invocations, per axis class
	Horizontal []float64 `yaml:"horizontal" json:"horizontal"`
	Vertical   []float64 `yaml:"vertical" json:"vertical"`
}

// Sequence returns the ratio sequence for an alignment on this monitor
func (m Monitor) Sequence(a types.Alignment) []float64 {
	if a.Class() == types.ClassVertical {
		return m.Vertical
	}
	return m.Horizontal
}

// Catalog holds the two-monitor geometry table and the membership rule
type Catalog struct {
	Primary   Monitor
	Secondary Monitor
	EdgeSlack float64
}

// Default returns the built-in catalog for the reference deployment.
// The secondary monitor's -133 vertical origin is a calibration constant
// for the reference display arrangement; override it in config when the
// physical arrangement differs.
func Default() *Catalog {
	return &Catalog{
		Primary: Monitor{
			Name:       "primary",
			Width:      2560,
			Height:     1440,
			OriginX:    0,
			OriginY:    0,
			Horizontal: []float64{0.5, 0.67, 0.33},
			Vertical:   []float64{0.5, 1.0},
		},
		Secondary: Monitor{
			Name:       "secondary",
			Width:      3840,
			Height:     2160,
			OriginX:    2560,
			OriginY:    -133,
			Horizontal: []float64{0.33, 0.5, 0.25},
			Vertical:   []float64{0.5, 0.33, 1.0},
		},
		EdgeSlack: DefaultEdgeSlack,
	}
}

// SelectMonitor picks the monitor owning the given x coordinate.
// The primary claims everything left of its right edge minus the slack
// zone; everything else falls through to the secondary.
func (c *Catalog) SelectMonitor(x float64) Monitor {
	if x < c.Primary.Width-c.EdgeSlack {
		return c.Primary
	}
	return c.Secondary
}

// Monitors returns the catalog entries in selection order
func (c *Catalog) Monitors() []Monitor {
	return []Monitor{c.Primary, c.Secondary}
}
