package visnet

import (
	"github.com/matzehuels/graphview/pkg/errors"
)

// Defaults for the canvas container and page.
const (
	DefaultHeight = "900px"
	DefaultWidth  = "100%"
	DefaultTitle  = "graphview"

	// LibraryURL is the vis-network build loaded by the page.
	LibraryURL = "https://unpkg.com/vis-network@9.1.9/standalone/umd/vis-network.min.js"
)

// ConfigureFilter lists the option groups shown in the engine's
// configuration panel.
var ConfigureFilter = []string{"physics", "layout", "interaction"}

// Physics holds the barnes-hut simulation parameters.
type Physics struct {
	Gravity        float64 // Gravitational constant, negative for repulsion
	CentralGravity float64 // Pull towards the center of the view
	SpringLength   float64 // Rest length of edge springs
	SpringStrength float64 // Spring constant
	Damping        float64 // Velocity damping per step
}

// DefaultPhysics returns the fixed layout parameters.
func DefaultPhysics() Physics {
	return Physics{
		Gravity:        -20000,
		CentralGravity: 0.2,
		SpringLength:   180,
		SpringStrength: 0.02,
		Damping:        0.09,
	}
}

// Options configures the rendered page.
type Options struct {
	// Title is the document title. Defaults to [DefaultTitle].
	Title string

	// Height and Width size the canvas container as CSS lengths.
	Height string
	Width  string

	// Buttons shows the engine's configuration panel below the canvas.
	Buttons bool

	// Physics configures the layout simulation. The zero value means
	// [DefaultPhysics].
	Physics Physics
}

// DefaultOptions returns options matching the standard page: a 900px by
// 100% canvas, default physics and the configuration panel enabled.
func DefaultOptions() Options {
	return Options{
		Title:   DefaultTitle,
		Height:  DefaultHeight,
		Width:   DefaultWidth,
		Buttons: true,
		Physics: DefaultPhysics(),
	}
}

// SetDefaults fills empty fields with their default values.
func (o *Options) SetDefaults() {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Height == "" {
		o.Height = DefaultHeight
	}
	if o.Width == "" {
		o.Width = DefaultWidth
	}
	if o.Physics == (Physics{}) {
		o.Physics = DefaultPhysics()
	}
}

// Validate checks the container dimensions.
func (o Options) Validate() error {
	if err := errors.ValidateCSSLength(o.Height); err != nil {
		return err
	}
	return errors.ValidateCSSLength(o.Width)
}

// engineOptions is the options object passed to vis.Network.
type engineOptions struct {
	Physics   enginePhysics    `json:"physics"`
	Configure *engineConfigure `json:"configure,omitempty"`
}

type enginePhysics struct {
	Enabled   bool            `json:"enabled"`
	Solver    string          `json:"solver"`
	BarnesHut engineBarnesHut `json:"barnesHut"`
}

type engineBarnesHut struct {
	GravitationalConstant float64 `json:"gravitationalConstant"`
	CentralGravity        float64 `json:"centralGravity"`
	SpringLength          float64 `json:"springLength"`
	SpringConstant        float64 `json:"springConstant"`
	Damping               float64 `json:"damping"`
}

type engineConfigure struct {
	Enabled bool     `json:"enabled"`
	Filter  []string `json:"filter"`
}

func (o Options) engine() engineOptions {
	eo := engineOptions{
		Physics: enginePhysics{
			Enabled: true,
			Solver:  "barnesHut",
			BarnesHut: engineBarnesHut{
				GravitationalConstant: o.Physics.Gravity,
				CentralGravity:        o.Physics.CentralGravity,
				SpringLength:          o.Physics.SpringLength,
				SpringConstant:        o.Physics.SpringStrength,
				Damping:               o.Physics.Damping,
			},
		},
	}
	if o.Buttons {
		eo.Configure = &engineConfigure{Enabled: true, Filter: ConfigureFilter}
	}
	return eo
}
