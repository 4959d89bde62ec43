package pair

import "github.com/cwbudde/algo-splitwave/wave/window"

// Geometry identifies the coordinate convention of the two components.
type Geometry int

const (
	// GeomGeographic treats x and y as north and east components.
	GeomGeographic Geometry = iota

	// GeomRay treats x and y as SV and SH components in the ray frame.
	GeomRay
)

// Location is source or receiver position metadata, carried through every
// operation unchanged.
type Location struct {
	Latitude  float64
	Longitude float64
	Depth     float64
}

// Option configures pair construction.
type Option func(*config)

type config struct {
	delta  float64
	units  string
	angle  float64
	geom   Geometry
	window *window.Window
	srcLoc *Location
	rcvLoc *Location

	// synthesis parameters, used by NewSynthetic only
	pol    float64
	fast   float64
	lag    float64
	noise  float64
	nsamps int
	width  float64
	seed   int64
}

func defaultConfig() config {
	return config{
		delta:  1,
		units:  "s",
		geom:   GeomGeographic,
		noise:  0.03,
		nsamps: 501,
		width:  16,
		seed:   1,
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

func (c config) newPair() *Pair {
	return &Pair{
		delta:  c.delta,
		angle:  c.angle,
		units:  c.units,
		geom:   c.geom,
		window: c.window,
		srcLoc: c.srcLoc,
		rcvLoc: c.rcvLoc,
	}
}

// WithDelta sets the sample interval in seconds.
func WithDelta(delta float64) Option {
	return func(c *config) {
		c.delta = delta
	}
}

// WithUnits sets the time axis label.
func WithUnits(units string) Option {
	return func(c *config) {
		c.units = units
	}
}

// WithAngle sets the initial orientation of the x axis in degrees.
func WithAngle(degrees float64) Option {
	return func(c *config) {
		c.angle = degrees
	}
}

// WithGeometry sets the coordinate convention of the two components.
func WithGeometry(g Geometry) Option {
	return func(c *config) {
		c.geom = g
	}
}

// WithWindow attaches a pre-selected window to the pair.
func WithWindow(w window.Window) Option {
	return func(c *config) {
		c.window = &w
	}
}

// WithSourceLocation attaches source location metadata.
func WithSourceLocation(loc Location) Option {
	return func(c *config) {
		c.srcLoc = &loc
	}
}

// WithReceiverLocation attaches receiver location metadata.
func WithReceiverLocation(loc Location) Option {
	return func(c *config) {
		c.rcvLoc = &loc
	}
}

// WithPolarization sets the synthetic source polarization in degrees.
func WithPolarization(degrees float64) Option {
	return func(c *config) {
		c.pol = degrees
	}
}

// WithFast sets the synthetic fast-axis direction in degrees.
func WithFast(degrees float64) Option {
	return func(c *config) {
		c.fast = degrees
	}
}

// WithLag sets the synthetic splitting delay in seconds.
func WithLag(tlag float64) Option {
	return func(c *config) {
		c.lag = tlag
	}
}

// WithNoise sets the synthetic noise standard deviation.
func WithNoise(scale float64) Option {
	return func(c *config) {
		c.noise = scale
	}
}

// WithNSamps sets the synthetic pre-splitting trace length. Must be odd.
func WithNSamps(n int) Option {
	return func(c *config) {
		c.nsamps = n
	}
}

// WithWidth sets the synthetic source pulse width in samples.
func WithWidth(width float64) Option {
	return func(c *config) {
		c.width = width
	}
}

// WithSeed sets the synthetic noise seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}
