package pdipm

import (
	"math"

	"github.com/itohio/pdipm/pkg/decomp"
	"github.com/itohio/pdipm/pkg/logging"
	"github.com/rs/zerolog"
)

// epsScalar is sqrt(machine epsilon) for float64.
var epsScalar = math.Sqrt(2.220446049250313e-16)

// Config holds the solver parameters. All fields are fixed for the
// lifetime of a Start call.
type Config struct {
	Margin  float64 // initial value for each lambda_i
	Loop    int     // maximum outer iterations
	BLoop   int     // combined budget for line-search phases B+C
	EpsFeas float64 // residual-norm tolerance for r_dual and r_pri
	Eps     float64 // tolerance for surrogate gap eta
	Mu      float64 // centering parameter
	Alpha   float64 // Armijo sufficient-decrease constant, in (0, 1/2)
	Beta    float64 // line-search contraction factor, in (0, 1)
	SCoef   float64 // fraction-to-boundary safety factor, in (0, 1)

	Decomp decomp.Solver  // KKT decomposition strategy
	Logger zerolog.Logger // diagnostic sink; defaults to a no-op logger
}

// DefaultConfig returns the solver's recommended defaults.
func DefaultConfig() Config {
	return Config{
		Margin:  1.0,
		Loop:    256,
		BLoop:   256,
		EpsFeas: epsScalar,
		Eps:     epsScalar,
		Mu:      10,
		Alpha:   0.1,
		Beta:    0.8,
		SCoef:   0.99,
		Decomp:  decomp.NewSVD(),
		Logger:  logging.Nop(),
	}
}

// Option mutates a Config, in the functional-options style, typed to
// this module's one configuration struct.
type Option func(*Config)

func WithMargin(v float64) Option  { return func(c *Config) { c.Margin = v } }
func WithLoop(n int) Option        { return func(c *Config) { c.Loop = n } }
func WithBLoop(n int) Option       { return func(c *Config) { c.BLoop = n } }
func WithEpsFeas(v float64) Option { return func(c *Config) { c.EpsFeas = v } }
func WithEps(v float64) Option     { return func(c *Config) { c.Eps = v } }
func WithMu(v float64) Option      { return func(c *Config) { c.Mu = v } }
func WithAlpha(v float64) Option   { return func(c *Config) { c.Alpha = v } }
func WithBeta(v float64) Option    { return func(c *Config) { c.Beta = v } }
func WithSCoef(v float64) Option   { return func(c *Config) { c.SCoef = v } }

// WithDecomp selects the KKT decomposition strategy: the choice between
// an SVD-like rank-revealing solver and a faster but fragile LU path is
// a runtime-selected strategy, not a compile-time one.
func WithDecomp(d decomp.Solver) Option { return func(c *Config) { c.Decomp = d } }

// WithLogger injects a diagnostic sink.
func WithLogger(l zerolog.Logger) Option { return func(c *Config) { c.Logger = l } }

// ApplyOptions applies opts to cfg in order.
func ApplyOptions(cfg *Config, opts ...Option) {
	for _, opt := range opts {
		opt(cfg)
	}
}
