// Command pdipmdemo solves the small standard-form linear program used
// in pkg/pdipm's solver tests:
//
//	minimize    x1 + 2*x2
//	subject to  x1 + x2 = 1
//	            x1 >= 0, x2 >= 0
//
// and prints the converged iterate, duals and iteration trace.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/itohio/pdipm/pkg/mat"
	"github.com/itohio/pdipm/pkg/pdipm"
	"github.com/itohio/pdipm/pkg/vec"
	"github.com/rs/zerolog"
)

var (
	verbose = flag.Bool("v", false, "Log every outer iteration to stderr")
	loop    = flag.Int("loop", 256, "Maximum outer iterations")
)

type lp struct{}

func (lp) InitialPoint(x vec.Vector) error { x[0], x[1] = 0.5, 0.5; return nil }
func (lp) ObjectiveGrad(x, g vec.Vector) error {
	g[0], g[1] = 1, 2
	return nil
}
func (lp) ObjectiveHess(x vec.Vector, h *mat.Matrix) error { h.Zero(); return nil }
func (lp) Inequality(x, f vec.Vector) error {
	f[0], f[1] = -x[0], -x[1]
	return nil
}
func (lp) InequalityGrad(x vec.Vector, j *mat.Matrix) error {
	j.Zero()
	j.Set(0, 0, -1)
	j.Set(1, 1, -1)
	return nil
}
func (lp) InequalityHess(x vec.Vector, i int, h *mat.Matrix) error { h.Zero(); return nil }
func (lp) Equality(a *mat.Matrix, b vec.Vector) error {
	a.Set(0, 0, 1)
	a.Set(0, 1, 1)
	b[0] = 1
	return nil
}
func (lp) Finalize(x, lmd, nu vec.Vector, converged bool) error {
	fmt.Printf("converged=%v x=%v lmd=%v nu=%v\n", converged, []float64(x), []float64(lmd), []float64(nu))
	return nil
}

func main() {
	flag.Parse()

	logger := zerolog.Nop()
	if *verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	}

	s := pdipm.New(pdipm.WithLogger(logger), pdipm.WithLoop(*loop))
	if err := s.Start(lp{}, 2, 2, 1); err != nil {
		fmt.Fprintf(os.Stderr, "solve failed: %v\n", err)
		os.Exit(1)
	}
}
