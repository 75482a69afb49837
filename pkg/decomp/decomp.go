// Package decomp implements the pluggable KKT-system decomposition
// strategy. The KKT matrix is square, indefinite, and may be
// rank-deficient at degenerate iterates; this package wires
// gonum.org/v1/gonum/mat rather than hand-deriving SVD/LU from scratch,
// since gonum is the idiomatic float64 dense linear algebra library for
// this kind of solve.
package decomp

import (
	"errors"

	"github.com/itohio/pdipm/pkg/mat"
	"github.com/itohio/pdipm/pkg/vec"
)

// ErrFactorizeFailed is returned when the underlying decomposition could
// not be computed at all (as opposed to being merely rank-deficient,
// which the Solver must tolerate rather than fail on).
var ErrFactorizeFailed = errors.New("decomp: factorization failed")

// Solver solves KKT * dy = rhs for dy, given the current KKT matrix.
// Implementations must tolerate an indefinite, rank-deficient KKT matrix:
// the default strategy (SVD) must never fail merely because the system
// is singular.
type Solver interface {
	// Solve writes the solution of kkt*dy = rhs into dy. kkt is N x N;
	// rhs and dy are length N. dy must not alias rhs.
	Solve(kkt *mat.Matrix, rhs vec.Vector, dy vec.Vector) error
	// Name identifies the strategy for logging/diagnostics.
	Name() string
}
