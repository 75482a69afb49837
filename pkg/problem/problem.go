// Package problem defines the caller-supplied contract the solver is
// polymorphic over. Everything downstream of this package -- KKT
// assembly, residual evaluation, line search, the Driver -- knows only
// this interface, never the objective/constraint functions themselves.
package problem

import (
	"github.com/itohio/pdipm/pkg/mat"
	"github.com/itohio/pdipm/pkg/vec"
)

// Problem is the callback contract of the convex program
//
//	minimize     f0(x)
//	subject to   fi(x) <= 0, i = 1..m
//	             A x = b
//
// n, m, p are fixed for the lifetime of one Start call. Every method may
// return a caller-defined error; the solver propagates the first one it
// sees verbatim, without wrapping.
type Problem interface {
	// InitialPoint writes a strictly inequality-feasible x0 into x
	// (length n).
	InitialPoint(x vec.Vector) error

	// ObjectiveGrad writes grad f0(x) into g (length n).
	ObjectiveGrad(x vec.Vector, g vec.Vector) error

	// ObjectiveHess writes grad^2 f0(x) into h (n x n, symmetric PSD).
	ObjectiveHess(x vec.Vector, h *mat.Matrix) error

	// Inequality writes (f1(x), ..., fm(x)) into f (length m). Never
	// called when m == 0.
	Inequality(x vec.Vector, f vec.Vector) error

	// InequalityGrad writes the Jacobian grad f(x) into j (m x n), whose
	// i-th row is grad fi(x)^T. Never called when m == 0.
	InequalityGrad(x vec.Vector, j *mat.Matrix) error

	// InequalityHess writes grad^2 fi(x) into h (n x n) for the i-th
	// inequality constraint. Never called when m == 0.
	InequalityHess(x vec.Vector, i int, h *mat.Matrix) error

	// Equality writes the equality constraint data (p x n, length p)
	// into a and b. Called exactly once per solve. p may be 0, in which
	// case a and b have zero rows/length.
	Equality(a *mat.Matrix, b vec.Vector) error

	// Finalize is called exactly once, at the end of a solve that did
	// not abort on an Argument/Infeasible-start/Numerical-degeneracy/
	// Callback error or a KKT decomposition error, with the final iterate
	// and whether it converged.
	Finalize(x, lmd, nu vec.Vector, converged bool) error
}
