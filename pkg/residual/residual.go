// Package residual computes the perturbed-KKT residuals and the
// surrogate duality gap.
package residual

import (
	"github.com/itohio/pdipm/pkg/mat"
	"github.com/itohio/pdipm/pkg/vec"
)

// Eval writes the three residual segments in place:
//
//	rDual = grad f0(x) + grad f(x)^T lambda + A^T nu      (length n)
//	rCent = -lambda .* f(x) - invT * 1                    (length m)
//	rPri  = A*x - b                                       (length p)
//
// rDual, rCent, rPri are expected to be sub-views of one backing r_t
// vector, the same way x, lambda, nu alias one backing y. rCent/rPri are
// left untouched when m == 0 / p == 0 respectively -- they simply have
// no segment to write.
func Eval(rDual, rCent, rPri vec.Vector, n, m, p int, dfo vec.Vector, df *mat.Matrix, lmd vec.Vector, a *mat.Matrix, nu vec.Vector, fi vec.Vector, invT float64, x vec.Vector, b vec.Vector) {
	copy(rDual, dfo)
	if m > 0 {
		df.MulVecTransposeAdd(lmd, rDual)
	}
	if p > 0 {
		a.MulVecTransposeAdd(nu, rDual)
	}

	if m > 0 {
		for i := range rCent {
			rCent[i] = -lmd[i]*fi[i] - invT
		}
	}

	if p > 0 {
		a.MulVec(x, rPri)
		for i := range rPri {
			rPri[i] -= b[i]
		}
	}
}

// Gap returns the surrogate duality gap eta = -f(x)^T lambda. When m == 0
// it returns epsScalar: for equality-only problems convergence is judged
// on rDual and rPri alone, so the centrality test is short-circuited with
// a floor value that already sits at or below the eps tolerance.
func Gap(fi vec.Vector, lmd vec.Vector, m int, epsScalar float64) float64 {
	if m == 0 {
		return epsScalar
	}
	return -fi.Dot(lmd)
}
