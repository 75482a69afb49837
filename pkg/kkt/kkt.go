// Package kkt builds the (n+m+p)^2 block KKT matrix from the current
// iterate's already-evaluated pieces (H_x, grad f, f(x), lambda, A). It
// has no knowledge of the Problem callbacks: the Driver evaluates those
// and assembles H_x = grad2(f0) + sum lambda_i * grad2(fi) before calling
// Assemble.
package kkt

import (
	"github.com/itohio/pdipm/pkg/mat"
	"github.com/itohio/pdipm/pkg/vec"
)

// Assemble zeroes k and writes its six named blocks:
//
//	[ H_x              grad(f)^T        A^T ]
//	[ -diag(lmd)*df     -diag(f)         0  ]
//	[ A                 0                0  ]
//
// k must be N x N with N = n+m+p. hx is n x n. When m > 0, df is m x n
// and fi has length m. When p > 0, a is p x n. Blocks for m == 0 or
// p == 0 are simply never written, leaving them zero.
func Assemble(k *mat.Matrix, n, m, p int, hx *mat.Matrix, lmd vec.Vector, df *mat.Matrix, fi vec.Vector, a *mat.Matrix) {
	k.Zero()
	k.SetBlock(0, 0, hx)

	if m > 0 {
		k.SetBlockTranspose(0, n, df)
		k.SetBlockRowScaled(n, 0, df, negate(lmd))
		negFi := negate(fi)
		k.SetBlockDiag(n, n, negFi)
	}

	if p > 0 {
		k.SetBlockTranspose(0, n+m, a)
		k.SetBlock(n+m, 0, a)
	}
}

// negate returns a freshly allocated negated copy of v. KKT assembly
// happens once per outer iteration, not inside the line search's
// backtracking loop, so this allocation is harmless there.
func negate(v vec.Vector) vec.Vector {
	out := make(vec.Vector, len(v))
	for i, x := range v {
		out[i] = -x
	}
	return out
}
