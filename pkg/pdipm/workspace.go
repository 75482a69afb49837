package pdipm

import (
	"github.com/itohio/pdipm/pkg/mat"
	"github.com/itohio/pdipm/pkg/vec"
)

// workspace holds every buffer a Start call touches, sized once from
// n/m/p and reused for the rest of that call's outer iterations:
// workspace buffers are scoped to one solve, allocated once, never
// resized mid-loop, and never shared as global state. A workspace is
// owned by one Start call and freed by the garbage collector when Start
// returns, with no risk of two concurrent solves sharing state.
type workspace struct {
	n, m, p, N int

	y          vec.Vector // [x; lmd; nu], length N
	x, lmd, nu vec.Vector // views into y

	dy vec.Vector // Newton step, length N

	rt                 vec.Vector // [r_dual; r_cent; r_pri], length N
	rDual, rCent, rPri vec.Vector // views into rt

	negRt vec.Vector // scratch: KKT rhs = -r_t, length N

	dfo vec.Vector  // grad f0(x), length n
	fi  vec.Vector  // f(x), length m
	df  *mat.Matrix // grad f(x), m x n
	a   *mat.Matrix // equality matrix, p x n (constant across the solve)
	b   vec.Vector  // equality rhs, length p (constant across the solve)

	hx      *mat.Matrix // H_x = grad2 f0(x) + sum_i lmd_i * grad2 fi(x), n x n
	tmpHess *mat.Matrix // scratch for one InequalityHess call, n x n
	kktM    *mat.Matrix // assembled KKT matrix, N x N

	yTrial   vec.Vector // scratch y' for the line search, length N
	rtTrial  vec.Vector // scratch r_t', length N
	dfoTrial vec.Vector // scratch grad f0(x'), length n
	fiTrial  vec.Vector // scratch f(x'), length m
	dfTrial  *mat.Matrix
}

func newWorkspace(n, m, p int) *workspace {
	N := n + m + p

	ws := &workspace{
		n: n, m: m, p: p, N: N,

		y:  vec.New(N),
		dy: vec.New(N),
		rt: vec.New(N),

		negRt: vec.New(N),

		dfo: vec.New(n),
		fi:  vec.New(m),
		df:  mat.New(m, n),
		a:   mat.New(p, n),
		b:   vec.New(p),

		hx:      mat.New(n, n),
		tmpHess: mat.New(n, n),
		kktM:    mat.New(N, N),

		yTrial:   vec.New(N),
		rtTrial:  vec.New(N),
		dfoTrial: vec.New(n),
		fiTrial:  vec.New(m),
		dfTrial:  mat.New(m, n),
	}

	ws.x = ws.y[0:n]
	ws.lmd = ws.y[n : n+m]
	ws.nu = ws.y[n+m : n+m+p]

	ws.rDual = ws.rt[0:n]
	ws.rCent = ws.rt[n : n+m]
	ws.rPri = ws.rt[n+m : n+m+p]

	return ws
}
