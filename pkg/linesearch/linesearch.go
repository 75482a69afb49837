// Package linesearch implements the two-phase backtracking line search:
// a fraction-to-boundary step on lambda (Phase A), a strict-feasibility
// backtrack (Phase B), and a residual-descent backtrack (Phase C), sharing
// one combined trial budget.
package linesearch

import (
	"math"

	"github.com/itohio/pdipm/pkg/mat"
	"github.com/itohio/pdipm/pkg/problem"
	"github.com/itohio/pdipm/pkg/vec"
)

// Params are the line-search constants.
type Params struct {
	Alpha float64 // Armijo sufficient-decrease constant, in (0, 1/2)
	Beta  float64 // contraction factor, in (0, 1)
	SCoef float64 // fraction-to-boundary safety factor, in (0, 1)
	BLoop int     // combined trial budget for phases B+C
}

// Buffers bundles the scratch storage the search reads and writes. All
// slices are pre-sized by the caller (the Driver's workspace) and reused
// across outer iterations; Search performs no allocation inside the
// backtracking loop itself.
type Buffers struct {
	N, Np, Mp, Pp int // N = n+m+p; Np/Mp/Pp are n, m, p

	Y  vec.Vector // current iterate [x; lambda; nu], length N
	Dy vec.Vector // Newton step, length N

	YTrial vec.Vector // scratch y', length N

	Rt      vec.Vector // current r_t, length N (read-only: its norm is frozen before the step)
	RtTrial vec.Vector // scratch r_t' (recomputed every Phase C trial), length N

	Dfo      vec.Vector // current grad f0(x), length n (not overwritten until accepted)
	DfoTrial vec.Vector // scratch grad f0(x'), length n

	Fi      vec.Vector // current f(x), length m
	FiTrial vec.Vector // scratch f(x'), length m

	Df      *mat.Matrix // current grad f(x), m x n
	DfTrial *mat.Matrix // scratch grad f(x'), m x n

	A *mat.Matrix // equality constraint matrix, p x n (constant)
	B vec.Vector  // equality constraint rhs, length p (constant)
}

// Result reports what the search did.
type Result struct {
	Step       float64
	Accepted   bool // true iff the iteration should commit y <- y'
	TrialsUsed int
}

// Search runs phases A, B, C. pr is the caller's Problem; buf.Np/Mp/Pp are
// n/m/p; invT is the frozen inverse barrier temperature used to rebuild
// r_cent during Phase C. When Result.Accepted is true, the caller commits
// by moving its trial buffers into its current ones (Y<-YTrial,
// Dfo<-DfoTrial, Fi<-FiTrial, Df<-DfTrial, Rt<-RtTrial) -- Search does
// not mutate the "current" buffers itself, only the "trial" ones.
func Search(pr problem.Problem, cfg Params, buf *Buffers, invT float64) (Result, error) {
	n, m, p := buf.Np, buf.Mp, buf.Pp

	lmd := buf.Y[n : n+m]
	dlmd := buf.Dy[n : n+m]

	// Phase A: fraction-to-boundary on lambda.
	sMax := 1.0
	for i := 0; i < m; i++ {
		if dlmd[i] < -minPositive {
			ratio := -lmd[i] / dlmd[i]
			if ratio < sMax {
				sMax = ratio
			}
		}
	}
	s := cfg.SCoef * sMax

	setTrial(buf, s)

	xTrial := buf.YTrial[0:n]
	lmdTrial := buf.YTrial[n : n+m]
	nuTrial := buf.YTrial[n+m : n+m+p]

	trials := 0
	feasible := false
	for ; trials < cfg.BLoop; trials++ {
		if m > 0 {
			if err := pr.Inequality(xTrial, buf.FiTrial); err != nil {
				return Result{}, err
			}
			if buf.FiTrial.Max() < 0 && lmdTrial.Min() > 0 {
				feasible = true
				break
			}
		} else {
			feasible = true
			break
		}
		s = cfg.Beta * s
		setTrial(buf, s)
	}

	rtNorm0 := buf.Rt.Norm()
	accepted := false

	if feasible {
		for ; trials < cfg.BLoop; trials++ {
			if err := pr.ObjectiveGrad(xTrial, buf.DfoTrial); err != nil {
				return Result{}, err
			}
			if m > 0 {
				if err := pr.Inequality(xTrial, buf.FiTrial); err != nil {
					return Result{}, err
				}
				if err := pr.InequalityGrad(xTrial, buf.DfTrial); err != nil {
					return Result{}, err
				}
			}

			rDualT := buf.RtTrial[0:n]
			rCentT := buf.RtTrial[n : n+m]
			rPriT := buf.RtTrial[n+m : n+m+p]

			copy(rDualT, buf.DfoTrial)
			if m > 0 {
				buf.DfTrial.MulVecTransposeAdd(lmdTrial, rDualT)
			}
			if p > 0 {
				buf.A.MulVecTransposeAdd(nuTrial, rDualT)
			}
			if m > 0 {
				for i := range rCentT {
					rCentT[i] = -lmdTrial[i]*buf.FiTrial[i] - invT
				}
			}
			if p > 0 {
				buf.A.MulVec(xTrial, rPriT)
				for i := range rPriT {
					rPriT[i] -= buf.B[i]
				}
			}

			if buf.RtTrial.Norm() <= (1-cfg.Alpha*s)*rtNorm0 {
				accepted = true
				break
			}
			s = cfg.Beta * s
			setTrial(buf, s)
		}
	}

	if !accepted {
		return Result{Step: s, Accepted: false, TrialsUsed: trials}, nil
	}

	if diffNorm(buf.YTrial, buf.Y) < epsScalar {
		return Result{Step: s, Accepted: false, TrialsUsed: trials}, nil
	}

	return Result{Step: s, Accepted: true, TrialsUsed: trials}, nil
}

// setTrial computes y' = y + s*dy into buf.YTrial.
func setTrial(buf *Buffers, s float64) {
	copy(buf.YTrial, buf.Y)
	buf.YTrial.AXPY(s, buf.Dy)
}

func diffNorm(a, b vec.Vector) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// minPositive is the smallest positive normal float64 magnitude, used
// only to avoid division by zero in the fraction-to-boundary rule. This
// is a numerical constant of the floating-point type, not a tunable
// parameter, so it stays unexported rather than living on Params.
const minPositive = 2.2250738585072014e-308

// epsScalar is sqrt(machine epsilon) for float64, used as the step
// acceptance threshold on ||y' - y||.
const epsScalar = 1.4901161193847656e-08
