package decomp

import (
	"errors"

	"github.com/itohio/pdipm/pkg/mat"
	"github.com/itohio/pdipm/pkg/vec"
	gmat "gonum.org/v1/gonum/mat"
)

// ErrIllConditioned is returned when the LU path's condition-number
// guard trips -- the fast path refuses to silently return garbage on a
// near-singular KKT matrix, unlike SVD which degrades gracefully.
var ErrIllConditioned = errors.New("decomp: kkt matrix too ill-conditioned for LU")

// maxCondition bounds how ill-conditioned a KKT matrix LU is willing to
// accept before returning ErrIllConditioned. The Driver does not retry
// with SVD: pdipm.Solver.Start returns that error as is.
const maxCondition = 1e12

// LU is the fast-but-fragile decomposition: a partial-pivoted LU
// factorization, a poor match for a rank-deficient or strongly indefinite
// KKT matrix, but considerably cheaper than SVD on well-conditioned
// iterates.
type LU struct{}

// NewLU returns an LU decomposition.
func NewLU() *LU {
	return &LU{}
}

func (l *LU) Name() string { return "lu" }

func (l *LU) Solve(kkt *mat.Matrix, rhs vec.Vector, dy vec.Vector) error {
	n := kkt.Rows()
	a := gmat.NewDense(n, n, append([]float64(nil), kkt.RawData()...))

	var lu gmat.LU
	lu.Factorize(a)
	if lu.Cond() > maxCondition {
		return ErrIllConditioned
	}

	b := gmat.NewVecDense(n, append([]float64(nil), rhs...))
	var x gmat.VecDense
	if err := lu.SolveVecTo(&x, false, b); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		dy[i] = x.AtVec(i)
	}
	return nil
}
