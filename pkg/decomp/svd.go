package decomp

import (
	"errors"

	"github.com/itohio/pdipm/pkg/mat"
	"github.com/itohio/pdipm/pkg/vec"
	gmat "gonum.org/v1/gonum/mat"
)

// ErrSVDFailed is returned when gonum's SVD factorization itself fails to
// converge (distinct from rank deficiency, which SVD tolerates by
// construction).
var ErrSVDFailed = errors.New("decomp: svd factorization did not converge")

// SVD is the safe, rank-revealing default decomposition. It solves
// KKT*dy = rhs via the Moore-Penrose pseudoinverse
// dy = V * Sigma+ * U^T * rhs, flooring any singular value below
// RelTol * sigma_max to zero -- a singular or near-singular KKT matrix
// yields a least-norm solution instead of an error.
type SVD struct {
	// RelTol is the relative singular-value floor: singular values
	// below RelTol*sigma_max are treated as zero. Zero selects a
	// dimension-scaled default.
	RelTol float64

	// LastRank is set by the most recent Solve call, for diagnostics.
	LastRank int
}

// NewSVD returns an SVD decomposition with the default tolerance.
func NewSVD() *SVD {
	return &SVD{}
}

func (s *SVD) Name() string { return "svd" }

// Rank reports the rank found by the most recent Solve call, for
// diagnostics.
func (s *SVD) Rank() int { return s.LastRank }

func (s *SVD) Solve(kkt *mat.Matrix, rhs vec.Vector, dy vec.Vector) error {
	n := kkt.Rows()
	a := gmat.NewDense(n, n, append([]float64(nil), kkt.RawData()...))

	var svd gmat.SVD
	if ok := svd.Factorize(a, gmat.SVDThin); !ok {
		return ErrSVDFailed
	}

	values := svd.Values(nil)
	var u, v gmat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	tol := s.tolerance(values)
	rank := 0

	b := gmat.NewVecDense(n, append([]float64(nil), rhs...))
	var utb gmat.VecDense
	utb.MulVec(u.T(), b)
	for i := 0; i < len(values); i++ {
		if values[i] > tol {
			utb.SetVec(i, utb.AtVec(i)/values[i])
			rank++
		} else {
			utb.SetVec(i, 0)
		}
	}
	s.LastRank = rank

	var x gmat.VecDense
	x.MulVec(&v, &utb)
	for i := 0; i < n; i++ {
		dy[i] = x.AtVec(i)
	}
	return nil
}

func (s *SVD) tolerance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	relTol := s.RelTol
	if relTol <= 0 {
		relTol = defaultRelTol * float64(len(values))
	}
	return values[0] * relTol
}

// defaultRelTol mirrors the conventional rank-revealing threshold used by
// numerical libraries (relative machine epsilon scaled by matrix size).
const defaultRelTol = 2.220446049250313e-16
