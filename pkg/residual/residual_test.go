package residual

import (
	"testing"

	"github.com/itohio/pdipm/pkg/mat"
	"github.com/itohio/pdipm/pkg/vec"
	"github.com/stretchr/testify/assert"
)

func TestEval_AllBlocks(t *testing.T) {
	n, m, p := 2, 1, 1
	rDual := vec.New(n)
	rCent := vec.New(m)
	rPri := vec.New(p)

	dfo := vec.Vector{1, 1}
	df := mat.New(m, n)
	df.Set(0, 0, 1)
	df.Set(0, 1, 0)
	lmd := vec.Vector{2}

	a := mat.New(p, n)
	a.Set(0, 0, 1)
	a.Set(0, 1, 1)
	nu := vec.Vector{3}

	fi := vec.Vector{-0.5}
	x := vec.Vector{1, 1}
	b := vec.Vector{1.5}

	Eval(rDual, rCent, rPri, n, m, p, dfo, df, lmd, a, nu, fi, 0.1, x, b)

	// r_dual = dfo + df^T*lmd + A^T*nu
	//        = [1,1] + [2,0] + [3,3] = [6,4]
	assert.InDeltaSlice(t, []float64{6, 4}, []float64(rDual), 1e-12)

	// r_cent = -lmd*fi - invT = -2*(-0.5) - 0.1 = 0.9
	assert.InDelta(t, 0.9, rCent[0], 1e-12)

	// r_pri = A*x - b = 2 - 1.5 = 0.5
	assert.InDelta(t, 0.5, rPri[0], 1e-12)
}

func TestEval_NoInequalitiesOrEqualities(t *testing.T) {
	n := 2
	rDual := vec.New(n)
	dfo := vec.Vector{5, -5}

	Eval(rDual, nil, nil, n, 0, 0, dfo, nil, nil, nil, nil, nil, 0, nil, nil)
	assert.Equal(t, vec.Vector{5, -5}, rDual)
}

func TestGap_InequalityPresent(t *testing.T) {
	fi := vec.Vector{-1, -2}
	lmd := vec.Vector{3, 4}
	// eta = -f.lmd = -(-1*3 + -2*4) = 11
	assert.Equal(t, 11.0, Gap(fi, lmd, 2, 1e-8))
}

func TestGap_NoInequalitiesFloorsAtEps(t *testing.T) {
	assert.Equal(t, 1e-8, Gap(nil, nil, 0, 1e-8))
}
