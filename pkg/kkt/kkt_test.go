package kkt

import (
	"testing"

	"github.com/itohio/pdipm/pkg/mat"
	"github.com/itohio/pdipm/pkg/vec"
	"github.com/stretchr/testify/assert"
)

func TestAssemble_FullBlocks(t *testing.T) {
	n, m, p := 2, 1, 1
	N := n + m + p
	k := mat.New(N, N)

	hx := mat.New(n, n)
	hx.Set(0, 0, 1)
	hx.Set(1, 1, 1)

	df := mat.New(m, n) // 1x2
	df.Set(0, 0, 1)
	df.Set(0, 1, 2)

	fi := vec.Vector{-3}
	lmd := vec.Vector{4}

	a := mat.New(p, n) // 1x2
	a.Set(0, 0, 1)
	a.Set(0, 1, 1)

	Assemble(k, n, m, p, hx, lmd, df, fi, a)

	// H_x block
	assert.Equal(t, 1.0, k.At(0, 0))
	assert.Equal(t, 1.0, k.At(1, 1))
	assert.Equal(t, 0.0, k.At(0, 1))

	// grad(f)^T block at (0, n)
	assert.Equal(t, 1.0, k.At(0, 2))
	assert.Equal(t, 2.0, k.At(1, 2))

	// -diag(lambda)*df block at (n, 0): -4 * [1, 2] = [-4, -8]
	assert.Equal(t, -4.0, k.At(2, 0))
	assert.Equal(t, -8.0, k.At(2, 1))

	// -diag(f) block at (n, n): -(-3) = 3
	assert.Equal(t, 3.0, k.At(2, 2))

	// A^T block at (0, n+m)
	assert.Equal(t, 1.0, k.At(0, 3))
	assert.Equal(t, 1.0, k.At(1, 3))

	// A block at (n+m, 0)
	assert.Equal(t, 1.0, k.At(3, 0))
	assert.Equal(t, 1.0, k.At(3, 1))

	// bottom-right p x p block stays zero
	assert.Equal(t, 0.0, k.At(3, 3))
}

func TestAssemble_NoInequalities(t *testing.T) {
	n, m, p := 2, 0, 1
	N := n + m + p
	k := mat.New(N, N)

	hx := mat.New(n, n)
	hx.Set(0, 0, 5)
	hx.Set(1, 1, 6)

	a := mat.New(p, n)
	a.Set(0, 0, 1)
	a.Set(0, 1, -1)

	Assemble(k, n, m, p, hx, nil, nil, nil, a)

	assert.Equal(t, 5.0, k.At(0, 0))
	assert.Equal(t, 6.0, k.At(1, 1))
	assert.Equal(t, 1.0, k.At(0, 2))
	assert.Equal(t, 1.0, k.At(2, 0))
}

func TestAssemble_NoEqualities(t *testing.T) {
	n, m, p := 1, 1, 0
	N := n + m + p
	k := mat.New(N, N)

	hx := mat.New(n, n)
	hx.Set(0, 0, 2)

	df := mat.New(m, n)
	df.Set(0, 0, 3)
	fi := vec.Vector{-1}
	lmd := vec.Vector{2}

	Assemble(k, n, m, p, hx, lmd, df, fi, nil)

	assert.Equal(t, 2.0, k.At(0, 0))
	assert.Equal(t, 3.0, k.At(0, 1))
	assert.Equal(t, -6.0, k.At(1, 0))
	assert.Equal(t, 1.0, k.At(1, 1))
}

func TestAssemble_RewritesEveryIteration(t *testing.T) {
	n, m, p := 1, 0, 0
	k := mat.New(1, 1)
	hx := mat.New(1, 1)
	hx.Set(0, 0, 9)
	Assemble(k, n, m, p, hx, nil, nil, nil, nil)
	assert.Equal(t, 9.0, k.At(0, 0))

	hx.Set(0, 0, -2)
	Assemble(k, n, m, p, hx, nil, nil, nil, nil)
	assert.Equal(t, -2.0, k.At(0, 0))
}
