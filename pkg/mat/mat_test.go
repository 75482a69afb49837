package mat

import (
	"testing"

	"github.com/itohio/pdipm/pkg/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix_SetBlockAndZero(t *testing.T) {
	m := New(4, 4)
	block := New(2, 2)
	block.Set(0, 0, 1)
	block.Set(0, 1, 2)
	block.Set(1, 0, 3)
	block.Set(1, 1, 4)

	m.SetBlock(1, 1, block)

	assert.Equal(t, 1.0, m.At(1, 1))
	assert.Equal(t, 2.0, m.At(1, 2))
	assert.Equal(t, 3.0, m.At(2, 1))
	assert.Equal(t, 4.0, m.At(2, 2))
	// untouched entries remain zero
	assert.Equal(t, 0.0, m.At(0, 0))
	assert.Equal(t, 0.0, m.At(3, 3))

	m.Zero()
	assert.Equal(t, 0.0, m.At(1, 1))
}

func TestMatrix_SetBlockTranspose(t *testing.T) {
	// src is 2x3
	src := New(2, 3)
	src.Set(0, 0, 1)
	src.Set(0, 1, 2)
	src.Set(0, 2, 3)
	src.Set(1, 0, 4)
	src.Set(1, 1, 5)
	src.Set(1, 2, 6)

	dst := New(3, 2)
	dst.SetBlockTranspose(0, 0, src)

	require.Equal(t, 1.0, dst.At(0, 0))
	require.Equal(t, 4.0, dst.At(0, 1))
	require.Equal(t, 2.0, dst.At(1, 0))
	require.Equal(t, 5.0, dst.At(1, 1))
	require.Equal(t, 3.0, dst.At(2, 0))
	require.Equal(t, 6.0, dst.At(2, 1))
}

func TestMatrix_SetBlockRowScaled(t *testing.T) {
	src := New(2, 2)
	src.Set(0, 0, 1)
	src.Set(0, 1, 1)
	src.Set(1, 0, 2)
	src.Set(1, 1, 2)

	dst := New(2, 2)
	dst.SetBlockRowScaled(0, 0, src, vec.Vector{-1, -3})

	assert.Equal(t, -1.0, dst.At(0, 0))
	assert.Equal(t, -1.0, dst.At(0, 1))
	assert.Equal(t, -6.0, dst.At(1, 0))
	assert.Equal(t, -6.0, dst.At(1, 1))
}

func TestMatrix_SetBlockDiag(t *testing.T) {
	dst := New(3, 3)
	dst.SetBlockDiag(0, 0, vec.Vector{1, 2, 3})
	assert.Equal(t, 1.0, dst.At(0, 0))
	assert.Equal(t, 2.0, dst.At(1, 1))
	assert.Equal(t, 3.0, dst.At(2, 2))
	assert.Equal(t, 0.0, dst.At(0, 1))
}

func TestMatrix_AddScaled(t *testing.T) {
	m := New(2, 2)
	m.Set(0, 0, 1)
	m.Set(1, 1, 1)

	other := New(2, 2)
	other.Set(0, 0, 2)
	other.Set(1, 1, 2)

	m.AddScaled(3, other)
	assert.Equal(t, 7.0, m.At(0, 0))
	assert.Equal(t, 7.0, m.At(1, 1))
}

func TestMatrix_MulVec(t *testing.T) {
	m := New(2, 2)
	m.Set(0, 0, 1)
	m.Set(0, 1, 2)
	m.Set(1, 0, 3)
	m.Set(1, 1, 4)

	dst := vec.New(2)
	m.MulVec(vec.Vector{1, 1}, dst)
	assert.Equal(t, vec.Vector{3, 7}, dst)
}

func TestMatrix_MulVecTransposeAdd(t *testing.T) {
	m := New(2, 3)
	m.Set(0, 0, 1)
	m.Set(0, 1, 0)
	m.Set(0, 2, 0)
	m.Set(1, 0, 0)
	m.Set(1, 1, 1)
	m.Set(1, 2, 0)

	dst := vec.New(3)
	m.MulVecTransposeAdd(vec.Vector{2, 5}, dst)
	assert.Equal(t, vec.Vector{2, 5, 0}, dst)
}
