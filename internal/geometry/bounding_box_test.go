package geometry

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoundingBoxFromPoints(t *testing.T) {
	box := NewBoundingBoxFromPoints(
		r3.Vector{X: 1, Y: -2, Z: 3},
		r3.Vector{X: -1, Y: 5, Z: 0},
		r3.Vector{X: 0, Y: 0, Z: 7},
	)

	assert.Equal(t, r3.Vector{X: -1, Y: -2, Z: 0}, box.Min)
	assert.Equal(t, r3.Vector{X: 1, Y: 5, Z: 7}, box.Max)
	assert.Equal(t, r3.Vector{X: 2, Y: 7, Z: 7}, box.Size())
	assert.Equal(t, r3.Vector{X: 0, Y: 1.5, Z: 3.5}, box.Center())
	assert.False(t, box.IsEmpty())
}

func TestEmptyBoundingBox(t *testing.T) {
	box := NewBoundingBoxFromPoints()
	require.True(t, box.IsEmpty())

	box.Extend(r3.Vector{X: 2, Y: 2, Z: 2})
	assert.False(t, box.IsEmpty())
	assert.Equal(t, r3.Vector{}, box.Size())
}

func TestContainsIsInclusive(t *testing.T) {
	box := NewBoundingBoxFromOriginAndSize(r3.Vector{}, r3.Vector{X: 4, Y: 4, Z: 4})

	tests := []struct {
		name     string
		v        r3.Vector
		expected bool
	}{
		{"Inside", r3.Vector{X: 1, Y: 2, Z: 3}, true},
		{"MinCorner", r3.Vector{}, true},
		{"MaxCorner", r3.Vector{X: 4, Y: 4, Z: 4}, true},
		{"Face", r3.Vector{X: 4, Y: 1, Z: 1}, true},
		{"BelowX", r3.Vector{X: -0.001, Y: 1, Z: 1}, false},
		{"AboveZ", r3.Vector{X: 1, Y: 1, Z: 4.001}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, box.Contains(tt.v))
		})
	}
}

func TestOctantsTileParent(t *testing.T) {
	parent := NewBoundingBoxFromOriginAndSize(r3.Vector{X: -2, Y: 0, Z: 10}, r3.Vector{X: 8, Y: 4, Z: 2})

	var volume float64
	seen := make(map[r3.Vector]bool)
	for i := uint8(0); i < 8; i++ {
		child := NewBoundingBoxFromParent(parent, i)
		size := child.Size()
		assert.Equal(t, r3.Vector{X: 4, Y: 2, Z: 1}, size)
		assert.True(t, parent.Contains(child.Min))
		assert.True(t, parent.Contains(child.Max))
		assert.False(t, seen[child.Min], "octant %d repeats a corner", i)
		seen[child.Min] = true
		volume += size.X * size.Y * size.Z
	}

	parentSize := parent.Size()
	assert.InDelta(t, parentSize.X*parentSize.Y*parentSize.Z, volume, 1e-9)
}

func TestOctantOrder(t *testing.T) {
	half := r3.Vector{X: 1, Y: 2, Z: 3}

	assert.Equal(t, r3.Vector{}, OctantOffset(0, half))
	assert.Equal(t, r3.Vector{X: 1}, OctantOffset(1, half))
	assert.Equal(t, r3.Vector{Z: 3}, OctantOffset(2, half))
	assert.Equal(t, r3.Vector{X: 1, Z: 3}, OctantOffset(3, half))
	assert.Equal(t, r3.Vector{Y: 2}, OctantOffset(4, half))
	assert.Equal(t, r3.Vector{X: 1, Y: 2, Z: 3}, OctantOffset(7, half))
}

func TestGetAsArray(t *testing.T) {
	box := NewBoundingBox(r3.Vector{X: 1, Y: 2, Z: 3}, r3.Vector{X: 4, Y: 5, Z: 6})
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, box.GetAsArray())
}
