package geometry

import (
	"math"

	"github.com/golang/geo/r3"
)

// Axis aligned box described by its minimum and maximum corners
type BoundingBox struct {
	Min r3.Vector
	Max r3.Vector
}

// Builds a bounding box from two corners. Corners are taken as given, no reordering happens.
func NewBoundingBox(min, max r3.Vector) *BoundingBox {
	return &BoundingBox{Min: min, Max: max}
}

// Builds a bounding box from an origin (minimum corner) and an extent
func NewBoundingBoxFromOriginAndSize(origin, size r3.Vector) *BoundingBox {
	return &BoundingBox{Min: origin, Max: origin.Add(size)}
}

// Builds the smallest bounding box enclosing all the given vectors.
// An empty input yields an inverted box that any call to Extend will fix.
func NewBoundingBoxFromPoints(points ...r3.Vector) *BoundingBox {
	box := &BoundingBox{
		Min: r3.Vector{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: r3.Vector{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
	for _, p := range points {
		box.Extend(p)
	}
	return box
}

// Returns the bounding box of the given octant of the parent box.
// Bit 0 of the octant selects the upper x half, bit 1 the upper z half and bit 2 the upper y half.
func NewBoundingBoxFromParent(parent *BoundingBox, octant uint8) *BoundingBox {
	half := parent.Size().Mul(0.5)
	return NewBoundingBoxFromOriginAndSize(parent.Min.Add(OctantOffset(octant, half)), half)
}

// Offset of the minimum corner of the given octant relative to the parent minimum corner
func OctantOffset(octant uint8, half r3.Vector) r3.Vector {
	var offset r3.Vector
	if octant&1 != 0 {
		offset.X = half.X
	}
	if octant&2 != 0 {
		offset.Z = half.Z
	}
	if octant&4 != 0 {
		offset.Y = half.Y
	}
	return offset
}

// Grows the box so that it contains v
func (b *BoundingBox) Extend(v r3.Vector) {
	b.Min = r3.Vector{X: math.Min(b.Min.X, v.X), Y: math.Min(b.Min.Y, v.Y), Z: math.Min(b.Min.Z, v.Z)}
	b.Max = r3.Vector{X: math.Max(b.Max.X, v.X), Y: math.Max(b.Max.Y, v.Y), Z: math.Max(b.Max.Z, v.Z)}
}

func (b *BoundingBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Extent of the box along each axis
func (b *BoundingBox) Size() r3.Vector {
	return b.Max.Sub(b.Min)
}

func (b *BoundingBox) Center() r3.Vector {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Inclusive containment test on all three axes
func (b *BoundingBox) Contains(v r3.Vector) bool {
	return v.X >= b.Min.X && v.Y >= b.Min.Y && v.Z >= b.Min.Z &&
		v.X <= b.Max.X && v.Y <= b.Max.Y && v.Z <= b.Max.Z
}

// Returns the box as {minX, minY, minZ, maxX, maxY, maxZ}
func (b *BoundingBox) GetAsArray() []float64 {
	return []float64{b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z}
}
