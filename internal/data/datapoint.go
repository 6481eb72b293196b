package data

import "github.com/golang/geo/r3"

// Contains data of a Point Cloud Point, namely X,Y,Z coords,
// R,G,B color components, Intensity and Classification.
// Only the coordinates identify a point, the other fields ride along.
type Point struct {
	X              float64
	Y              float64
	Z              float64
	R              uint8
	G              uint8
	B              uint8
	Intensity      uint8
	Classification uint8
}

// Builds a new Point from the given coordinates, colors, intensity and classification values
func NewPoint(X, Y, Z float64, R, G, B, Intensity, Classification uint8) Point {
	return Point{
		X:              X,
		Y:              Y,
		Z:              Z,
		R:              R,
		G:              G,
		B:              B,
		Intensity:      Intensity,
		Classification: Classification,
	}
}

// Builds a Point with only coordinates set
func NewPointFromVector(v r3.Vector) Point {
	return Point{X: v.X, Y: v.Y, Z: v.Z}
}

func (p Point) Vector() r3.Vector {
	return r3.Vector{X: p.X, Y: p.Y, Z: p.Z}
}

// Returns a copy of the point moved to the given coordinates, attributes preserved
func (p Point) WithVector(v r3.Vector) Point {
	p.X, p.Y, p.Z = v.X, v.Y, v.Z
	return p
}

// Exact, component-wise coordinate equality. No tolerance is applied.
func (p Point) SameCoordinates(v r3.Vector) bool {
	return p.X == v.X && p.Y == v.Y && p.Z == v.Z
}
