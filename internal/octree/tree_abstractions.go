package octree

import (
	"github.com/ecopia-map/volume_index/internal/data"
	"github.com/ecopia-map/volume_index/internal/geometry"
	"github.com/golang/geo/r3"
)

type IIndex interface {
	// Adds a Point to the index. Returns false if the point was dropped because no cell could hold it
	Insert(point data.Point) bool
	// Returns the stored point with exactly the given coordinates
	Contains(v r3.Vector) (data.Point, bool)
	// Returns the stored point closest to v within the branch v falls into
	FindNearest(v r3.Vector, opts FindOptions) (data.Point, bool)
	// Number of Insert calls
	Size() int
	GetRootCell() ICell
	// Summarizes the shape of the tree
	Stats() IndexStats
}

type ICell interface {
	GetOrigin() r3.Vector
	GetSize() r3.Vector
	GetLevel() int
	GetBoundingBox() *geometry.BoundingBox
	GetChildren() []ICell
	GetPoints() []data.Point
	ContainsPoint(v r3.Vector) bool
	NumberOfPoints() int
	TotalNumberOfPoints() int
	IsLeaf() bool
}

var (
	_ IIndex = (*VolumeIndex)(nil)
	_ IIndex = (*SyncVolumeIndex)(nil)
	_ ICell  = (*Cell)(nil)
)
