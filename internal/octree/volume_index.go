package octree

import (
	"strconv"

	"github.com/ecopia-map/volume_index/internal/data"
	"github.com/ecopia-map/volume_index/internal/geometry"
	"github.com/golang/geo/r3"
)

// Octree over a fixed axis aligned volume supporting insertion, exact duplicate lookup and
// approximate nearest point queries. Not safe for concurrent use, see SyncVolumeIndex.
type VolumeIndex struct {
	root   *Cell
	config *indexConfig
	size   int
}

// Builds an empty index whose root cell covers [origin, origin+size].
// Degenerate extents are accepted as they are.
func NewVolumeIndex(origin r3.Vector, size r3.Vector, opts ...IndexOption) *VolumeIndex {
	config := newIndexConfig(opts)
	return &VolumeIndex{
		root:   newCell(origin, size, 0, config),
		config: config,
	}
}

// Builds an empty index covering the given box
func NewVolumeIndexFromBoundingBox(box *geometry.BoundingBox, opts ...IndexOption) *VolumeIndex {
	return NewVolumeIndex(box.Min, box.Size(), opts...)
}

// Adds the point to the tree. The root takes every point; a point outside the root volume stays in
// the root while it is a leaf and is dropped at the first split, in which case false is returned.
func (idx *VolumeIndex) Insert(point data.Point) bool {
	idx.size++
	return idx.root.add(point)
}

func (idx *VolumeIndex) Contains(v r3.Vector) (data.Point, bool) {
	return idx.root.has(v)
}

func (idx *VolumeIndex) FindNearest(v r3.Vector, opts FindOptions) (data.Point, bool) {
	return idx.root.findNearestPoint(v, opts)
}

func (idx *VolumeIndex) Size() int {
	return idx.size
}

func (idx *VolumeIndex) MaxLevel() int {
	return idx.config.maxLevel
}

func (idx *VolumeIndex) GetRootCell() ICell {
	return idx.root
}

func (idx *VolumeIndex) Root() *Cell {
	return idx.root
}

// Visits the cells depth first in octant order. path is the slash separated list of octant indices
// leading to the cell, empty for the root. Returning false from fn skips the cell's children.
func (idx *VolumeIndex) Walk(fn func(cell *Cell, path string) bool) {
	walk(idx.root, "", fn)
}

func walk(cell *Cell, path string, fn func(cell *Cell, path string) bool) {
	if !fn(cell, path) {
		return
	}
	for i, child := range cell.children {
		childPath := strconv.Itoa(i)
		if path != "" {
			childPath = path + "/" + childPath
		}
		walk(child, childPath, fn)
	}
}

type IndexStats struct {
	Cells        int `json:"cells"`
	Leaves       int `json:"leaves"`
	Depth        int `json:"depth"`
	StoredPoints int `json:"stored_points"`
	Inserted     int `json:"inserted"`
}

// Summarizes the shape of the tree
func (idx *VolumeIndex) Stats() IndexStats {
	stats := IndexStats{Inserted: idx.size}
	idx.Walk(func(cell *Cell, _ string) bool {
		stats.Cells++
		if cell.level > stats.Depth {
			stats.Depth = cell.level
		}
		if cell.IsLeaf() {
			stats.Leaves++
			stats.StoredPoints += len(cell.points)
		}
		return true
	})
	return stats
}
