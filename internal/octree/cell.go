package octree

import (
	"math"

	"github.com/ecopia-map/volume_index/internal/data"
	"github.com/ecopia-map/volume_index/internal/geometry"
	"github.com/golang/geo/r3"
	"github.com/golang/glog"
)

// Models a cell of the octree, an axis aligned box which is either a leaf holding points directly
// or an internal cell with exactly eight children partitioning its volume.
// Once a cell has split, its own points slice only keeps the trail of every point that went through it,
// the points actually live in the descendants.
type Cell struct {
	origin   r3.Vector
	size     r3.Vector
	level    int
	points   []data.Point
	children []*Cell
	config   *indexConfig
}

func newCell(origin r3.Vector, size r3.Vector, level int, config *indexConfig) *Cell {
	return &Cell{
		origin:   origin, // minimum corner of the cell
		size:     size,   // extent along x, y, z
		level:    level,  // depth from the root
		points:   make([]data.Point, 0),
		children: nil, // nil while the cell is a leaf, eight entries afterwards
		config:   config,
	}
}

func (c *Cell) GetOrigin() r3.Vector {
	return c.origin
}

func (c *Cell) GetSize() r3.Vector {
	return c.size
}

func (c *Cell) GetLevel() int {
	return c.level
}

func (c *Cell) GetBoundingBox() *geometry.BoundingBox {
	return geometry.NewBoundingBoxFromOriginAndSize(c.origin, c.size)
}

func (c *Cell) GetChildren() []ICell {
	if c.IsLeaf() {
		return nil
	}
	children := make([]ICell, len(c.children))
	for i, child := range c.children {
		children[i] = child
	}
	return children
}

func (c *Cell) GetPoints() []data.Point {
	return c.points
}

func (c *Cell) IsLeaf() bool {
	return len(c.children) == 0
}

// Number of points held directly by the cell. For internal cells this is the size of the trail.
func (c *Cell) NumberOfPoints() int {
	return len(c.points)
}

// Number of points stored in the leaves below (or at) this cell
func (c *Cell) TotalNumberOfPoints() int {
	if c.IsLeaf() {
		return len(c.points)
	}
	total := 0
	for _, child := range c.children {
		total += child.TotalNumberOfPoints()
	}
	return total
}

// A point is in the cell if every coordinate lies in [origin, origin+size].
// Points on a shared face belong to both neighbouring cells.
func (c *Cell) ContainsPoint(v r3.Vector) bool {
	return v.X >= c.origin.X &&
		v.Y >= c.origin.Y &&
		v.Z >= c.origin.Z &&
		v.X <= c.origin.X+c.size.X &&
		v.Y <= c.origin.Y+c.size.Y &&
		v.Z <= c.origin.Z+c.size.Z
}

// Records the point and pushes it down to the children, splitting the cell if it is a crowded leaf.
// Returns false when the point ended up in no leaf.
func (c *Cell) add(point data.Point) bool {
	c.points = append(c.points, point)

	if !c.IsLeaf() {
		return c.addToChildren(point)
	}

	if len(c.points) > 1 && c.level < c.config.maxLevel {
		c.split()
		return c.containingChild(point.Vector()) != nil
	}

	return true
}

// Adds the point to the first child containing it
func (c *Cell) addToChildren(point data.Point) bool {
	child := c.containingChild(point.Vector())
	if child == nil {
		if glog.V(1) {
			glog.Infof("point %v dropped: no child of level %d cell at %v contains it", point.Vector(), c.level, c.origin)
		}
		return false
	}
	return child.add(point)
}

func (c *Cell) containingChild(v r3.Vector) *Cell {
	for _, child := range c.children {
		if child.ContainsPoint(v) {
			return child
		}
	}
	return nil
}

// Creates the eight children and redistributes the points held by the cell
func (c *Cell) split() {
	if !c.IsLeaf() {
		return
	}

	half := c.size.Mul(0.5)
	c.children = make([]*Cell, 8)
	for i := uint8(0); i < 8; i++ {
		c.children[i] = newCell(c.origin.Add(geometry.OctantOffset(i, half)), half, c.level+1, c.config)
	}

	if glog.V(2) {
		glog.Infof("split level %d cell at %v, redistributing %d points", c.level, c.origin, len(c.points))
	}

	for _, point := range c.points {
		c.addToChildren(point)
	}
}

// Returns the first stored point with exactly the coordinates of v
func (c *Cell) has(v r3.Vector) (data.Point, bool) {
	if !c.ContainsPoint(v) {
		return data.Point{}, false
	}

	if !c.IsLeaf() {
		for _, child := range c.children {
			if duplicate, ok := child.has(v); ok {
				return duplicate, true
			}
		}
		return data.Point{}, false
	}

	for _, point := range c.points {
		if point.SameCoordinates(v) {
			return point, true
		}
	}
	return data.Point{}, false
}

// Descends into the first non empty child containing v that yields a result. Only when no child does,
// the points held directly by this cell are scanned. Siblings not containing v are never visited,
// so the result is the nearest point of the branch, not necessarily of the whole tree.
func (c *Cell) findNearestPoint(v r3.Vector, opts FindOptions) (data.Point, bool) {
	for _, child := range c.children {
		if len(child.points) > 0 && child.ContainsPoint(v) {
			if nearest, ok := child.findNearestPoint(v, opts); ok {
				return nearest, true
			}
		}
	}

	var nearest data.Point
	found := false
	minDistSq := math.Inf(1)
	for _, point := range c.points {
		distSq := point.Vector().Sub(v).Norm2()
		if distSq < minDistSq {
			if opts.ExcludeSelf && distSq < c.config.selfEpsilon {
				continue
			}
			minDistSq = distSq
			nearest = point
			found = true
		}
	}
	return nearest, found
}
