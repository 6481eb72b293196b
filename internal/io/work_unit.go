package io

import (
	"github.com/ecopia-map/volume_index/internal/dedup"
	"github.com/ecopia-map/volume_index/internal/octree"
)

// Contains the minimal data needed to export a single cell, i.e. a cell.json file and, for leaves, a points.xyz file
type WorkUnit struct {
	Cell     octree.ICell
	Opts     *dedup.Options // output precision and attribute columns
	Path     string // octant path from the root, e.g. "0/3/5"
	BasePath string // folder the cell files are written to
}
