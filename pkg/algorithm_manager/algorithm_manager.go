package algorithm_manager

import (
	"github.com/ecopia-map/volume_index/internal/converters"
	"github.com/ecopia-map/volume_index/internal/geometry"
	"github.com/ecopia-map/volume_index/internal/octree"
)

type AlgorithmManager interface {
	GetElevationCorrectionAlgorithm() converters.ElevationCorrector
	GetCoordinateConverterAlgorithm() converters.CoordinateConverter
	// Returns an empty index covering the given box
	GetIndexAlgorithm(box *geometry.BoundingBox) octree.IIndex
}
