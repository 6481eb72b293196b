package std_algorithm_manager

import (
	"github.com/ecopia-map/volume_index/internal/converters"
	"github.com/ecopia-map/volume_index/internal/converters/elevation/offset_elevation_corrector"
	"github.com/ecopia-map/volume_index/internal/converters/proj4_coordinate_converter"
	"github.com/ecopia-map/volume_index/internal/dedup"
	"github.com/ecopia-map/volume_index/internal/geometry"
	"github.com/ecopia-map/volume_index/internal/octree"
	"github.com/ecopia-map/volume_index/pkg/algorithm_manager"
)

type StandardAlgorithmManager struct {
	options             *dedup.Options
	coordinateConverter converters.CoordinateConverter
	elevationCorrector  converters.ElevationCorrector
}

func NewAlgorithmManager(opts *dedup.Options) algorithm_manager.AlgorithmManager {
	return &StandardAlgorithmManager{
		options:             opts,
		coordinateConverter: proj4_coordinate_converter.NewProj4CoordinateConverter(),
		elevationCorrector:  offset_elevation_corrector.NewOffsetElevationCorrector(opts.ZOffset),
	}
}

func (m *StandardAlgorithmManager) GetElevationCorrectionAlgorithm() converters.ElevationCorrector {
	return m.elevationCorrector
}

func (m *StandardAlgorithmManager) GetCoordinateConverterAlgorithm() converters.CoordinateConverter {
	return m.coordinateConverter
}

func (m *StandardAlgorithmManager) GetIndexAlgorithm(box *geometry.BoundingBox) octree.IIndex {
	return octree.NewVolumeIndexFromBoundingBox(box, octree.WithMaxLevel(m.options.MaxLevel))
}
