package pkg

import (
	"context"
	"path/filepath"
	"strconv"

	"github.com/ecopia-map/volume_index/internal/data"
	"github.com/ecopia-map/volume_index/internal/dedup"
	"github.com/ecopia-map/volume_index/internal/geometry"
	"github.com/ecopia-map/volume_index/internal/io"
	"github.com/ecopia-map/volume_index/pkg/algorithm_manager"
	"github.com/ecopia-map/volume_index/tools"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

type IRunner interface {
	Run(ctx context.Context, opts *dedup.Options) error
}

// Points loaded from the input files, both as read and as converted to the working reference system
type pointCloud struct {
	source        []data.Point
	working       []data.Point
	hasAttributes bool
	box           *geometry.BoundingBox
}

// Reads all input files and converts their points to the working reference system
func loadPointCloud(
	ctx context.Context,
	fileFinder tools.FileFinder,
	algorithmManager algorithm_manager.AlgorithmManager,
	opts *dedup.Options,
) (*pointCloud, error) {
	tools.LogOutput("Preparing list of files to process...")

	pointFiles, err := fileFinder.GetPointFilesToProcess(opts)
	if err != nil {
		return nil, err
	}
	if len(pointFiles) == 0 {
		return nil, errors.Errorf("no point files found in %s", opts.Input)
	}

	cloud := &pointCloud{box: geometry.NewBoundingBoxFromPoints()}
	for i, filePath := range pointFiles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tools.LogOutput("> reading file " + strconv.Itoa(i+1) + "/" + strconv.Itoa(len(pointFiles)) + " " + filepath.Base(filePath))
		xyz, err := io.ReadXyzFile(filePath)
		if err != nil {
			return nil, err
		}
		cloud.hasAttributes = cloud.hasAttributes || xyz.HasAttributes

		for _, point := range xyz.Points {
			converted, err := toWorkingPoint(point, algorithmManager, opts)
			if err != nil {
				return nil, err
			}
			cloud.source = append(cloud.source, point)
			cloud.working = append(cloud.working, converted)
			cloud.box.Extend(converted.Vector())
		}
	}

	if len(cloud.working) == 0 {
		return nil, errors.New("input files contain no points")
	}

	tools.LogOutputf("> loaded %d points, bounds %s", len(cloud.working), tools.FmtJSONString(cloud.box.GetAsArray()))
	return cloud, nil
}

// Applies the elevation correction in the source system, then reprojects to the working system
func toWorkingPoint(point data.Point, algorithmManager algorithm_manager.AlgorithmManager, opts *dedup.Options) (data.Point, error) {
	z := algorithmManager.GetElevationCorrectionAlgorithm().CorrectElevation(point.X, point.Y, point.Z)
	v := r3.Vector{X: point.X, Y: point.Y, Z: z}

	if opts.NeedsReprojection() {
		converted, err := algorithmManager.GetCoordinateConverterAlgorithm().ConvertCoordinateSrid(opts.Srid, opts.WorkingSrid, v)
		if err != nil {
			return point, err
		}
		v = converted
	}

	return point.WithVector(v), nil
}
