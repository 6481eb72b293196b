package pkg

import (
	"bufio"
	"context"
	"math"
	"os"
	"strings"

	"github.com/ecopia-map/volume_index/internal/data"
	"github.com/ecopia-map/volume_index/internal/dedup"
	"github.com/ecopia-map/volume_index/internal/io"
	"github.com/ecopia-map/volume_index/internal/octree"
	"github.com/ecopia-map/volume_index/pkg/algorithm_manager"
	"github.com/ecopia-map/volume_index/tools"
	"github.com/golang/geo/r3"
)

const missingValue = "-"

// Writes, for each input point, the nearest indexed point and its distance
type NearestFinder struct {
	fileFinder       tools.FileFinder
	algorithmManager algorithm_manager.AlgorithmManager
}

func NewNearestFinder(fileFinder tools.FileFinder, algorithmManager algorithm_manager.AlgorithmManager) *NearestFinder {
	return &NearestFinder{
		fileFinder:       fileFinder,
		algorithmManager: algorithmManager,
	}
}

func (f *NearestFinder) Run(ctx context.Context, opts *dedup.Options) error {
	cloud, err := loadPointCloud(ctx, f.fileFinder, f.algorithmManager, opts)
	if err != nil {
		return err
	}

	findOptions := octree.FindOptions{}
	if opts.NearestOptions != nil {
		findOptions.ExcludeSelf = opts.NearestOptions.ExcludeSelf
	}

	tools.LogOutput("> building index...")
	index := f.algorithmManager.GetIndexAlgorithm(cloud.box)
	// maps working coordinates back to the first source point having them
	sources := make(map[r3.Vector]data.Point, len(cloud.working))
	for i, point := range cloud.working {
		index.Insert(point)
		if _, ok := sources[point.Vector()]; !ok {
			sources[point.Vector()] = cloud.source[i]
		}
	}

	tools.LogOutput("> searching nearest points...")
	file, err := os.Create(opts.Output)
	if err != nil {
		return err
	}
	defer file.Close()

	out := bufio.NewWriter(file)
	writer := io.NewXyzWriter(opts.Precision, false)
	for i, point := range cloud.working {
		if err := ctx.Err(); err != nil {
			return err
		}

		fields := []string{writer.FormatPoint(cloud.source[i])}
		if nearest, ok := index.FindNearest(point.Vector(), findOptions); ok {
			distance := math.Sqrt(nearest.Vector().Sub(point.Vector()).Norm2())
			fields = append(fields, writer.FormatPoint(sources[nearest.Vector()]), writer.FormatFloat(distance))
		} else {
			fields = append(fields, missingValue, missingValue, missingValue, missingValue)
		}

		if _, err := out.WriteString(strings.Join(fields, " ") + "\n"); err != nil {
			return err
		}
	}

	if err := out.Flush(); err != nil {
		return err
	}
	return file.Close()
}
