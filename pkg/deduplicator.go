package pkg

import (
	"context"

	"github.com/ecopia-map/volume_index/internal/data"
	"github.com/ecopia-map/volume_index/internal/dedup"
	"github.com/ecopia-map/volume_index/internal/io"
	"github.com/ecopia-map/volume_index/internal/octree"
	"github.com/ecopia-map/volume_index/pkg/algorithm_manager"
	"github.com/ecopia-map/volume_index/tools"
)

type DedupStats struct {
	Read       int `json:"read"`
	Kept       int `json:"kept"`
	Duplicates int `json:"duplicates"`
	Merged     int `json:"merged"`
	Dropped    int `json:"dropped"`
}

// Removes duplicate points, and optionally points closer than a merge distance to an already kept point
type Deduplicator struct {
	fileFinder       tools.FileFinder
	algorithmManager algorithm_manager.AlgorithmManager
	stats            DedupStats
}

func NewDeduplicator(fileFinder tools.FileFinder, algorithmManager algorithm_manager.AlgorithmManager) *Deduplicator {
	return &Deduplicator{
		fileFinder:       fileFinder,
		algorithmManager: algorithmManager,
	}
}

func (d *Deduplicator) Run(ctx context.Context, opts *dedup.Options) error {
	cloud, err := loadPointCloud(ctx, d.fileFinder, d.algorithmManager, opts)
	if err != nil {
		return err
	}

	var mergeDistance float64
	if opts.DedupOptions != nil {
		mergeDistance = opts.DedupOptions.MergeDistance
	}

	tools.LogOutput("> removing duplicates...")
	index := d.algorithmManager.GetIndexAlgorithm(cloud.box)
	kept, stats := deduplicate(index, cloud, mergeDistance)
	d.stats = stats

	tools.LogOutput("> writing", stats.Kept, "points to", opts.Output)
	writer := io.NewXyzWriter(opts.Precision, cloud.hasAttributes)
	if err := writer.WriteFile(opts.Output, kept); err != nil {
		return err
	}

	tools.LogOutput("> dedup stats", tools.FmtJSONString(stats), "index", tools.FmtJSONString(index.Stats()))
	return nil
}

func (d *Deduplicator) Stats() DedupStats {
	return d.stats
}

// Inserts the points in order, skipping the ones already represented in the index.
// Returns the kept points in source coordinates.
func deduplicate(index octree.IIndex, cloud *pointCloud, mergeDistance float64) ([]data.Point, DedupStats) {
	stats := DedupStats{Read: len(cloud.working)}
	kept := make([]data.Point, 0, len(cloud.working))
	mergeDistanceSq := mergeDistance * mergeDistance

	for i, point := range cloud.working {
		v := point.Vector()

		if _, ok := index.Contains(v); ok {
			stats.Duplicates++
			continue
		}

		if mergeDistance > 0 {
			if nearest, ok := index.FindNearest(v, octree.FindOptions{}); ok && nearest.Vector().Sub(v).Norm2() <= mergeDistanceSq {
				stats.Merged++
				continue
			}
		}

		if !index.Insert(point) {
			stats.Dropped++
			continue
		}

		kept = append(kept, cloud.source[i])
		stats.Kept++
	}

	return kept, stats
}
