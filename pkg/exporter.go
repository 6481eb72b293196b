package pkg

import (
	"context"
	"runtime"

	"github.com/ecopia-map/volume_index/internal/dedup"
	"github.com/ecopia-map/volume_index/internal/io"
	"github.com/ecopia-map/volume_index/internal/octree"
	"github.com/ecopia-map/volume_index/pkg/algorithm_manager"
	"github.com/ecopia-map/volume_index/tools"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Builds the index and writes its cell tree to a folder, one subfolder per octant
type Exporter struct {
	fileFinder       tools.FileFinder
	algorithmManager algorithm_manager.AlgorithmManager
	numConsumers     int
}

func NewExporter(fileFinder tools.FileFinder, algorithmManager algorithm_manager.AlgorithmManager) *Exporter {
	return &Exporter{
		fileFinder:       fileFinder,
		algorithmManager: algorithmManager,
		numConsumers:     runtime.NumCPU(),
	}
}

func (e *Exporter) Run(ctx context.Context, opts *dedup.Options) error {
	cloud, err := loadPointCloud(ctx, e.fileFinder, e.algorithmManager, opts)
	if err != nil {
		return err
	}

	tools.LogOutput("> building index...")
	index := e.algorithmManager.GetIndexAlgorithm(cloud.box)
	dropped := 0
	for _, point := range cloud.working {
		if !index.Insert(point) {
			dropped++
		}
	}
	if dropped > 0 {
		tools.LogOutput("> points dropped while indexing:", dropped)
	}

	tools.LogOutput("> exporting cells...")
	if err := e.exportCells(ctx, index, opts, cloud.hasAttributes); err != nil {
		return err
	}

	tools.LogOutput("> exported index", tools.FmtJSONString(index.Stats()))
	return nil
}

// Exports the cells of the built index. A producer walks the tree while one consumer per CPU writes the files.
func (e *Exporter) exportCells(ctx context.Context, index octree.IIndex, opts *dedup.Options, withAttributes bool) error {
	if err := tools.CreateDirectoryIfDoesNotExist(opts.Output); err != nil {
		return err
	}

	// shared read only by all consumers
	exportOpts := opts.Copy()
	exportOpts.WithAttributes = withAttributes

	// buffer 5 times greater than the number of consumers
	workChannel := make(chan *io.WorkUnit, e.numConsumers*5)

	g, gctx := errgroup.WithContext(ctx)

	producer := io.NewStandardProducer(exportOpts.Output, exportOpts)
	g.Go(func() error {
		return producer.Produce(gctx, workChannel, index.GetRootCell())
	})

	for i := 0; i < e.numConsumers; i++ {
		consumer := io.NewStandardConsumer()
		g.Go(func() error {
			return consumer.Consume(gctx, workChannel)
		})
	}

	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "errors raised during export")
	}
	return nil
}
