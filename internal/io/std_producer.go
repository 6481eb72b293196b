package io

import (
	"context"
	"path"
	"path/filepath"
	"strconv"

	"github.com/ecopia-map/volume_index/internal/dedup"
	"github.com/ecopia-map/volume_index/internal/octree"
)

type StandardProducer struct {
	basePath string
	options  *dedup.Options
}

func NewStandardProducer(basePath string, options *dedup.Options) *StandardProducer {
	return &StandardProducer{
		basePath: basePath,
		options:  options,
	}
}

// Parses the cell tree and submits WorkUnits to the provided work channel. Should be called only on the root cell.
// Closes the channel when all work is submitted or the context is cancelled.
func (p *StandardProducer) Produce(ctx context.Context, work chan<- *WorkUnit, cell octree.ICell) error {
	defer close(work)
	return p.produce(ctx, p.basePath, "", cell, work)
}

// Submits a WorkUnit for every cell that saw at least one point, children after their parent
func (p *StandardProducer) produce(ctx context.Context, basePath string, cellPath string, cell octree.ICell, work chan<- *WorkUnit) error {
	if cell.NumberOfPoints() == 0 {
		return nil
	}

	select {
	case work <- &WorkUnit{Cell: cell, Opts: p.options, Path: cellPath, BasePath: basePath}:
	case <-ctx.Done():
		return ctx.Err()
	}

	for i, child := range cell.GetChildren() {
		childPath := strconv.Itoa(i)
		if cellPath != "" {
			childPath = path.Join(cellPath, childPath)
		}
		if err := p.produce(ctx, filepath.Join(basePath, strconv.Itoa(i)), childPath, child, work); err != nil {
			return err
		}
	}
	return nil
}
