package io

import (
	"context"

	"github.com/ecopia-map/volume_index/internal/octree"
)

type Producer interface {
	Produce(ctx context.Context, work chan<- *WorkUnit, cell octree.ICell) error
}

type Consumer interface {
	Consume(ctx context.Context, work <-chan *WorkUnit) error
}
