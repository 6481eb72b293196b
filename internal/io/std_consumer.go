package io

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"github.com/ecopia-map/volume_index/internal/octree"
	"github.com/ecopia-map/volume_index/tools"
	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
)

const (
	CellFileName   = "cell.json"
	PointsFileName = "points.xyz"
)

// Json description of an exported cell
type CellDescriptor struct {
	Path                string            `json:"path"`
	Level               int               `json:"level"`
	Origin              [3]float64        `json:"origin"`
	Size                [3]float64        `json:"size"`
	Leaf                bool              `json:"leaf"`
	NumberOfPoints      int               `json:"number_of_points"`
	TotalNumberOfPoints int               `json:"total_number_of_points"`
	Content             string            `json:"content,omitempty"`
	Children            []ChildDescriptor `json:"children,omitempty"`
}

type ChildDescriptor struct {
	Octant              int    `json:"octant"`
	Url                 string `json:"url"`
	TotalNumberOfPoints int    `json:"total_number_of_points"`
}

type StandardConsumer struct{}

func NewStandardConsumer() *StandardConsumer {
	return &StandardConsumer{}
}

// Continually consumes WorkUnits submitted to the work channel producing the corresponding cell files.
// Continues working until the channel is closed, the context is cancelled or an error is raised.
func (c *StandardConsumer) Consume(ctx context.Context, work <-chan *WorkUnit) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case workUnit, ok := <-work:
			if !ok {
				// channel was closed by producer
				return nil
			}
			if err := c.doWork(workUnit); err != nil {
				return errors.Wrapf(err, "exporting cell %q", workUnit.Path)
			}
		}
	}
}

// Takes a WorkUnit and writes the cell.json file and, for leaves, the points.xyz file with the precision and
// attribute columns set in the WorkUnit options
func (c *StandardConsumer) doWork(workUnit *WorkUnit) error {
	if err := tools.CreateDirectoryIfDoesNotExist(workUnit.BasePath); err != nil {
		return err
	}

	cell := workUnit.Cell
	if cell.IsLeaf() {
		writer := NewXyzWriter(workUnit.Opts.Precision, workUnit.Opts.WithAttributes)
		if err := writer.WriteFile(filepath.Join(workUnit.BasePath, PointsFileName), cell.GetPoints()); err != nil {
			return err
		}
	}

	content, err := json.MarshalIndent(c.generateCellDescriptor(workUnit), "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(workUnit.BasePath, CellFileName), content, 0666)
}

func (c *StandardConsumer) generateCellDescriptor(workUnit *WorkUnit) *CellDescriptor {
	cell := workUnit.Cell
	origin := cell.GetOrigin()
	size := cell.GetSize()

	descriptor := &CellDescriptor{
		Path:                workUnit.Path,
		Level:               cell.GetLevel(),
		Origin:              [3]float64{origin.X, origin.Y, origin.Z},
		Size:                [3]float64{size.X, size.Y, size.Z},
		Leaf:                cell.IsLeaf(),
		NumberOfPoints:      cell.NumberOfPoints(),
		TotalNumberOfPoints: cell.TotalNumberOfPoints(),
	}

	if cell.IsLeaf() {
		descriptor.Content = PointsFileName
		return descriptor
	}

	for i, child := range cell.GetChildren() {
		if !c.cellContainsPoints(child) {
			continue
		}
		descriptor.Children = append(descriptor.Children, ChildDescriptor{
			Octant:              i,
			Url:                 path.Join(strconv.Itoa(i), CellFileName),
			TotalNumberOfPoints: child.TotalNumberOfPoints(),
		})
	}
	return descriptor
}

func (c *StandardConsumer) cellContainsPoints(cell octree.ICell) bool {
	return cell != nil && cell.NumberOfPoints() > 0
}
