package converters

import (
	"github.com/golang/geo/r3"
)

type CoordinateConverter interface {
	// Converts a coordinate between two EPSG reference systems. Geographic coordinates are in degrees.
	ConvertCoordinateSrid(sourceSrid int, targetSrid int, coord r3.Vector) (r3.Vector, error)
	Cleanup()
}
