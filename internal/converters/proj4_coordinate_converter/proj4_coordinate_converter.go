package proj4_coordinate_converter

import (
	"sync"

	"github.com/ecopia-map/volume_index/internal/converters"
	"github.com/golang/geo/r3"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	proj "github.com/xeonx/proj4"
)

// Converts coordinates with the proj4 library, keeping one initialized projection per EPSG code
type proj4CoordinateConverter struct {
	projections map[int]*proj.Proj
	sync.Mutex
}

func NewProj4CoordinateConverter() converters.CoordinateConverter {
	return &proj4CoordinateConverter{
		projections: make(map[int]*proj.Proj),
	}
}

func (cc *proj4CoordinateConverter) ConvertCoordinateSrid(sourceSrid int, targetSrid int, coord r3.Vector) (r3.Vector, error) {
	if sourceSrid == targetSrid {
		return coord, nil
	}

	cc.Lock()
	defer cc.Unlock()

	src, err := cc.getProjection(sourceSrid)
	if err != nil {
		return coord, err
	}
	dst, err := cc.getProjection(targetSrid)
	if err != nil {
		return coord, err
	}

	x, y, z := []float64{coord.X}, []float64{coord.Y}, []float64{coord.Z}
	if src.IsLatLong() {
		x[0], y[0] = proj.DegToRad(x[0]), proj.DegToRad(y[0])
	}

	if err := proj.TransformRaw(src, dst, x, y, z); err != nil {
		return coord, errors.Wrapf(err, "cannot convert %v from EPSG:%d to EPSG:%d", coord, sourceSrid, targetSrid)
	}

	if dst.IsLatLong() {
		x[0], y[0] = proj.RadToDeg(x[0]), proj.RadToDeg(y[0])
	}

	return r3.Vector{X: x[0], Y: y[0], Z: z[0]}, nil
}

// Releases every cached projection
func (cc *proj4CoordinateConverter) Cleanup() {
	cc.Lock()
	defer cc.Unlock()

	for srid, projection := range cc.projections {
		projection.Close()
		delete(cc.projections, srid)
	}
}

// Returns the cached projection for the srid, initializing it on first use. Callers hold the lock.
func (cc *proj4CoordinateConverter) getProjection(srid int) (*proj.Proj, error) {
	if projection, ok := cc.projections[srid]; ok {
		return projection, nil
	}

	def, err := GetEpsgDefinition(srid)
	if err != nil {
		return nil, err
	}

	projection, err := proj.InitPlus(def)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot initialize projection for EPSG:%d", srid)
	}
	glog.V(1).Infof("initialized projection EPSG:%d [%s]", srid, def)

	cc.projections[srid] = projection
	return projection, nil
}
