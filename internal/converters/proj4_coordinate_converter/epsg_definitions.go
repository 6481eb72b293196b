package proj4_coordinate_converter

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	EpsgWGS84           = 4326
	EpsgWGS84Geocentric = 4978
	EpsgWorldMercator   = 3395
	EpsgWebMercator     = 3857
)

var epsgDefinitions = map[int]string{
	EpsgWGS84:           "+proj=longlat +datum=WGS84 +no_defs",
	EpsgWGS84Geocentric: "+proj=geocent +datum=WGS84 +units=m +no_defs",
	EpsgWorldMercator:   "+proj=merc +lon_0=0 +k=1 +x_0=0 +y_0=0 +datum=WGS84 +units=m +no_defs",
	EpsgWebMercator:     "+proj=merc +a=6378137 +b=6378137 +lat_ts=0 +lon_0=0 +x_0=0 +y_0=0 +k=1 +units=m +nadgrids=@null +wktext +no_defs",
}

// Returns the proj4 definition string for the given EPSG code.
// WGS84 UTM zones (326xx north, 327xx south) are generated on demand.
func GetEpsgDefinition(srid int) (string, error) {
	if def, ok := epsgDefinitions[srid]; ok {
		return def, nil
	}

	if zone := srid - 32600; zone >= 1 && zone <= 60 {
		return fmt.Sprintf("+proj=utm +zone=%d +datum=WGS84 +units=m +no_defs", zone), nil
	}
	if zone := srid - 32700; zone >= 1 && zone <= 60 {
		return fmt.Sprintf("+proj=utm +zone=%d +south +datum=WGS84 +units=m +no_defs", zone), nil
	}

	return "", errors.Errorf("unsupported EPSG code %d", srid)
}
