package io

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ecopia-map/volume_index/internal/data"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Points read from an ASCII xyz file
type XyzCloud struct {
	Points []data.Point
	// true if at least one line carried more than the three coordinates
	HasAttributes bool
}

// Reads all the points of an xyz file. Each non empty line holds
// x y z [r g b [intensity [classification]]], separated by spaces, tabs, commas or semicolons.
// Lines starting with # or // are comments.
func ReadXyzFile(filePath string) (*XyzCloud, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadXyz(file, filePath)
}

// Reads xyz points from r. name is only used to build error messages.
func ReadXyz(r io.Reader, name string) (*XyzCloud, error) {
	cloud := &XyzCloud{Points: make([]data.Point, 0)}

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		point, hasAttributes, err := parseXyzLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", name, lineNumber)
		}
		cloud.Points = append(cloud.Points, point)
		cloud.HasAttributes = cloud.HasAttributes || hasAttributes
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}

	return cloud, nil
}

func isXyzSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == ',' || r == ';'
}

func parseXyzLine(line string) (data.Point, bool, error) {
	fields := strings.FieldsFunc(line, isXyzSeparator)
	if len(fields) < 3 {
		return data.Point{}, false, errors.Errorf("expected at least 3 values, found %d", len(fields))
	}
	if len(fields) > 8 {
		return data.Point{}, false, errors.Errorf("expected at most 8 values, found %d", len(fields))
	}

	var coords [3]float64
	for i := 0; i < 3; i++ {
		value, err := decimal.NewFromString(fields[i])
		if err != nil {
			return data.Point{}, false, errors.Wrapf(err, "invalid coordinate %q", fields[i])
		}
		coords[i], _ = value.Float64()
	}

	var attributes [5]uint8
	for i, field := range fields[3:] {
		value, err := strconv.ParseUint(field, 10, 8)
		if err != nil {
			return data.Point{}, false, errors.Wrapf(err, "invalid attribute %q", field)
		}
		attributes[i] = uint8(value)
	}

	point := data.NewPoint(
		coords[0], coords[1], coords[2],
		attributes[0], attributes[1], attributes[2], attributes[3], attributes[4],
	)
	return point, len(fields) > 3, nil
}
