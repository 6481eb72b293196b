package io

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ecopia-map/volume_index/internal/data"
	"github.com/shopspring/decimal"
)

const DefaultPrecision int32 = 6

// Writes points as ASCII xyz lines with coordinates rounded to precision decimal places
type XyzWriter struct {
	precision      int32
	withAttributes bool
}

func NewXyzWriter(precision int32, withAttributes bool) *XyzWriter {
	if precision < 0 {
		precision = DefaultPrecision
	}
	return &XyzWriter{
		precision:      precision,
		withAttributes: withAttributes,
	}
}

func (w *XyzWriter) WriteFile(filePath string, points []data.Point) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}

	if err := w.Write(file, points); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func (w *XyzWriter) Write(out io.Writer, points []data.Point) error {
	buffered := bufio.NewWriter(out)
	for _, point := range points {
		if _, err := buffered.WriteString(w.FormatPoint(point)); err != nil {
			return err
		}
		if err := buffered.WriteByte('\n'); err != nil {
			return err
		}
	}
	return buffered.Flush()
}

// Returns the xyz line for the point, without line terminator
func (w *XyzWriter) FormatPoint(point data.Point) string {
	fields := []string{
		w.FormatFloat(point.X),
		w.FormatFloat(point.Y),
		w.FormatFloat(point.Z),
	}
	if w.withAttributes {
		for _, attribute := range []uint8{point.R, point.G, point.B, point.Intensity, point.Classification} {
			fields = append(fields, strconv.Itoa(int(attribute)))
		}
	}
	return strings.Join(fields, " ")
}

func (w *XyzWriter) FormatFloat(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	return decimal.NewFromFloat(value).StringFixed(w.precision)
}
