package io

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ecopia-map/volume_index/internal/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadXyz(t *testing.T) {
	input := `# x y z r g b
1 2 3
// comment

4.5,5.25,-6 10 20 30
7;8;9;255;0;1;99;2
	1e2	0.001	-0
`
	cloud, err := ReadXyz(strings.NewReader(input), "test.xyz")
	require.NoError(t, err)

	assert.True(t, cloud.HasAttributes)
	assert.Equal(t, []data.Point{
		data.NewPoint(1, 2, 3, 0, 0, 0, 0, 0),
		data.NewPoint(4.5, 5.25, -6, 10, 20, 30, 0, 0),
		data.NewPoint(7, 8, 9, 255, 0, 1, 99, 2),
		data.NewPoint(100, 0.001, 0, 0, 0, 0, 0, 0),
	}, cloud.Points)
}

func TestReadXyzCoordinatesOnly(t *testing.T) {
	cloud, err := ReadXyz(strings.NewReader("1 2 3\n4 5 6\n"), "test.xyz")
	require.NoError(t, err)
	assert.False(t, cloud.HasAttributes)
	assert.Len(t, cloud.Points, 2)
}

func TestReadXyzErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"TooFewValues", "1 2 3\n1 2\n", "test.xyz:2: expected at least 3 values, found 2"},
		{"TooManyValues", "1 2 3 4 5 6 7 8 9\n", "test.xyz:1: expected at most 8 values"},
		{"BadCoordinate", "1 two 3\n", "test.xyz:1: invalid coordinate \"two\""},
		{"BadAttribute", "1 2 3 256 0 0\n", "test.xyz:1: invalid attribute \"256\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadXyz(strings.NewReader(tt.input), "test.xyz")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestReadXyzFileMissing(t *testing.T) {
	_, err := ReadXyzFile(filepath.Join(t.TempDir(), "missing.xyz"))
	assert.True(t, os.IsNotExist(err))
}

func TestXyzWriter(t *testing.T) {
	points := []data.Point{
		data.NewPoint(1, 2.5, -3.125, 1, 2, 3, 4, 5),
		data.NewPoint(0.1234567, 1e6, 0, 0, 0, 0, 0, 0),
	}

	var out bytes.Buffer
	require.NoError(t, NewXyzWriter(3, false).Write(&out, points))
	assert.Equal(t, "1.000 2.500 -3.125\n0.123 1000000.000 0.000\n", out.String())

	out.Reset()
	require.NoError(t, NewXyzWriter(1, true).Write(&out, points[:1]))
	assert.Equal(t, "1.0 2.5 -3.1 1 2 3 4 5\n", out.String())
}

func TestXyzWriterNegativePrecisionUsesDefault(t *testing.T) {
	assert.Equal(t, "1.500000", NewXyzWriter(-1, false).FormatFloat(1.5))
}

func TestXyzWriterNonFinite(t *testing.T) {
	writer := NewXyzWriter(2, false)
	assert.Equal(t, "NaN", writer.FormatFloat(math.NaN()))
	assert.Equal(t, "+Inf", writer.FormatFloat(math.Inf(1)))
}

func TestXyzRoundTrip(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "points.xyz")
	points := []data.Point{
		data.NewPoint(10.25, -20.5, 30.125, 200, 100, 50, 7, 2),
		data.NewPoint(0.5, 0.25, 0.75, 1, 1, 1, 0, 0),
	}

	require.NoError(t, NewXyzWriter(6, true).WriteFile(filePath, points))

	cloud, err := ReadXyzFile(filePath)
	require.NoError(t, err)
	assert.True(t, cloud.HasAttributes)
	assert.Equal(t, points, cloud.Points)
}
