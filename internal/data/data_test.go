package data_test

import (
	"bytes"
	"errors"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/born-ml/micrograd/internal/data"
)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name  string
		input string
		comma rune
		wantX [][]float64
		wantY []float64
	}{
		{
			name:  "header and blank lines",
			input: "x0,x1,y\n1,2,-1\n\n3.5, 4,1\n",
			wantX: [][]float64{{1, 2}, {3.5, 4}},
			wantY: []float64{-1, 1},
		},
		{
			name:  "no header",
			input: "0.5,1\n-0.5,-1\n",
			wantX: [][]float64{{0.5}, {-0.5}},
			wantY: []float64{1, -1},
		},
		{
			name:  "semicolon",
			input: "a;b;c;y\n1;2;3;4\n",
			comma: ';',
			wantX: [][]float64{{1, 2, 3}},
			wantY: []float64{4},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := data.ParseCSV(strings.NewReader(tc.input), tc.comma)
			require.NoError(t, err)
			assert.Equal(t, tc.wantX, d.X)
			assert.Equal(t, tc.wantY, d.Y)
			require.NoError(t, d.Validate())
		})
	}
}

func TestParseCSV_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", data.ErrEmpty},
		{"header only", "x,y\n", data.ErrEmpty},
		{"ragged", "1,2,3\n4,5\n", data.ErrFormat},
		{"not a number", "1,2\n3,abc\n", data.ErrFormat},
		{"target only", "1\n2\n", data.ErrFormat},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := data.ParseCSV(strings.NewReader(tc.input), 0)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestLoadCSV_RoundTrip(t *testing.T) {
	original := data.Moons(20, 0.1, rand.New(rand.NewSource(1)))

	var buf bytes.Buffer
	require.NoError(t, data.WriteCSV(&buf, original))

	path := filepath.Join(t.TempDir(), "moons.csv")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	loaded, err := data.LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, original.X, loaded.X)
	assert.Equal(t, original.Y, loaded.Y)
}

func TestLoadCSV_Missing(t *testing.T) {
	_, err := data.LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestMoons(t *testing.T) {
	d := data.Moons(101, 0, rand.New(rand.NewSource(3)))
	require.Equal(t, 101, d.Len())
	require.Equal(t, 2, d.Features())

	var pos, neg int
	for i, x := range d.X {
		switch d.Y[i] {
		case -1:
			neg++
			// Outer moon lies on the unit circle, upper half.
			assert.InDelta(t, 1.0, math.Hypot(x[0], x[1]), 1e-9)
			assert.GreaterOrEqual(t, x[1], -1e-9)
		case 1:
			pos++
			// Inner moon is centred on (1, 0.5).
			assert.InDelta(t, 1.0, math.Hypot(x[0]-1, x[1]-0.5), 1e-9)
		default:
			t.Fatalf("unexpected label %v", d.Y[i])
		}
	}
	assert.Equal(t, 50, neg)
	assert.Equal(t, 51, pos)
}

func TestMoons_Deterministic(t *testing.T) {
	a := data.Moons(30, 0.2, rand.New(rand.NewSource(9)))
	b := data.Moons(30, 0.2, rand.New(rand.NewSource(9)))
	assert.Equal(t, a, b)
}

func TestStandardize(t *testing.T) {
	d := &data.Dataset{
		X: [][]float64{{1, 5}, {2, 5}, {3, 5}, {6, 5}},
		Y: []float64{1, -1, 1, -1},
	}

	out, scaler := data.Standardize(d)
	require.Len(t, scaler.Mean, 2)
	assert.InDelta(t, 3.0, scaler.Mean[0], 1e-12)
	assert.Equal(t, 0.0, scaler.Std[1])

	col := make([]float64, out.Len())
	for i, x := range out.X {
		col[i] = x[0]
		assert.Equal(t, 0.0, x[1], "constant feature is only centred")
	}
	mean, std := stat.MeanStdDev(col, nil)
	assert.InDelta(t, 0.0, mean, 1e-12)
	assert.InDelta(t, 1.0, std, 1e-12)

	assert.Equal(t, d.Y, out.Y)
	assert.Equal(t, 1.0, d.X[0][0], "input is not modified")
}

func TestBatches(t *testing.T) {
	full := data.Batches(5, 0, nil)
	assert.Equal(t, [][]int{{0, 1, 2, 3, 4}}, full)
	assert.Equal(t, full, data.Batches(5, 10, nil))
	assert.Nil(t, data.Batches(0, 2, nil))

	batches := data.Batches(10, 3, rand.New(rand.NewSource(4)))
	require.Len(t, batches, 4)
	assert.Len(t, batches[3], 1)

	seen := make(map[int]bool)
	for _, b := range batches {
		for _, i := range b {
			assert.False(t, seen[i], "index %d repeated", i)
			seen[i] = true
		}
	}
	assert.Len(t, seen, 10)
}

func TestDataset_Subset(t *testing.T) {
	d := &data.Dataset{X: [][]float64{{1}, {2}, {3}}, Y: []float64{10, 20, 30}}
	s := d.Subset([]int{2, 0})
	assert.Equal(t, [][]float64{{3}, {1}}, s.X)
	assert.Equal(t, []float64{30, 10}, s.Y)

	assert.True(t, errors.Is((&data.Dataset{}).Validate(), data.ErrEmpty))
	bad := &data.Dataset{X: [][]float64{{1, 2}, {3}}, Y: []float64{0, 0}}
	assert.True(t, errors.Is(bad.Validate(), data.ErrFormat))
}
