package pathblock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svgdsl/svgdsl/pathlang/geom"
)

func TestBuildEmptyHistory(t *testing.T) {
	t.Parallel()

	pb := Build(nil, nil)
	assert.Equal(t, geom.Point{}, pb.StartPoint)
	assert.Equal(t, geom.Point{}, pb.EndPoint)
	assert.Equal(t, 0, pb.SubPathCount)
	assert.Equal(t, 0.0, pb.Length)
}

func TestBuildVerticalThenHorizontal(t *testing.T) {
	t.Parallel()

	history := []CommandRecord{
		{Letter: "v", Args: []float64{20}, Start: geom.Point{0, 0}, End: geom.Point{0, 20}},
		{Letter: "h", Args: []float64{30}, Start: geom.Point{0, 20}, End: geom.Point{30, 20}},
	}
	pb := Build([]string{"v 20", "h 30"}, history)

	assert.Equal(t, geom.Point{0, 0}, pb.StartPoint)
	assert.Equal(t, geom.Point{30, 20}, pb.EndPoint)
	assert.Equal(t, 1, pb.SubPathCount)
	assert.InDelta(t, 50.0, pb.Length, 1e-9)
	assert.Len(t, pb.SubPathCommands, 2)
}

func TestBuildCountsSubpathsPerMoveCommand(t *testing.T) {
	t.Parallel()

	history := []CommandRecord{
		{Letter: "l", Args: []float64{5, 0}, Start: geom.Point{0, 0}, End: geom.Point{5, 0}},
		{Letter: "m", Args: []float64{1, 1}, Start: geom.Point{5, 0}, End: geom.Point{6, 1}},
		{Letter: "l", Args: []float64{2, 0}, Start: geom.Point{6, 1}, End: geom.Point{8, 1}},
	}
	pb := Build(nil, history)
	assert.Equal(t, 2, pb.SubPathCount)
}

func TestAtReturnsStartAndEndAtBoundaries(t *testing.T) {
	t.Parallel()

	history := []CommandRecord{
		{Letter: "l", Args: []float64{10, 0}, Start: geom.Point{0, 0}, End: geom.Point{10, 0}},
	}
	pb := Build(nil, history)

	start, err := pb.At(0)
	require.NoError(t, err)
	assert.Equal(t, geom.Point{0, 0}, start)

	end, err := pb.At(1)
	require.NoError(t, err)
	assert.Equal(t, geom.Point{10, 0}, end)

	mid, err := pb.At(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, mid.X, 1e-9)
}

func TestAtRejectsOutOfRangeParameter(t *testing.T) {
	t.Parallel()

	pb := Build(nil, []CommandRecord{{Letter: "l", Args: []float64{1, 0}, Start: geom.Point{}, End: geom.Point{1, 0}}})
	_, err := pb.At(1.5)
	assert.Error(t, err)
}

func TestPartitionReturnsNPlusOneSamples(t *testing.T) {
	t.Parallel()

	pb := Build(nil, []CommandRecord{{Letter: "l", Args: []float64{10, 0}, Start: geom.Point{}, End: geom.Point{10, 0}}})
	samples, err := pb.Partition(4)
	require.NoError(t, err)
	require.Len(t, samples, 5)
	assert.Equal(t, geom.Point{0, 0}, samples[0].Point)
	assert.Equal(t, geom.Point{10, 0}, samples[4].Point)
}

func TestPartitionRejectsNonPositiveCount(t *testing.T) {
	t.Parallel()

	pb := Build(nil, []CommandRecord{{Letter: "l", Args: []float64{1, 0}}})
	_, err := pb.Partition(0)
	assert.Error(t, err)
}

func TestTangentAngleAlongHorizontalLine(t *testing.T) {
	t.Parallel()

	pb := Build(nil, []CommandRecord{{Letter: "l", Args: []float64{10, 0}, Start: geom.Point{}, End: geom.Point{10, 0}}})
	_, angle, err := pb.Tangent(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, angle, 1e-9)
}

func TestHistoryRoundTripsSubPathCommands(t *testing.T) {
	t.Parallel()

	original := []CommandRecord{
		{Letter: "v", Args: []float64{20}, Start: geom.Point{0, 0}, End: geom.Point{0, 20}},
		{Letter: "h", Args: []float64{30}, Start: geom.Point{0, 20}, End: geom.Point{30, 20}},
	}
	pb := Build(nil, original)
	assert.Equal(t, original, pb.History())
}
