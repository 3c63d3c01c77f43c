package pathblock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svgdsl/svgdsl/pathlang/geom"
)

func vAndHBlock() *PathBlock {
	history := []CommandRecord{
		{Letter: "v", Args: []float64{20}, Start: geom.Point{0, 0}, End: geom.Point{0, 20}},
		{Letter: "h", Args: []float64{30}, Start: geom.Point{0, 20}, End: geom.Point{30, 20}},
	}
	return Build([]string{"v 20", "h 30"}, history)
}

func TestProjectedPathTranslatesEndpoints(t *testing.T) {
	t.Parallel()

	pb := vAndHBlock()
	proj := NewProjectedPath(pb, geom.Point{X: 10, Y: 10})

	assert.Equal(t, geom.Point{X: 10, Y: 10}, proj.StartPoint())
	assert.Equal(t, geom.Point{X: 40, Y: 30}, proj.EndPoint())
	assert.InDelta(t, 50.0, proj.Length(), 1e-9)
}

func TestProjectedPathZeroOriginMatchesBlock(t *testing.T) {
	t.Parallel()

	pb := vAndHBlock()
	proj := NewProjectedPath(pb, geom.Point{})

	assert.Equal(t, pb.StartPoint, proj.StartPoint())
	assert.Equal(t, pb.EndPoint, proj.EndPoint())
}

func TestProjectedPathAtTranslatesSample(t *testing.T) {
	t.Parallel()

	pb := vAndHBlock()
	proj := NewProjectedPath(pb, geom.Point{X: 10, Y: 10})

	pt, err := proj.At(0)
	require.NoError(t, err)
	assert.Equal(t, geom.Point{X: 10, Y: 10}, pt)
}

func TestProjectedPathVerticesTranslated(t *testing.T) {
	t.Parallel()

	pb := vAndHBlock()
	proj := NewProjectedPath(pb, geom.Point{X: 5, Y: 5})

	verts := proj.Vertices()
	require.Len(t, verts, len(pb.Vertices))
	for i, v := range pb.Vertices {
		assert.Equal(t, v.Add(geom.Point{X: 5, Y: 5}), verts[i])
	}
}
