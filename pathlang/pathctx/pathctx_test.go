package pathctx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svgdsl/svgdsl/pathlang/format"
	"github.com/svgdsl/svgdsl/pathlang/geom"
)

func TestEmitJoinsTokensWithSpaces(t *testing.T) {
	t.Parallel()

	pc := New()
	pc.Emit("M", []float64{0, 0}, format.Options{}, nil)
	pc.Emit("L", []float64{10, 20}, format.Options{}, nil)
	pc.Emit("Z", nil, format.Options{}, nil)

	assert.Equal(t, "M 0 0 L 10 20 Z", pc.Data())
}

func TestEmitRelativeCommandAdvancesCursorFromCurrentPosition(t *testing.T) {
	t.Parallel()

	pc := New()
	pc.Emit("M", []float64{5, 5}, format.Options{}, nil)
	pc.Emit("l", []float64{3, 4}, format.Options{}, nil)

	assert.Equal(t, geom.Point{X: 8, Y: 9}, pc.Position)
}

func TestEmitZReturnsToSubpathStart(t *testing.T) {
	t.Parallel()

	pc := New()
	pc.Emit("M", []float64{2, 2}, format.Options{}, nil)
	pc.Emit("l", []float64{5, 5}, format.Options{}, nil)
	pc.Emit("Z", nil, format.Options{}, nil)

	assert.Equal(t, geom.Point{X: 2, Y: 2}, pc.Position)
}

func TestEmitArcFlagsRenderAsBareIntegers(t *testing.T) {
	t.Parallel()

	pc := New()
	pc.Emit("A", []float64{5, 5, 0, 1, 0, 10, 10}, format.Options{}, map[int]bool{3: true, 4: true})

	assert.Equal(t, "A 5 5 0 1 0 10 10", pc.Data())
}

func TestReflectedControlWithoutPriorControlIsCursor(t *testing.T) {
	t.Parallel()

	pc := New()
	pc.Emit("M", []float64{3, 3}, format.Options{}, nil)

	assert.Equal(t, geom.Point{X: 3, Y: 3}, pc.ReflectedControl())
}

func TestReflectedControlMirrorsAcrossCursor(t *testing.T) {
	t.Parallel()

	pc := New()
	pc.Emit("Q", []float64{1, 0, 2, 0}, format.Options{}, nil)

	assert.Equal(t, geom.Point{X: 3, Y: 0}, pc.ReflectedControl())
}

func TestNewRecordingForbidsNothingButFlagsInPathBlock(t *testing.T) {
	t.Parallel()

	pc := NewRecording()
	assert.True(t, pc.InPathBlock)

	pc.Emit("v", []float64{20}, format.Options{}, nil)
	pc.Emit("h", []float64{30}, format.Options{}, nil)

	require.Len(t, pc.History(), 2)
	assert.Equal(t, geom.Point{X: 30, Y: 20}, pc.Position)
}

func TestAbsorbReplaysRelativeHistoryFromCurrentPosition(t *testing.T) {
	t.Parallel()

	capture := NewRecording()
	capture.Emit("v", []float64{20}, format.Options{}, nil)
	capture.Emit("h", []float64{30}, format.Options{}, nil)

	target := New()
	target.Emit("M", []float64{10, 10}, format.Options{}, nil)
	target.Absorb(capture.Tokens(), capture.History())

	assert.Equal(t, geom.Point{X: 40, Y: 30}, target.Position)
	assert.Equal(t, "M 10 10 v 20 h 30", target.Data())
}

func TestIsAbsolute(t *testing.T) {
	t.Parallel()

	assert.True(t, IsAbsolute("M"))
	assert.False(t, IsAbsolute("m"))
	assert.False(t, IsAbsolute("zz"))
}
