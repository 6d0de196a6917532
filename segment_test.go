package trajqueue

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine(t *testing.T) {
	line := Line{
		From:    Pose{Position: r3.Vector{X: 1}},
		To:      Pose{Position: r3.Vector{X: 3}, Orientation: r3.Vector{Z: 2}},
		Seconds: 2,
	}

	t.Run("Boundaries and midpoint", func(t *testing.T) {
		assert.InDelta(t, 2, line.Duration(), 1e-12)
		assert.Equal(t, line.From, line.PositionAt(0))
		assert.Equal(t, line.To, line.PositionAt(2))

		mid, ok := line.PositionAt(1).(Pose)
		require.True(t, ok)
		assert.InDelta(t, 2, mid.Position.X, 1e-9)
		assert.InDelta(t, 1, mid.Orientation.Z, 1e-9)
	})

	t.Run("Constant speed", func(t *testing.T) {
		for _, offset := range []float64{0, 0.5, 2} {
			v, err := line.SpeedAt(offset)
			require.NoError(t, err)
			pose, ok := v.(Pose)
			require.True(t, ok)
			assert.InDelta(t, 1, pose.Position.X, 1e-9)
			assert.InDelta(t, 1, pose.Orientation.Z, 1e-9)
		}
	})

	t.Run("Zero duration", func(t *testing.T) {
		degenerate := Line{From: line.From, To: line.To, Seconds: 0}
		assert.Equal(t, line.To, degenerate.PositionAt(0))

		v, err := degenerate.SpeedAt(0)
		require.NoError(t, err)
		assert.Equal(t, Pose{}, v)
	})
}

func TestRamp(t *testing.T) {
	ramp := Ramp{From: Vector{0, 10}, To: Vector{4, 2}, Seconds: 4}

	t.Run("Boundaries and interior", func(t *testing.T) {
		assert.InDelta(t, 4, ramp.Duration(), 1e-12)
		assert.Equal(t, Vector{0, 10}, ramp.PositionAt(0).(Vector))
		assert.Equal(t, Vector{4, 2}, ramp.PositionAt(4).(Vector))

		mid := ramp.PositionAt(2).(Vector)
		assert.InDelta(t, 2, mid[0], 1e-9)
		assert.InDelta(t, 6, mid[1], 1e-9)
	})

	t.Run("Constant speed", func(t *testing.T) {
		v, err := ramp.SpeedAt(1)
		require.NoError(t, err)
		got := v.(Vector)
		assert.InDelta(t, 1, got[0], 1e-9)
		assert.InDelta(t, -2, got[1], 1e-9)
	})

	t.Run("Zero duration", func(t *testing.T) {
		degenerate := Ramp{From: Vector{0}, To: Vector{5}, Seconds: 0}
		assert.Equal(t, Vector{5}, degenerate.PositionAt(0).(Vector))

		v, err := degenerate.SpeedAt(0)
		require.NoError(t, err)
		assert.Equal(t, Vector{0}, v.(Vector))
	})
}

func TestConstant(t *testing.T) {
	dwell := Constant{Value: Vector{3, 1}, Seconds: 1.5}

	assert.InDelta(t, 1.5, dwell.Duration(), 1e-12)
	assert.Equal(t, Vector{3, 1}, dwell.PositionAt(0).(Vector))
	assert.Equal(t, Vector{3, 1}, dwell.PositionAt(1.5).(Vector))

	v, err := dwell.SpeedAt(0.7)
	require.NoError(t, err)
	assert.Equal(t, Vector{0, 0}, v.(Vector))
}

func TestValueShapes(t *testing.T) {
	t.Run("Vector zero keeps its width", func(t *testing.T) {
		z := Vector{1, 2, 3}.ZeroLike()
		require.IsType(t, Vector{}, z)
		assert.Equal(t, Vector{0, 0, 0}, z)
	})

	t.Run("Pose zero keeps its structure", func(t *testing.T) {
		p := Pose{Position: r3.Vector{X: 1}, Orientation: r3.Vector{Y: 2}}
		z := p.ZeroLike()
		require.IsType(t, Pose{}, z)
		assert.Equal(t, Pose{}, z)
	})
}
