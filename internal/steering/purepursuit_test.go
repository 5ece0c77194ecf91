package steering_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cxd309/sweptpath-engine/internal/geometry"
	"github.com/cxd309/sweptpath-engine/internal/steering"
)

func line(from, to geometry.Point2D) geometry.Path {
	p, err := geometry.Resample(geometry.Path{from, to}, 0.1)
	if err != nil {
		panic(err)
	}
	return p
}

func TestLookaheadFloor(t *testing.T) {
	assert.Equal(t, 2.0, steering.New(1.2, 0.5, line(geometry.Point2D{}, geometry.Point2D{X: 5})).Lookahead())
	assert.Equal(t, 4.5, steering.New(4.5, 0.5, line(geometry.Point2D{}, geometry.Point2D{X: 5})).Lookahead())
}

func TestSteer_StraightAheadIsZero(t *testing.T) {
	pp := steering.New(4.5, 0.6, line(geometry.Point2D{}, geometry.Point2D{X: 20}))
	cmd := pp.Steer(geometry.Point2D{X: -4.5}, 0)

	assert.Equal(t, 0.0, cmd.Angle)
	assert.GreaterOrEqual(t, geometry.Distance(geometry.Point2D{X: -4.5}, cmd.Target), 4.5)
	assert.Equal(t, cmd.TargetIndex, pp.Cursor())
}

func TestSteer_PurePursuitLaw(t *testing.T) {
	// Target sits exactly at the lookahead distance, 30° to the left.
	alpha := math.Pi / 6
	target := geometry.Point2D{X: 3 * math.Cos(alpha), Y: 3 * math.Sin(alpha)}
	pp := steering.New(2, 1.2, geometry.Path{target})

	cmd := pp.Steer(geometry.Point2D{}, 0)
	want := math.Atan(2 * 2 * math.Sin(alpha) / 3)
	assert.InDelta(t, want, cmd.Angle, 1e-12)
	assert.Greater(t, cmd.Angle, 0.0, "left target steers left")
}

func TestSteer_ClampsToLimit(t *testing.T) {
	path := geometry.Path{{X: 0, Y: 5}, {X: 0, Y: 10}}
	pp := steering.New(4, 0.3, path)

	cmd := pp.Steer(geometry.Point2D{}, 0)
	assert.Equal(t, 0.3, cmd.Angle)

	pp = steering.New(4, 0.3, geometry.Path{{X: 0, Y: -5}})
	cmd = pp.Steer(geometry.Point2D{}, 0)
	assert.Equal(t, -0.3, cmd.Angle)
}

func TestSteer_TargetBehindNormalizesBearing(t *testing.T) {
	// Heading just under +π and target just past -π: the error is small and positive.
	pp := steering.New(2, 1.0, geometry.Path{{X: -10, Y: -0.5}})
	cmd := pp.Steer(geometry.Point2D{}, math.Pi-0.01)
	assert.Greater(t, cmd.Angle, 0.0)
	assert.Less(t, cmd.Angle, 0.2)
}

func TestSteer_CursorNeverRewinds(t *testing.T) {
	// Out along X then back along a parallel line close to the start.
	path, err := geometry.Resample(geometry.Path{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 1}, {X: 0, Y: 1}}, 0.1)
	require.NoError(t, err)
	pp := steering.New(2, 0.6, path)

	var first steering.Command
	for i := 0; i <= 200; i++ {
		first = pp.Steer(geometry.Point2D{X: -2 + float64(i)*0.1}, 0)
	}
	require.Greater(t, first.TargetIndex, 150)

	// Jump back near the start: the early samples are closer but must not be chosen.
	second := pp.Steer(geometry.Point2D{X: 0.5, Y: 0}, 0)
	assert.GreaterOrEqual(t, second.TargetIndex, first.TargetIndex)
}

func TestSteer_EndOfPathParksOnLastSample(t *testing.T) {
	path := line(geometry.Point2D{}, geometry.Point2D{X: 1})
	pp := steering.New(4, 0.5, path)

	cmd := pp.Steer(geometry.Point2D{X: 0.5}, 0)
	assert.Equal(t, len(path)-1, cmd.TargetIndex)
	assert.Equal(t, path[len(path)-1], cmd.Target)
	assert.Equal(t, len(path)-1, pp.Cursor())
}

func TestSteer_DegenerateTargetHoldsLastAngle(t *testing.T) {
	path := geometry.Path{{X: 0, Y: 3}, {X: 0, Y: 3}}
	pp := steering.New(2, 0.5, path)

	first := pp.Steer(geometry.Point2D{}, 0)
	require.Equal(t, 0.5, first.Angle)

	held := pp.Steer(geometry.Point2D{X: 0, Y: 3}, 0)
	assert.Equal(t, 0.5, held.Angle, "zero distance to target keeps the previous command")

	fresh := steering.New(2, 0.5, path)
	assert.Equal(t, 0.0, fresh.Steer(geometry.Point2D{X: 0, Y: 3}, 0).Angle)
}
