package sweep_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cxd309/sweptpath-engine/internal/engine"
	"github.com/cxd309/sweptpath-engine/internal/geometry"
	"github.com/cxd309/sweptpath-engine/internal/sweep"
	"github.com/cxd309/sweptpath-engine/internal/vehicle"
)

func run(t *testing.T, path geometry.Path, cfg vehicle.Config) engine.Trajectory {
	t.Helper()
	res, err := engine.Simulate(path, cfg, engine.Options{})
	require.NoError(t, err)
	require.NotEmpty(t, res.States)
	return res.States
}

func preset(t *testing.T, id string) vehicle.Config {
	t.Helper()
	cfg, err := vehicle.Preset(id)
	require.NoError(t, err)
	return cfg
}

var corner = geometry.Path{{X: 0, Y: 0}, {X: 30, Y: 0}, {X: 30, Y: 40}}

func names(layers []sweep.Layer) []string {
	out := make([]string, len(layers))
	for i, l := range layers {
		out[i] = l.Name
	}
	return out
}

func TestLayers_Tractor(t *testing.T) {
	states := run(t, corner, preset(t, "rigid_truck"))
	layers := sweep.Layers(states)

	require.Equal(t, []string{sweep.LayerEnvelopeTractor, sweep.LayerWheelPathTractor}, names(layers))
	require.Len(t, layers[0].Polylines, 4, "front and rear tractor corners")
	for _, pl := range layers[0].Polylines {
		assert.Equal(t, len(states)-1, pl.Segments())
	}
	assert.Equal(t, states[0].Envelope.Tractor.FL, layers[0].Polylines[0][0])
	assert.Equal(t, states[len(states)-1].Envelope.Tractor.RR, layers[0].Polylines[3][len(states)-1])
	assert.Equal(t, states[3].Position, layers[1].Polylines[0][3])
}

func TestLayers_WithTrailer(t *testing.T) {
	states := run(t, corner, preset(t, "semi_trailer"))
	layers := sweep.Layers(states)

	require.Equal(t, []string{
		sweep.LayerEnvelopeTractor,
		sweep.LayerEnvelopeTrailer,
		sweep.LayerWheelPathTractor,
		sweep.LayerWheelPathTrailer,
	}, names(layers))
	assert.Len(t, layers[0].Polylines, 2, "only front tractor corners with a trailer")
	assert.Len(t, layers[1].Polylines, 2)
	assert.Equal(t, states[5].Envelope.Trailer.RL, layers[1].Polylines[0][5])
	assert.Equal(t, states[5].Trailer.Position, layers[3].Polylines[0][5])
}

func TestLayers_Empty(t *testing.T) {
	assert.Nil(t, sweep.Layers(nil))
}

func TestSnapshots(t *testing.T) {
	states := make(engine.Trajectory, 10)
	for i := range states {
		states[i].Heading = float64(i)
	}

	got := sweep.Snapshots(states, 4)
	require.Len(t, got, 4)
	assert.Equal(t, []float64{0, 4, 8, 9}, []float64{got[0].Heading, got[1].Heading, got[2].Heading, got[3].Heading})

	assert.Len(t, sweep.Snapshots(states, 0), 10)
	assert.Len(t, sweep.Snapshots(states[:9], 4), 3, "last state already included")
	assert.Nil(t, sweep.Snapshots(nil, 3))
}

func TestOffTracking_StraightIsZero(t *testing.T) {
	states := run(t, geometry.Path{{X: 0, Y: 0}, {X: 25, Y: 0}}, preset(t, "semi_trailer"))
	assert.InDelta(t, 0.0, sweep.OffTracking(states), 1e-9)
}

func TestOffTracking_GrowsWithTrailerWheelbase(t *testing.T) {
	cfg := preset(t, "semi_trailer")
	prev := 0.0
	for _, wb := range []float64{5, 8, 11} {
		cfg.Trailer.Wheelbase = wb
		got := sweep.OffTracking(run(t, corner, cfg))
		assert.Greater(t, got, prev, "trailer wheelbase %v", wb)
		prev = got
	}
	assert.False(t, math.IsInf(prev, 0))
}

func TestOffTracking_NoTrailer(t *testing.T) {
	assert.Equal(t, 0.0, sweep.OffTracking(run(t, corner, preset(t, "passenger_car"))))
}
