package door

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/arenago/internal/geom"
	"github.com/udisondev/arenago/internal/model"
)

func newTestFactory(w *recordingWorld) *Factory {
	return &Factory{
		World:  w,
		Access: allowAll,
		Teams:  teamsByName{"red": {Name: "red", Color: "#ff5555"}},
		Origin: geom.P(0, 32, 0),
		OpenMaterial: func(team model.TeamRef) model.Material {
			if t, ok := team.Get(); ok {
				return model.NewMaterial("arenago:team_barrier", map[string]string{"team": t.Name})
			}
			return barrier
		},
	}
}

func validDescriptor() Descriptor {
	return Descriptor{
		Name:     "red_spawn",
		Bounds:   geom.MustBounds(geom.P(4, 0, 10), geom.P(6, 2, 10)),
		Facing:   "south",
		Distance: 3,
		Block:    Block{Name: "iron_bars", Properties: map[string]string{"waterlogged": "false"}},
		Team:     "red",
	}
}

func TestFactory_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Descriptor)
		want   Rejection
	}{
		{"unknown facing", func(d *Descriptor) { d.Facing = "sideways" }, RejectFacing},
		{"missing facing", func(d *Descriptor) { d.Facing = "" }, RejectFacing},
		{"zero distance", func(d *Descriptor) { d.Distance = 0 }, RejectDistance},
		{"missing block name", func(d *Descriptor) { d.Block = Block{Properties: map[string]string{"a": "b"}} }, RejectBlock},
		{"facing checked before distance", func(d *Descriptor) { d.Facing = "?"; d.Distance = 0 }, RejectFacing},
		{"distance checked before block", func(d *Descriptor) { d.Distance = 0; d.Block = Block{} }, RejectDistance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newRecordingWorld()
			desc := validDescriptor()
			tt.mutate(&desc)

			d, reason := newTestFactory(w).Build(desc)
			assert.Nil(t, d)
			assert.Equal(t, tt.want, reason)
			assert.Zero(t, w.writes, "rejected descriptors must not touch the world")
		})
	}
}

func TestFactory_BuildGeometry(t *testing.T) {
	w := newRecordingWorld()
	d, reason := newTestFactory(w).Build(validDescriptor())
	require.Empty(t, reason)
	require.NotNil(t, d)

	assert.Equal(t, "red_spawn", d.Name())
	assert.Equal(t, geom.South, d.Facing())
	assert.Equal(t, geom.MustBounds(geom.P(4, 32, 10), geom.P(6, 34, 10)), d.Bounds())

	// min corner pushed north, max corner pushed south
	assert.Equal(t, geom.MustBounds(geom.P(4, 32, 7), geom.P(6, 34, 13)), d.DetectionBounds())
	// from the footprint's near face to the far detection edge
	assert.Equal(t, geom.MustBounds(geom.P(4, 32, 10), geom.P(6, 34, 13)), d.ExitDetectionBounds())
}

func TestFactory_BuildNormalizesInvertedFacing(t *testing.T) {
	w := newRecordingWorld()
	desc := validDescriptor()
	desc.Facing = "north"

	d, reason := newTestFactory(w).Build(desc)
	require.Empty(t, reason)

	det := d.DetectionBounds()
	assert.Equal(t, geom.P(4, 32, 7), det.Min())
	assert.Equal(t, geom.P(6, 34, 13), det.Max())
	assert.Equal(t, geom.MustBounds(geom.P(4, 32, 7), geom.P(6, 34, 10)), d.ExitDetectionBounds())
}

func TestFactory_BuildClosesImmediately(t *testing.T) {
	w := newRecordingWorld()
	d, _ := newTestFactory(w).Build(validDescriptor())
	require.NotNil(t, d)

	assert.False(t, d.IsOpen())
	assert.Equal(t, 0, d.OpenTicks())
	want := model.NewMaterial("iron_bars", map[string]string{"waterlogged": "false"})
	assertFootprint(t, w, d, want)
	assert.Len(t, w.cells, 9)
}

func TestFactory_TeamResolution(t *testing.T) {
	w := newRecordingWorld()
	f := newTestFactory(w)

	d, _ := f.Build(validDescriptor())
	require.NotNil(t, d)
	team, ok := d.Team().Get()
	require.True(t, ok)
	assert.Equal(t, "red", team.Name)
	assert.Equal(t, "red", d.OpenMaterial().Properties["team"])

	desc := validDescriptor()
	desc.Team = ""
	d, _ = f.Build(desc)
	require.NotNil(t, d)
	assert.True(t, d.Team().IsAny())
	assert.True(t, barrier.Equal(d.OpenMaterial()))

	desc.Team = "green"
	d, _ = f.Build(desc)
	require.NotNil(t, d)
	assert.True(t, d.Team().IsAny(), "unknown team falls back to any")
}

func TestFactory_NegativeDistance(t *testing.T) {
	w := newRecordingWorld()
	desc := validDescriptor()
	desc.Distance = -2

	d, reason := newTestFactory(w).Build(desc)
	require.Empty(t, reason)
	assert.Equal(t, geom.MustBounds(geom.P(4, 32, 8), geom.P(6, 34, 12)), d.DetectionBounds())
}
