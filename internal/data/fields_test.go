package data

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/arenago/internal/game/door"
)

func TestGetInt(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want int32
	}{
		{"int", 3, 3},
		{"negative int", -3, -3},
		{"int64", int64(7), 7},
		{"int32", int32(-9), -9},
		{"uint64", uint64(12), 12},
		{"integral float", 5.0, 5},
		{"fractional float", 2.5, 0},
		{"max int32", math.MaxInt32, math.MaxInt32},
		{"min int32", math.MinInt32, math.MinInt32},
		{"int above int32", 4294967299, 0},
		{"int below int32", math.MinInt32 - 1, 0},
		{"int64 above int32", int64(math.MaxInt32) + 1, 0},
		{"uint64 above int32", uint64(math.MaxUint64), 0},
		{"float above int32", 4294967299.0, 0},
		{"float below int32", -1e12, 0},
		{"string", "far", 0},
		{"absent", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := map[string]any{}
			if tt.val != nil {
				m["distance"] = tt.val
			}
			assert.Equal(t, tt.want, getInt(m, "distance"))
		})
	}
}

func TestDoorDescriptors_OutOfRangeDistanceIsRejected(t *testing.T) {
	tmpl, err := ParseTemplate([]byte(`
name: typo
regions:
  - marker: door
    min: [0, 0, 0]
    max: [0, 0, 0]
    data:
      facing: south
      distance: 4294967299
      block:
        Name: glass
`))
	require.NoError(t, err)

	descs, err := tmpl.DoorDescriptors()
	require.NoError(t, err)
	require.Len(t, descs, 1)
	assert.Zero(t, descs[0].Distance)

	d, reason := (&door.Factory{}).Build(descs[0])
	assert.Nil(t, d)
	assert.Equal(t, door.RejectDistance, reason)
}
