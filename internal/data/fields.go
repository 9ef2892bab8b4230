package data

import (
	"fmt"
	"math"

	"github.com/udisondev/arenago/internal/game/door"
)

// getString returns m[key] if it is a string, "" otherwise.
func getString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// getInt returns m[key] as an int32, 0 when absent, not integral or out of
// int32 range. JSON round trips turn integers into float64, so both are accepted.
func getInt(m map[string]any, key string) int32 {
	switch v := m[key].(type) {
	case int:
		return clampInt32(int64(v))
	case int64:
		return clampInt32(v)
	case int32:
		return v
	case uint64:
		if v > math.MaxInt32 {
			return 0
		}
		return int32(v)
	case float64:
		if v == math.Trunc(v) && v >= math.MinInt32 && v <= math.MaxInt32 {
			return int32(v)
		}
	}
	return 0
}

// clampInt32 maps values outside int32 to 0 so they read as missing.
func clampInt32(v int64) int32 {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0
	}
	return int32(v)
}

// getCompound returns m[key] as a nested map, nil when absent.
func getCompound(m map[string]any, key string) map[string]any {
	c, _ := m[key].(map[string]any)
	return c
}

// getBlock reads {Name, Properties} the way block states are serialized.
func getBlock(m map[string]any, key string) door.Block {
	c := getCompound(m, key)
	b := door.Block{Name: getString(c, "Name")}
	if props := getCompound(c, "Properties"); len(props) > 0 {
		b.Properties = make(map[string]string, len(props))
		for k, v := range props {
			b.Properties[k] = fmt.Sprint(v)
		}
	}
	return b
}
