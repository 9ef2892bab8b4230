package data

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/arenago/internal/game/door"
	"github.com/udisondev/arenago/internal/geom"
)

// MarkerDoor marks template regions that describe doors.
const MarkerDoor = "door"

// ErrBadPos is returned for region corners that are not three integers.
var ErrBadPos = errors.New("position must have exactly three coordinates")

// Template — карта арены: имя и размеченные регионы.
type Template struct {
	Name    string   `yaml:"name" json:"name"`
	Regions []Region `yaml:"regions" json:"regions"`
}

// Region — размеченный регион шаблона.
// Data is free-form; each marker defines the keys it reads.
type Region struct {
	Marker string         `yaml:"marker" json:"marker"`
	Name   string         `yaml:"name,omitempty" json:"name,omitempty"`
	Min    []int32        `yaml:"min" json:"min"`
	Max    []int32        `yaml:"max" json:"max"`
	Data   map[string]any `yaml:"data,omitempty" json:"data,omitempty"`
}

// Bounds returns the region's cells. Min must not exceed Max.
func (r Region) Bounds() (geom.Bounds, error) {
	lo, err := toPos(r.Min)
	if err != nil {
		return geom.Bounds{}, fmt.Errorf("region %q min: %w", r.Name, err)
	}
	hi, err := toPos(r.Max)
	if err != nil {
		return geom.Bounds{}, fmt.Errorf("region %q max: %w", r.Name, err)
	}
	b, err := geom.NewBounds(lo, hi)
	if err != nil {
		return geom.Bounds{}, fmt.Errorf("region %q: %w", r.Name, err)
	}
	return b, nil
}

func toPos(c []int32) (geom.Pos, error) {
	if len(c) != 3 {
		return geom.Pos{}, fmt.Errorf("%w, got %d", ErrBadPos, len(c))
	}
	return geom.P(c[0], c[1], c[2]), nil
}

// RegionsByMarker returns regions with the given marker, in file order.
func (t *Template) RegionsByMarker(marker string) []Region {
	var out []Region
	for _, r := range t.Regions {
		if r.Marker == marker {
			out = append(out, r)
		}
	}
	return out
}

// Validate checks every region's geometry.
func (t *Template) Validate() error {
	if t.Name == "" {
		return errors.New("template has no name")
	}
	for i, r := range t.Regions {
		if _, err := r.Bounds(); err != nil {
			return fmt.Errorf("region #%d: %w", i, err)
		}
	}
	return nil
}

// DoorDescriptors converts every door region. Field values that are absent
// or of the wrong type read as zero values and are left to the door factory
// to reject.
func (t *Template) DoorDescriptors() ([]door.Descriptor, error) {
	regions := t.RegionsByMarker(MarkerDoor)
	out := make([]door.Descriptor, 0, len(regions))
	for i, r := range regions {
		b, err := r.Bounds()
		if err != nil {
			return nil, fmt.Errorf("door region #%d: %w", i, err)
		}
		name := r.Name
		if name == "" {
			name = fmt.Sprintf("%s#%d", MarkerDoor, i)
		}
		out = append(out, door.Descriptor{
			Name:     name,
			Bounds:   b,
			Facing:   getString(r.Data, "facing"),
			Distance: getInt(r.Data, "distance"),
			Block:    getBlock(r.Data, "block"),
			Team:     getString(r.Data, "team"),
		})
	}
	return out, nil
}

// ParseTemplate decodes and validates a YAML template.
func ParseTemplate(raw []byte) (*Template, error) {
	var t Template
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("validating template %q: %w", t.Name, err)
	}
	return &t, nil
}

// LoadTemplate reads a template file.
func LoadTemplate(path string) (*Template, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}
	t, err := ParseTemplate(raw)
	if err != nil {
		return nil, fmt.Errorf("loading template %s: %w", path, err)
	}
	slog.Info("loaded map template",
		"name", t.Name,
		"path", path,
		"regions", len(t.Regions))
	return t, nil
}
