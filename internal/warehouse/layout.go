package warehouse

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Layout describes the physical warehouse: its named, capacity-bounded
// locations and any items seeded into them at startup.
type Layout struct {
	Locations []LayoutLocation `yaml:"locations"`
}

// LayoutLocation is one location entry in a layout file.
type LayoutLocation struct {
	Name     string   `yaml:"name"`
	Capacity int      `yaml:"capacity"`
	Items    []string `yaml:"items,omitempty"`
}

// LoadingBayName is the well-known intake/outtake location every
// warehouse has and every robot homes to when it joins.
const LoadingBayName = "loading_bay"

const defaultShelfCapacity = 20

// DefaultLayout is the built-in demo floor: a high-capacity loading
// bay with a small starting inventory and four shelves.
func DefaultLayout() Layout {
	return Layout{
		Locations: []LayoutLocation{
			{
				Name:     LoadingBayName,
				Capacity: 100,
				Items:    []string{"Lamp", "Desk", "Chair", "Monitor", "Keyboard"},
			},
			{Name: "shelf:1", Capacity: defaultShelfCapacity},
			{Name: "shelf:2", Capacity: defaultShelfCapacity},
			{Name: "shelf:3", Capacity: defaultShelfCapacity},
			{Name: "shelf:4", Capacity: defaultShelfCapacity},
		},
	}
}

// LoadLayout reads a layout from a YAML file.
func LoadLayout(path string) (Layout, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout %s: %w", path, err)
	}

	var layout Layout
	if err := yaml.Unmarshal(raw, &layout); err != nil {
		return Layout{}, fmt.Errorf("parse layout %s: %w", path, err)
	}

	if err := layout.Validate(); err != nil {
		return Layout{}, fmt.Errorf("layout %s invalid: %w", path, err)
	}
	return layout, nil
}

func (l Layout) Validate() error {
	if len(l.Locations) == 0 {
		return ErrLayoutEmpty
	}

	seen := make(map[string]struct{}, len(l.Locations))
	for _, loc := range l.Locations {
		if loc.Name == "" {
			return fmt.Errorf("%w: unnamed location", ErrDuplicateLocation)
		}
		if _, dup := seen[loc.Name]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateLocation, loc.Name)
		}
		seen[loc.Name] = struct{}{}

		if loc.Capacity <= 0 {
			return fmt.Errorf("%w: %s", ErrCapacityInvalid, loc.Name)
		}
		if len(loc.Items) > loc.Capacity {
			return fmt.Errorf("%w: %s", ErrLayoutOverfull, loc.Name)
		}
	}
	return nil
}
