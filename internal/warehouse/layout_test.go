package warehouse

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLayoutValid(t *testing.T) {
	t.Parallel()

	layout := DefaultLayout()
	if err := layout.Validate(); err != nil {
		t.Fatalf("default layout invalid: %v", err)
	}
	if layout.Locations[0].Name != LoadingBayName {
		t.Fatalf("expected first location %q, got %q", LoadingBayName, layout.Locations[0].Name)
	}
}

func TestLayoutValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		layout  Layout
		wantErr error
	}{
		{
			name:    "empty layout",
			layout:  Layout{},
			wantErr: ErrLayoutEmpty,
		},
		{
			name: "duplicate location name",
			layout: Layout{Locations: []LayoutLocation{
				{Name: "shelf:1", Capacity: 5},
				{Name: "shelf:1", Capacity: 5},
			}},
			wantErr: ErrDuplicateLocation,
		},
		{
			name: "unnamed location",
			layout: Layout{Locations: []LayoutLocation{
				{Name: "", Capacity: 5},
			}},
			wantErr: ErrDuplicateLocation,
		},
		{
			name: "zero capacity",
			layout: Layout{Locations: []LayoutLocation{
				{Name: "shelf:1", Capacity: 0},
			}},
			wantErr: ErrCapacityInvalid,
		},
		{
			name: "seeded past capacity",
			layout: Layout{Locations: []LayoutLocation{
				{Name: "shelf:1", Capacity: 1, Items: []string{"Lamp", "Desk"}},
			}},
			wantErr: ErrLayoutOverfull,
		},
		{
			name: "valid",
			layout: Layout{Locations: []LayoutLocation{
				{Name: LoadingBayName, Capacity: 10, Items: []string{"Lamp"}},
				{Name: "shelf:1", Capacity: 5},
			}},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			err := test.layout.Validate()
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("expected error %v, got %v", test.wantErr, err)
			}
		})
	}
}

func TestLoadLayout(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "layout.yaml")
	raw := []byte(`locations:
  - name: loading_bay
    capacity: 50
    items: [Lamp, Desk]
  - name: shelf:1
    capacity: 10
`)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write layout: %v", err)
	}

	layout, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	if len(layout.Locations) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(layout.Locations))
	}
	if layout.Locations[0].Capacity != 50 || len(layout.Locations[0].Items) != 2 {
		t.Fatalf("loading bay mismatch: %#v", layout.Locations[0])
	}
}

func TestLoadLayoutRejectsInvalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "layout.yaml")
	raw := []byte(`locations:
  - name: shelf:1
    capacity: 0
`)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write layout: %v", err)
	}

	if _, err := LoadLayout(path); !errors.Is(err, ErrCapacityInvalid) {
		t.Fatalf("expected ErrCapacityInvalid, got %v", err)
	}
}

func TestLoadLayoutMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadLayout(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
