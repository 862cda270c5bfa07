// Package preset holds the built-in viewport size presets. The table is
// immutable and safe for concurrent lookup.
package preset

import (
	"errors"
	"fmt"
)

// ErrUnknownPreset is returned by Resolve for names not in the table.
var ErrUnknownPreset = errors.New("unknown preset")

// Preset is a named, predefined viewport size.
type Preset struct {
	Name   string `json:"name" example:"desktop"`
	Width  int    `json:"width" example:"1920"`
	Height int    `json:"height" example:"1080"`
	Label  string `json:"label" example:"Desktop HD"`
}

// order fixes the listing order; the map alone would shuffle it.
var order = []string{"desktop", "laptop", "tablet", "phone", "phone-ls", "4k"}

var table = map[string]Preset{
	"desktop":  {Name: "desktop", Width: 1920, Height: 1080, Label: "Desktop HD"},
	"laptop":   {Name: "laptop", Width: 1366, Height: 768, Label: "Laptop"},
	"tablet":   {Name: "tablet", Width: 768, Height: 1024, Label: "iPad/Tablet"},
	"phone":    {Name: "phone", Width: 390, Height: 844, Label: "iPhone 12/13/14"},
	"phone-ls": {Name: "phone-ls", Width: 844, Height: 390, Label: "iPhone Landscape"},
	"4k":       {Name: "4k", Width: 3840, Height: 2160, Label: "4K Display"},
}

// Resolve looks up a preset by name.
func Resolve(name string) (Preset, error) {
	p, ok := table[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// All returns every built-in preset in a stable order.
func All() []Preset {
	out := make([]Preset, 0, len(order))
	for _, name := range order {
		out = append(out, table[name])
	}
	return out
}

// Names returns the preset names in listing order.
func Names() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}
