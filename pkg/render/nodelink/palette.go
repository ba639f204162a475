package nodelink

import (
	"fmt"
	"strings"
	"unicode"
)

// DefaultThreshold is the out-degree a pod must exceed to get a palette color.
const DefaultThreshold = 2

// DefaultColor is used for pods at or below the threshold.
const DefaultColor = "black"

// Palette is an ordered list of Graphviz color names or "#rrggbb" values.
// Colors are handed out in order and wrap around after the last one.
type Palette []string

// DefaultPalette returns the 20 built-in X11 colors. Each call returns a
// fresh slice, so callers may modify it.
func DefaultPalette() Palette {
	return Palette{
		"red", "blue", "green4", "darkorange", "purple",
		"brown", "deeppink", "cyan4", "gold3", "navy",
		"darkgreen", "magenta3", "chocolate", "steelblue", "olivedrab",
		"firebrick", "darkviolet", "dodgerblue3", "sienna", "crimson",
	}
}

// At returns the i-th color, cycling modulo the palette length.
// At panics on an empty palette.
func (p Palette) At(i int) string {
	return p[i%len(p)]
}

// Validate reports the first color that cannot be written as a DOT
// attribute value: blank entries and entries with control characters.
func (p Palette) Validate() error {
	for i, c := range p {
		if strings.TrimSpace(c) == "" {
			return fmt.Errorf("palette color %d is empty", i)
		}
		if strings.IndexFunc(c, unicode.IsControl) >= 0 {
			return fmt.Errorf("palette color %d contains control characters: %q", i, c)
		}
	}
	return nil
}

// colorer assigns colors to pods in emission order.
type colorer struct {
	palette   Palette
	threshold int
	next      int
}

// colorFor returns the palette color for a pod with the given out-degree,
// advancing the cycle, or DefaultColor if the pod is not above the threshold.
func (c *colorer) colorFor(outDegree int) string {
	if outDegree <= c.threshold {
		return DefaultColor
	}
	color := c.palette.At(c.next)
	c.next = (c.next + 1) % len(c.palette)
	return color
}
