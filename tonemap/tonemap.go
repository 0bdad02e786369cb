// Package tonemap holds operators that compress scene-referred linear light
// into the display-referred range.
package tonemap

import (
	"colorflow/colorsci"
	"colorflow/space"
)

// Operator maps scene-referred linear values to display-referred linear
// values. Operators are stateless once constructed and safe for concurrent
// use.
type Operator interface {
	// Space is the linear space Tonemap expects its input in and returns
	// its output in.
	Space() space.ID
	Tonemap(v colorsci.Vec3) colorsci.Vec3
}

func clamp01(x float64) float64 {
	return max(0, min(x, 1))
}
