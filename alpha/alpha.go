// Package alpha implements the relation between separate and premultiplied
// alpha and the Porter-Duff over operator on premultiplied values.
package alpha

import (
	"fmt"

	"colorflow/colorsci"
)

// State says how color components relate to alpha. The zero value is
// Separate.
type State uint8

const (
	// Separate components are independent of alpha.
	Separate State = iota
	// Premultiplied components have already been multiplied by alpha.
	Premultiplied
)

func (s State) Valid() bool {
	return s <= Premultiplied
}

func (s State) String() string {
	switch s {
	case Separate:
		return "separate"
	case Premultiplied:
		return "premultiplied"
	default:
		return fmt.Sprintf("alpha.State(%d)", uint8(s))
	}
}

func (s State) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid alpha state %d", uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(b []byte) error {
	switch string(b) {
	case "separate":
		*s = Separate
	case "premultiplied":
		*s = Premultiplied
	default:
		return fmt.Errorf("unknown alpha state %q", string(b))
	}
	return nil
}

// Convert moves raw from src to dst given alpha a. Separating a value with
// zero alpha returns it unchanged since its components cannot be recovered.
func Convert(raw colorsci.Vec3, a float64, src, dst State) colorsci.Vec3 {
	switch {
	case src == dst:
		return raw
	case dst == Premultiplied:
		return raw.Scale(a)
	case a != 0:
		return colorsci.Vec3{raw[0] / a, raw[1] / a, raw[2] / a}
	default:
		return raw
	}
}

// Over composites over onto under. Both must be premultiplied and linear.
func Over(over colorsci.Vec3, overA float64, under colorsci.Vec3, underA float64) (colorsci.Vec3, float64) {
	k := 1 - overA
	return colorsci.Vec3{
		over[0] + under[0]*k,
		over[1] + under[1]*k,
		over[2] + under[2]*k,
	}, overA + underA*k
}
