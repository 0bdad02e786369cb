// Package dynamic provides a color whose space, state and alpha state are
// runtime data, for values that come from configuration, files or the
// wire. Every operation validates its tags and returns an error instead of
// performing an invalid step.
package dynamic

import (
	"fmt"

	"colorflow/alpha"
	"colorflow/colorsci"
	"colorflow/space"
)

// State tells whether a color is scene-referred or display-referred. The
// zero value is Display.
type State uint8

const (
	Display State = iota
	Scene
)

func (s State) Valid() bool {
	return s <= Scene
}

func (s State) String() string {
	switch s {
	case Display:
		return "display"
	case Scene:
		return "scene"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

func (s State) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid state %d", uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(b []byte) error {
	switch string(b) {
	case "display":
		*s = Display
	case "scene":
		*s = Scene
	default:
		return fmt.Errorf("unknown state %q", string(b))
	}
	return nil
}

// Color is a runtime tagged color. The zero value is not valid; obtain
// colors from New, NewAlpha, FromWire or FromTyped.
type Color struct {
	raw      [4]float32
	channels int
	space    space.ID
	state    State
	alpha    alpha.State
}

// New returns a color without alpha.
func New(raw [3]float32, sp space.ID, st State) (Color, error) {
	c := Color{
		raw:      [4]float32{raw[0], raw[1], raw[2], 1},
		channels: 3,
		space:    sp,
		state:    st,
	}
	if err := c.Validate(); err != nil {
		return Color{}, err
	}
	return c, nil
}

// NewAlpha returns a color whose fourth component is alpha in state as.
func NewAlpha(raw [4]float32, sp space.ID, st State, as alpha.State) (Color, error) {
	c := Color{
		raw:      raw,
		channels: 4,
		space:    sp,
		state:    st,
		alpha:    as,
	}
	if err := c.Validate(); err != nil {
		return Color{}, err
	}
	return c, nil
}

// Validate checks the tags of c. Scene-referred colors must be in a linear
// space.
func (c Color) Validate() error {
	switch {
	case c.channels != 3 && c.channels != 4:
		return invalid("%d components, want 3 or 4", c.channels)
	case !c.space.Valid():
		return invalid("unknown color space %d", uint8(c.space))
	case !c.state.Valid():
		return invalid("unknown state %d", uint8(c.state))
	case !c.alpha.Valid():
		return invalid("unknown alpha state %d", uint8(c.alpha))
	case c.channels == 3 && c.alpha != alpha.Separate:
		return invalid("%s alpha without an alpha component", c.alpha)
	case c.state == Scene && !c.space.IsLinear():
		return &ConversionError{Err: ErrNonlinearSpaceInSceneState, Space: c.space, State: c.state, TargetState: c.state}
	}
	return nil
}

// Raw returns a copy of the components, alpha last when present.
func (c Color) Raw() []float32 {
	return append([]float32(nil), c.raw[:c.channels]...)
}

func (c Color) Space() space.ID {
	return c.space
}

func (c Color) State() State {
	return c.state
}

// AlphaState is Separate for colors without alpha.
func (c Color) AlphaState() alpha.State {
	return c.alpha
}

func (c Color) HasAlpha() bool {
	return c.channels == 4
}

// Alpha returns the alpha component, 1 for colors without alpha.
func (c Color) Alpha() float32 {
	return c.raw[3]
}

func (c Color) String() string {
	if c.HasAlpha() {
		return fmt.Sprintf("Color(%s, %s, %s alpha, %v)", c.space, c.state, c.alpha, c.raw)
	}
	return fmt.Sprintf("Color(%s, %s, %v)", c.space, c.state, c.raw[:3])
}

func (c Color) vec() (colorsci.Vec3, float64) {
	return colorsci.Vec3{float64(c.raw[0]), float64(c.raw[1]), float64(c.raw[2])}, float64(c.raw[3])
}

func (c Color) with(v colorsci.Vec3) Color {
	c.raw[0], c.raw[1], c.raw[2] = float32(v[0]), float32(v[1]), float32(v[2])
	return c
}
