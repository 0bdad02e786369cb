package dynamic

import (
	"colorflow/typed"
)

// FromTyped returns the display-referred dynamic form of c. It is always
// valid.
func FromTyped[E typed.Value[E]](c E) Color {
	enc := c.Encoding()
	v, a := typed.Components(c)

	return Color{
		raw:      [4]float32{float32(v[0]), float32(v[1]), float32(v[2]), float32(a)},
		channels: enc.Channels,
		space:    enc.Space,
		state:    Display,
		alpha:    enc.Alpha,
	}
}

// FromScene returns the scene-referred dynamic form of s.
func FromScene[E typed.Linear[E]](s typed.Scene[E]) Color {
	c := FromTyped(s.AsDisplay())
	c.state = Scene
	return c
}

func alphaTag(channels int, as string) string {
	if channels == 3 {
		return "no alpha"
	}
	return as
}

func (c Color) check(enc typed.Encoding, st State) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if c.space != enc.Space {
		return &DowncastError{Err: ErrMismatchedSpace, Actual: c.space.String(), Expected: enc.Space.String()}
	}
	if c.state != st {
		return &DowncastError{Err: ErrMismatchedState, Actual: c.state.String(), Expected: st.String()}
	}
	if c.channels != enc.Channels || (c.HasAlpha() && c.alpha != enc.Alpha) {
		return &DowncastError{
			Err:      ErrMismatchedAlphaState,
			Actual:   alphaTag(c.channels, c.alpha.String()),
			Expected: alphaTag(enc.Channels, enc.Alpha.String()),
		}
	}
	return nil
}

// Downcast returns c as the typed display-referred encoding E after
// checking that space, state and alpha state match.
func Downcast[E typed.Value[E]](c Color) (E, error) {
	var zero E
	if err := c.check(zero.Encoding(), Display); err != nil {
		return zero, err
	}
	return DowncastUnchecked[E](c), nil
}

// DowncastScene is Downcast for scene-referred colors.
func DowncastScene[E typed.Linear[E]](c Color) (typed.Scene[E], error) {
	var zero E
	if err := c.check(zero.Encoding(), Scene); err != nil {
		return typed.Scene[E]{}, err
	}
	return typed.AsScene(DowncastUnchecked[E](c)), nil
}

// DowncastUnchecked reinterprets the components of c as E without looking
// at any tag.
func DowncastUnchecked[E typed.Value[E]](c Color) E {
	v, a := c.vec()
	return typed.FromComponents[E](v, a)
}
