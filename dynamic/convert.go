package dynamic

import (
	"colorflow/alpha"
	"colorflow/colorsci"
	"colorflow/space"
	"colorflow/tonemap"
)

// Convert returns c in space dst, keeping state and alpha state.
func (c Color) Convert(dst space.ID) (Color, error) {
	return c.ConvertWith(dst, c.alpha)
}

// ConvertAlpha returns c with its components in alpha state dst. The
// (de)multiplication happens in linear light.
func (c Color) ConvertAlpha(dst alpha.State) (Color, error) {
	return c.ConvertWith(c.space, dst)
}

// ConvertLike returns c in the space and alpha state of query.
func (c Color) ConvertLike(query Color) (Color, error) {
	if !query.HasAlpha() {
		return c.Convert(query.space)
	}
	return c.ConvertWith(query.space, query.alpha)
}

// ConvertWith returns c in space dst and alpha state dstAlpha: decode,
// separate alpha, change basis, apply dstAlpha, encode. Premultiplied
// components are always (de)multiplied in linear light. A color may not
// stay premultiplied while a nonlinear step carries it into another
// linear basis.
func (c Color) ConvertWith(dst space.ID, dstAlpha alpha.State) (Color, error) {
	if err := c.Validate(); err != nil {
		return Color{}, err
	} else if !dst.Valid() {
		return Color{}, invalid("unknown color space %d", uint8(dst))
	} else if !dstAlpha.Valid() {
		return Color{}, invalid("unknown alpha state %d", uint8(dstAlpha))
	} else if !c.HasAlpha() && dstAlpha != alpha.Separate {
		return Color{}, invalid("%s alpha without an alpha component", dstAlpha)
	}

	nonlinear := !c.space.IsLinear() || !dst.IsLinear()
	if c.state == Scene && nonlinear {
		return Color{}, &ConversionError{
			Err:         ErrNonlinearConversionInSceneState,
			Space:       c.space,
			State:       c.state,
			TargetSpace: dst,
			TargetState: c.state,
		}
	}
	if c.HasAlpha() && c.alpha == alpha.Premultiplied && dstAlpha == alpha.Premultiplied &&
		nonlinear && c.space.LinearSpace() != dst.LinearSpace() {
		return Color{}, &ConversionError{
			Err:         ErrNonlinearConversionInPremultipliedAlphaState,
			Space:       c.space,
			State:       c.state,
			TargetSpace: dst,
			TargetState: c.state,
		}
	}

	if c.space == dst && c.alpha == dstAlpha {
		return c, nil
	}

	conv := space.Lookup(c.space, dst)
	v, a := c.vec()
	v = conv.SrcTransform(v)
	v = alpha.Convert(v, a, c.alpha, alpha.Separate)
	v = conv.LinearPart(v)
	v = alpha.Convert(v, a, alpha.Separate, dstAlpha)
	v = conv.DstTransform(v)

	out := c.with(v)
	out.space, out.alpha = dst, dstAlpha
	return out, nil
}

// ConvertState moves c to state dst by applying f to its color
// components. Only linear spaces have a meaningful state.
func (c Color) ConvertState(dst State, f func(colorsci.Vec3) colorsci.Vec3) (Color, error) {
	if err := c.Validate(); err != nil {
		return Color{}, err
	} else if !dst.Valid() {
		return Color{}, invalid("unknown state %d", uint8(dst))
	} else if !c.space.IsLinear() {
		return Color{}, &ConversionError{
			Err:         ErrStateChangeInNonlinearSpace,
			Space:       c.space,
			State:       c.state,
			TargetState: dst,
		}
	}

	v, _ := c.vec()
	out := c.with(f(v))
	out.state = dst
	return out, nil
}

// Tonemap brings a scene-referred color to the display with op.
func (c Color) Tonemap(op tonemap.Operator) (Color, error) {
	if err := c.Validate(); err != nil {
		return Color{}, err
	} else if c.state != Scene {
		return Color{}, &ConversionError{
			Err:         ErrTonemapInDisplayState,
			Space:       c.space,
			State:       c.state,
			TargetState: Display,
		}
	} else if !c.space.IsLinear() {
		return Color{}, &ConversionError{
			Err:         ErrStateChangeInNonlinearSpace,
			Space:       c.space,
			State:       c.state,
			TargetState: Display,
		}
	}

	v, a := c.vec()
	v = alpha.Convert(v, a, c.alpha, alpha.Separate)
	v = space.Convert(v, c.space, op.Space())
	v = op.Tonemap(v)
	v = space.Convert(v, op.Space(), c.space)
	v = alpha.Convert(v, a, alpha.Separate, c.alpha)

	out := c.with(v)
	out.state = Display
	return out, nil
}
