package space

import (
	"fmt"

	"colorflow/colorsci"
)

// Conversion takes raw values of Src into Dst in three stages: decode into
// Src's linear space, change basis into Dst's linear space, encode into
// Dst. The stages always decode and encode, so a caller changing alpha
// state within one space still works in linear light; Apply alone skips
// them when Src and Dst are the same space.
type Conversion struct {
	Src, Dst ID

	decode, encode     colorsci.TransferFunc
	srcWhite, dstWhite colorsci.WhitePoint
	matrix             colorsci.Mat3
	sameBasis          bool
	same               bool
}

var conversions [numIDs][numIDs]Conversion

func init() {
	for src := LinearSrgb; src < numIDs; src++ {
		for dst := LinearSrgb; dst < numIDs; dst++ {
			conversions[src][dst] = newConversion(src, dst)
		}
	}
}

func newConversion(src, dst ID) Conversion {
	s, d := src.Descriptor(), dst.Descriptor()
	c := Conversion{
		Src:       src,
		Dst:       dst,
		srcWhite:  s.WhitePoint,
		dstWhite:  d.WhitePoint,
		matrix:    colorsci.Identity,
		sameBasis: true,
		same:      src == dst,
	}

	_, c.decode = colorsci.Transfer(s.Transfer)
	c.encode, _ = colorsci.Transfer(d.Transfer)

	if s.Primaries != d.Primaries || s.WhitePoint != d.WhitePoint {
		c.matrix = colorsci.BasisMatrix(s.Primaries, s.WhitePoint, d.Primaries, d.WhitePoint)
		c.sameBasis = false
	}

	return c
}

// Lookup returns the conversion from src to dst. Both must be valid.
func Lookup(src, dst ID) Conversion {
	if !src.Valid() || !dst.Valid() {
		panic(fmt.Sprintf("space: no conversion from %s to %s", src, dst))
	}
	return conversions[src][dst]
}

// SrcTransform decodes raw Src values into Src's linear space.
func (c Conversion) SrcTransform(v colorsci.Vec3) colorsci.Vec3 {
	return c.decode(v, c.srcWhite)
}

// LinearPart moves linear values from Src's basis into Dst's basis.
func (c Conversion) LinearPart(v colorsci.Vec3) colorsci.Vec3 {
	if c.sameBasis {
		return v
	}
	return c.matrix.MulVec(v)
}

// DstTransform encodes linear values of Dst's basis into Dst.
func (c Conversion) DstTransform(v colorsci.Vec3) colorsci.Vec3 {
	return c.encode(v, c.dstWhite)
}

// Matrix returns the basis change applied by LinearPart.
func (c Conversion) Matrix() colorsci.Mat3 {
	return c.matrix
}

// Apply runs all three stages. It returns v unchanged when Src and Dst are
// the same space.
func (c Conversion) Apply(v colorsci.Vec3) colorsci.Vec3 {
	if c.same {
		return v
	}
	return c.DstTransform(c.LinearPart(c.SrcTransform(v)))
}

// Convert is shorthand for Lookup(src, dst).Apply(v).
func Convert(v colorsci.Vec3, src, dst ID) colorsci.Vec3 {
	return Lookup(src, dst).Apply(v)
}
