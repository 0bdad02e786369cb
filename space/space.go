// Package space describes the color spaces known to colorflow and the
// three-stage conversion between any two of them.
package space

import (
	"fmt"

	"colorflow/colorsci"
)

// ID identifies a color space. The zero value is not a valid space.
type ID uint8

const (
	LinearSrgb ID = iota + 1
	EncodedSrgb
	CieXyz
	Bt2020
	EncodedBt2020
	EncodedBt2100PQ
	AcesCg
	Aces2065
	EncodedAcesCgSrgb
	DisplayP3
	EncodedDisplayP3
	Oklab
	Oklch
	ICtCpPQ
	numIDs
)

// Descriptor is the static description of a color space.
type Descriptor struct {
	ID   ID
	Key  string // stable text form
	Name string

	Primaries  colorsci.Primaries
	WhitePoint colorsci.WhitePoint
	Transfer   colorsci.TransferFn

	// LinearSpace is the space reached by undoing Transfer. It is the
	// space itself for linear spaces.
	LinearSpace ID
	Components  [3]string
	Perceptual  bool
}

// Linear reports whether the space has no transfer function.
func (d *Descriptor) Linear() bool {
	return d.Transfer == colorsci.None
}

// Working reports whether arithmetic on raw values is meaningful.
func (d *Descriptor) Working() bool {
	return d.Linear() || d.Perceptual
}

// Encoded reports whether the space is a display or transmission encoding,
// as opposed to a linear or perceptual working space.
func (d *Descriptor) Encoded() bool {
	switch d.Transfer {
	case colorsci.SRGB, colorsci.BT601, colorsci.PQ:
		return true
	default:
		return false
	}
}

var (
	rgb = [3]string{"r", "g", "b"}

	descriptors = [numIDs]Descriptor{
		LinearSrgb: {
			Key: "linear_srgb", Name: "Linear sRGB",
			Primaries: colorsci.BT709, WhitePoint: colorsci.D65,
			LinearSpace: LinearSrgb, Components: rgb,
		},
		EncodedSrgb: {
			Key: "encoded_srgb", Name: "Encoded sRGB",
			Primaries: colorsci.BT709, WhitePoint: colorsci.D65, Transfer: colorsci.SRGB,
			LinearSpace: LinearSrgb, Components: rgb,
		},
		CieXyz: {
			Key: "cie_xyz", Name: "CIE XYZ",
			Primaries: colorsci.CieXYZ, WhitePoint: colorsci.D65,
			LinearSpace: CieXyz, Components: [3]string{"x", "y", "z"},
		},
		Bt2020: {
			Key: "bt2020", Name: "BT.2020",
			Primaries: colorsci.BT2020, WhitePoint: colorsci.D65,
			LinearSpace: Bt2020, Components: rgb,
		},
		EncodedBt2020: {
			Key: "encoded_bt2020", Name: "Encoded BT.2020",
			Primaries: colorsci.BT2020, WhitePoint: colorsci.D65, Transfer: colorsci.BT601,
			LinearSpace: Bt2020, Components: rgb,
		},
		EncodedBt2100PQ: {
			Key: "encoded_bt2100_pq", Name: "Encoded BT.2100 PQ",
			Primaries: colorsci.BT2020, WhitePoint: colorsci.D65, Transfer: colorsci.PQ,
			LinearSpace: Bt2020, Components: rgb,
		},
		AcesCg: {
			Key: "aces_cg", Name: "ACEScg",
			Primaries: colorsci.AP1, WhitePoint: colorsci.D60,
			LinearSpace: AcesCg, Components: rgb,
		},
		Aces2065: {
			Key: "aces2065", Name: "ACES 2065-1",
			Primaries: colorsci.AP0, WhitePoint: colorsci.D60,
			LinearSpace: Aces2065, Components: rgb,
		},
		EncodedAcesCgSrgb: {
			Key: "encoded_aces_cg_srgb", Name: "Encoded ACEScg (sRGB curve)",
			Primaries: colorsci.AP1, WhitePoint: colorsci.D60, Transfer: colorsci.SRGB,
			LinearSpace: AcesCg, Components: rgb,
		},
		DisplayP3: {
			Key: "display_p3", Name: "Linear Display P3",
			Primaries: colorsci.P3, WhitePoint: colorsci.D65,
			LinearSpace: DisplayP3, Components: rgb,
		},
		EncodedDisplayP3: {
			Key: "encoded_display_p3", Name: "Encoded Display P3",
			Primaries: colorsci.P3, WhitePoint: colorsci.D65, Transfer: colorsci.SRGB,
			LinearSpace: DisplayP3, Components: rgb,
		},
		Oklab: {
			Key: "oklab", Name: "Oklab",
			Primaries: colorsci.CieXYZ, WhitePoint: colorsci.D65, Transfer: colorsci.Oklab,
			LinearSpace: CieXyz, Components: [3]string{"l", "a", "b"}, Perceptual: true,
		},
		Oklch: {
			Key: "oklch", Name: "Oklch",
			Primaries: colorsci.CieXYZ, WhitePoint: colorsci.D65, Transfer: colorsci.Oklch,
			LinearSpace: CieXyz, Components: [3]string{"l", "c", "h"},
		},
		ICtCpPQ: {
			Key: "ictcp_pq", Name: "ICtCp PQ",
			Primaries: colorsci.BT2020, WhitePoint: colorsci.D65, Transfer: colorsci.ICtCpPQ,
			LinearSpace: Bt2020, Components: [3]string{"i", "ct", "cp"},
		},
	}

	byKey = map[string]ID{}
)

func init() {
	for id := LinearSrgb; id < numIDs; id++ {
		descriptors[id].ID = id
		byKey[descriptors[id].Key] = id
	}
}

// All returns every known space in declaration order.
func All() []ID {
	ids := make([]ID, 0, numIDs-1)
	for id := LinearSrgb; id < numIDs; id++ {
		ids = append(ids, id)
	}
	return ids
}

func (id ID) Valid() bool {
	return id >= LinearSrgb && id < numIDs
}

// Descriptor returns the static description of id. It panics on an
// invalid id.
func (id ID) Descriptor() *Descriptor {
	if !id.Valid() {
		panic(fmt.Sprintf("space: invalid id %d", uint8(id)))
	}
	return &descriptors[id]
}

func (id ID) IsLinear() bool {
	return id.Valid() && descriptors[id].Linear()
}

func (id ID) IsWorking() bool {
	return id.Valid() && descriptors[id].Working()
}

func (id ID) LinearSpace() ID {
	return id.Descriptor().LinearSpace
}

func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("space(%d)", uint8(id))
	}
	return descriptors[id].Key
}

func (id ID) MarshalText() ([]byte, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("invalid color space %d", uint8(id))
	}
	return []byte(descriptors[id].Key), nil
}

func (id *ID) UnmarshalText(b []byte) error {
	v, ok := byKey[string(b)]
	if !ok {
		return fmt.Errorf("unknown color space %q", string(b))
	}
	*id = v
	return nil
}

// Parse returns the space whose text form is s.
func Parse(s string) (ID, error) {
	var id ID
	err := id.UnmarshalText([]byte(s))
	return id, err
}
