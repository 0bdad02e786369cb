package tonemap

import (
	"errors"
	"fmt"
	"math"

	"colorflow/colorsci"
	"colorflow/space"
)

// LottesParams configures the curve from Timothy Lottes' "Advanced
// Techniques and Optimization of HDR Color Pipelines".
type LottesParams struct {
	Contrast        float64 `toml:"contrast" json:"contrast"`
	Shoulder        float64 `toml:"shoulder" json:"shoulder"`
	MaxLuminance    float64 `toml:"max_luminance" json:"max_luminance"`
	GrayPointIn     float64 `toml:"gray_point_in" json:"gray_point_in"`
	GrayPointOut    float64 `toml:"gray_point_out" json:"gray_point_out"`
	CrossTalk       float64 `toml:"cross_talk" json:"cross_talk"`
	Saturation      float64 `toml:"saturation" json:"saturation"`
	CrossSaturation float64 `toml:"cross_saturation" json:"cross_saturation"`
}

func DefaultLottesParams() LottesParams {
	return LottesParams{
		Contrast:        2.35,
		Shoulder:        1,
		MaxLuminance:    150,
		GrayPointIn:     0.18,
		GrayPointOut:    0.18,
		CrossTalk:       10,
		Saturation:      1,
		CrossSaturation: 1.2,
	}
}

func (p LottesParams) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", name, v))
		}
	}

	positive("contrast", p.Contrast)
	positive("shoulder", p.Shoulder)
	positive("max luminance", p.MaxLuminance)
	positive("gray point in", p.GrayPointIn)
	positive("gray point out", p.GrayPointOut)
	positive("cross saturation", p.CrossSaturation)
	if p.CrossTalk < 0 {
		errs = append(errs, fmt.Errorf("cross talk must not be negative, got %g", p.CrossTalk))
	}
	if p.Saturation < 0 {
		errs = append(errs, fmt.Errorf("saturation must not be negative, got %g", p.Saturation))
	}
	if p.GrayPointOut >= 1 {
		errs = append(errs, fmt.Errorf("gray point out must be below 1, got %g", p.GrayPointOut))
	}
	if p.MaxLuminance <= p.GrayPointIn {
		errs = append(errs, fmt.Errorf("max luminance %g must exceed gray point in %g", p.MaxLuminance, p.GrayPointIn))
	}

	return errors.Join(errs...)
}

// Lottes is the Lottes operator with its curve coefficients solved from
// LottesParams. It works in linear sRGB.
type Lottes struct {
	params     LottesParams
	a, b, c, d float64
}

var _ Operator = (*Lottes)(nil)

func NewLottes(p LottesParams) (*Lottes, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid lottes parameters: %w", err)
	}

	a, d := p.Contrast, p.Shoulder
	giA := math.Pow(p.GrayPointIn, a)
	giAD := math.Pow(p.GrayPointIn, a*d)
	mlA := math.Pow(p.MaxLuminance, a)
	mlAD := math.Pow(p.MaxLuminance, a*d)
	denom := 1 / ((mlAD - giAD) * p.GrayPointOut)

	return &Lottes{
		params: p,
		a:      a,
		b:      (-giA + mlA*p.GrayPointOut) * denom,
		c:      (mlAD*giA - mlA*giAD*p.GrayPointOut) * denom,
		d:      d,
	}, nil
}

// DefaultLottes returns the operator for DefaultLottesParams.
func DefaultLottes() *Lottes {
	l, err := NewLottes(DefaultLottesParams())
	if err != nil {
		panic(err)
	}
	return l
}

func (l *Lottes) Params() LottesParams {
	return l.params
}

func (l *Lottes) Space() space.ID {
	return space.LinearSrgb
}

func (l *Lottes) curve(x float64) float64 {
	z := math.Pow(x, l.a)
	return z / (math.Pow(z, l.d)*l.b + l.c)
}

func (l *Lottes) Tonemap(v colorsci.Vec3) colorsci.Vec3 {
	peak := v.Max()
	if !(peak > 0) {
		return colorsci.Vec3{}
	}

	tm := l.curve(peak)
	shape := l.params.Saturation / l.params.CrossSaturation
	blend := math.Pow(tm, l.params.CrossTalk)

	var out colorsci.Vec3
	for i := range 3 {
		r := math.Pow(max(v[i]/peak, 0), shape)
		r += (1 - r) * blend
		r = math.Pow(r, l.params.CrossSaturation)
		out[i] = clamp01(r * tm)
	}
	return out
}
