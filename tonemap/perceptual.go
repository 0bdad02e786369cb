package tonemap

import (
	"errors"
	"fmt"
	"math"

	"colorflow/colorsci"
	"colorflow/space"
)

type PerceptualParams struct {
	// Desaturation shapes how quickly saturated colors move toward the
	// achromatic axis.
	Desaturation float64 `toml:"desaturation" json:"desaturation"`
	// CrossTalk shapes how much the desaturated color wins as luminance
	// approaches display white.
	CrossTalk float64 `toml:"cross_talk" json:"cross_talk"`
}

func DefaultPerceptualParams() PerceptualParams {
	return PerceptualParams{
		Desaturation: 0.1,
		CrossTalk:    1.95,
	}
}

func (p PerceptualParams) Validate() error {
	var errs []error
	if !(p.Desaturation >= 0) {
		errs = append(errs, fmt.Errorf("desaturation must not be negative, got %g", p.Desaturation))
	}
	if !(p.CrossTalk >= 0) {
		errs = append(errs, fmt.Errorf("cross talk must not be negative, got %g", p.CrossTalk))
	}
	return errors.Join(errs...)
}

// Perceptual compresses intensity in ICtCp and desaturates bright colors
// along constant hue. It works in linear BT.2020.
type Perceptual struct {
	params PerceptualParams
}

var _ Operator = (*Perceptual)(nil)

func NewPerceptual(p PerceptualParams) (*Perceptual, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid perceptual parameters: %w", err)
	}
	return &Perceptual{params: p}, nil
}

func DefaultPerceptual() *Perceptual {
	return &Perceptual{params: DefaultPerceptualParams()}
}

func (p *Perceptual) Params() PerceptualParams {
	return p.params
}

func (p *Perceptual) Space() space.ID {
	return space.Bt2020
}

// perceptualCurve maps [0, inf) onto [0, 1).
func perceptualCurve(v float64) float64 {
	c := v + v*v + 0.5*v*v*v
	return c / (1 + c)
}

func (p *Perceptual) Tonemap(v colorsci.Vec3) colorsci.Vec3 {
	ictcp := colorsci.BT2020ToICtCpPQ(v, colorsci.D65)

	desat := perceptualCurve(math.Hypot(ictcp[1], ictcp[2]) * 2.4)
	tmLum := perceptualCurve(colorsci.PQEOTF(ictcp[0]))
	tmI := colorsci.PQInverseEOTF(tmLum)

	tm := colorsci.Vec3{tmI, ictcp[1], ictcp[2]}
	desatCol := tm.Lerp(colorsci.Vec3{tmI, 0, 0}, math.Pow(desat, p.params.Desaturation))
	out := tm.Lerp(desatCol, math.Pow(clamp01(tmLum), p.params.CrossTalk))

	return colorsci.ICtCpPQToBT2020(out, colorsci.D65)
}
