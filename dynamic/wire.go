package dynamic

import (
	"encoding/json"
	"fmt"

	"colorflow/alpha"
	"colorflow/space"
)

// Wire is the serialized form of a Color, used in JSON and TOML documents:
//
//	{"raw": [0.5, 0.25, 1], "space": "linear_srgb", "state": "scene"}
//
// AlphaState is set exactly when Raw has an alpha component. Reading a
// four component color without it assumes separate alpha.
type Wire struct {
	Raw        []float32    `json:"raw" toml:"raw"`
	Space      space.ID     `json:"space" toml:"space"`
	State      State        `json:"state" toml:"state"`
	AlphaState *alpha.State `json:"alpha_state,omitempty" toml:"alpha_state,omitempty"`
}

// Wire returns the serialized form of c.
func (c Color) Wire() Wire {
	w := Wire{
		Raw:   c.Raw(),
		Space: c.space,
		State: c.state,
	}
	if c.HasAlpha() {
		as := c.alpha
		w.AlphaState = &as
	}
	return w
}

// FromWire validates w and returns the color it describes.
func FromWire(w Wire) (Color, error) {
	switch len(w.Raw) {
	case 3:
		if w.AlphaState != nil {
			return Color{}, invalid("%s alpha without an alpha component", *w.AlphaState)
		}
		return New([3]float32(w.Raw), w.Space, w.State)
	case 4:
		as := alpha.Separate
		if w.AlphaState != nil {
			as = *w.AlphaState
		}
		return NewAlpha([4]float32(w.Raw), w.Space, w.State, as)
	default:
		return Color{}, invalid("%d components, want 3 or 4", len(w.Raw))
	}
}

func (c Color) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(c.Wire())
}

func (c *Color) UnmarshalJSON(b []byte) error {
	var w Wire
	if err := json.Unmarshal(b, &w); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidColor, err)
	}

	col, err := FromWire(w)
	if err != nil {
		return err
	}
	*c = col
	return nil
}
