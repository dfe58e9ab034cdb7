package measurement

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	_ json.Marshaler   = Measurement{}
	_ json.Unmarshaler = (*Measurement)(nil)
	_ yaml.Marshaler   = Measurement{}
	_ yaml.Unmarshaler = (*Measurement)(nil)
)

// FromList builds a Measurement from a serialized numeric list:
//
//	[]          → 1 +0 -0
//	[v]         → v +0 -0
//	[v, e]      → v +e -e
//	[v, up, lo] → v +up -lo (further entries ignored)
func FromList(vals []float64) Measurement {
	switch len(vals) {
	case 0:
		return Measurement{central: 1}
	case 1:
		return Measurement{central: vals[0]}
	case 2:
		return New(vals[0], vals[1], vals[1])
	default:
		return New(vals[0], vals[1], vals[2])
	}
}

// MarshalJSON encodes m as [central, up, lo].
func (m Measurement) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{m.central, m.errUp, m.errLo})
}

// UnmarshalJSON decodes a 0–3+ element numeric list (see FromList).
func (m *Measurement) UnmarshalJSON(data []byte) error {
	var vals []float64
	if err := json.Unmarshal(data, &vals); err != nil {
		return measurementErrorf(opUnmarshal, joinBadList(err))
	}
	if vals == nil {
		return measurementErrorf(opUnmarshal, ErrBadList)
	}
	*m = FromList(vals)

	return nil
}

// MarshalYAML encodes m as a [central, up, lo] sequence.
func (m Measurement) MarshalYAML() (interface{}, error) {
	return []float64{m.central, m.errUp, m.errLo}, nil
}

// UnmarshalYAML decodes a numeric sequence (see FromList).
func (m *Measurement) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return measurementErrorf(opUnmarshal, ErrBadList)
	}
	var vals []float64
	if err := node.Decode(&vals); err != nil {
		return measurementErrorf(opUnmarshal, joinBadList(err))
	}
	*m = FromList(vals)

	return nil
}

// joinBadList tags a decoding failure with ErrBadList, keeping the cause.
func joinBadList(err error) error { return fmt.Errorf("%w: %w", ErrBadList, err) }
