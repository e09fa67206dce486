package tokenlist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ExtensionValue is the value of a user-defined token extension. The schema
// permits strings, numbers and booleans; a number is held as either a 64-bit
// signed integer or a 64-bit float depending on its wire form. There is no
// type tag on the wire; the JSON shape alone selects the variant.
type ExtensionValue struct {
	kind    extensionKind
	str     string
	integer int64
	float   float64
	boolean bool
}

type extensionKind int

const (
	kindString extensionKind = iota
	kindInteger
	kindFloat
	kindBoolean
)

// StringValue returns an ExtensionValue holding the given string.
func StringValue(s string) ExtensionValue {
	return ExtensionValue{kind: kindString, str: s}
}

// IntegerValue returns an ExtensionValue holding the given integer.
func IntegerValue(i int64) ExtensionValue {
	return ExtensionValue{kind: kindInteger, integer: i}
}

// FloatValue returns an ExtensionValue holding the given float.
func FloatValue(f float64) ExtensionValue {
	return ExtensionValue{kind: kindFloat, float: f}
}

// BoolValue returns an ExtensionValue holding the given boolean.
func BoolValue(b bool) ExtensionValue {
	return ExtensionValue{kind: kindBoolean, boolean: b}
}

// AsString returns the held string. The second return is false when the value
// is not a string; no conversion from other variants is performed.
func (e ExtensionValue) AsString() (string, bool) {
	return e.str, e.kind == kindString
}

// AsInt64 returns the held integer. The second return is false when the value
// is not an integer; floats and booleans are not coerced.
func (e ExtensionValue) AsInt64() (int64, bool) {
	return e.integer, e.kind == kindInteger
}

// AsFloat64 returns the held float. The second return is false when the value
// is not a float; integers are not coerced.
func (e ExtensionValue) AsFloat64() (float64, bool) {
	return e.float, e.kind == kindFloat
}

// AsBool returns the held boolean. The second return is false when the value
// is not a boolean.
func (e ExtensionValue) AsBool() (bool, bool) {
	return e.boolean, e.kind == kindBoolean
}

// MarshalJSON encodes the value in its minimal wire form. An integer never
// carries a decimal point; a float always carries a decimal marker so that it
// decodes back as a float.
func (e ExtensionValue) MarshalJSON() ([]byte, error) {
	switch e.kind {
	case kindString:
		encoded, err := json.Marshal(e.str)
		if err != nil {
			return nil, fmt.Errorf("failed to encode string extension value: %w", err)
		}

		return encoded, nil
	case kindInteger:
		return []byte(strconv.FormatInt(e.integer, 10)), nil
	case kindFloat:
		return []byte(formatFloat(e.float)), nil
	case kindBoolean:
		return []byte(strconv.FormatBool(e.boolean)), nil
	default:
		return nil, fmt.Errorf("unknown extension value kind: %d", e.kind)
	}
}

// UnmarshalJSON resolves the variant from the shape of the raw JSON value.
// Arrays and objects are not valid extension values.
func (e *ExtensionValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return errors.New("extension value is empty")
	}

	// a literal null leaves the value unchanged, per encoding/json convention;
	// null extension entries are represented by the map holding a nil pointer
	if string(trimmed) == "null" {
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("failed to decode string extension value: %w", err)
		}

		*e = StringValue(s)

		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return fmt.Errorf("failed to decode boolean extension value: %w", err)
		}

		*e = BoolValue(b)

		return nil
	case '{':
		return errors.New("extension values may not be objects")
	case '[':
		return errors.New("extension values may not be arrays")
	default:
		return e.unmarshalNumber(trimmed)
	}
}

// unmarshalNumber classifies a raw JSON number: no fractional or exponent
// part and within the signed 64-bit range means an integer; anything else is
// a float.
func (e *ExtensionValue) unmarshalNumber(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("failed to decode numeric extension value: %w", err)
	}

	if !strings.ContainsAny(n.String(), ".eE") {
		if i, err := n.Int64(); err == nil {
			*e = IntegerValue(i)

			return nil
		}
	}

	f, err := n.Float64()
	if err != nil {
		return fmt.Errorf("failed to decode numeric extension value '%s': %w", n, err)
	}

	*e = FloatValue(f)

	return nil
}

// formatFloat renders a float with an explicit decimal marker so that the
// value decodes back as a float rather than an integer.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}
