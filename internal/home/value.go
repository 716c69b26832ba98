package home

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind discriminates the scalar shapes a device setting may take.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindFlag
)

// Value is a closed scalar variant: exactly one of text, number or flag.
// Settings arrive from clients as bare JSON scalars and decode into this
// type; arrays, objects and null are rejected.
type Value struct {
	kind Kind
	text string
	num  float64
	flag bool
}

// Text wraps a string setting.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Number wraps a numeric setting.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Flag wraps a boolean setting.
func Flag(b bool) Value { return Value{kind: KindFlag, flag: b} }

// Kind reports which variant is populated.
func (v Value) Kind() Kind { return v.kind }

// Text returns the string payload and whether the value holds one.
func (v Value) Text() (string, bool) { return v.text, v.kind == KindText }

// Number returns the numeric payload and whether the value holds one.
func (v Value) Number() (float64, bool) { return v.num, v.kind == KindNumber }

// Flag returns the boolean payload and whether the value holds one.
func (v Value) Flag() (bool, bool) { return v.flag, v.kind == KindFlag }

// String renders the scalar for log lines and messages.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindFlag:
		return strconv.FormatBool(v.flag)
	default:
		return v.text
	}
}

// MarshalJSON renders the bare scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return json.Marshal(v.num)
	case KindFlag:
		return json.Marshal(v.flag)
	default:
		return json.Marshal(v.text)
	}
}

// UnmarshalJSON accepts a bare string, number or boolean and nothing else.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch scalar := raw.(type) {
	case string:
		*v = Text(scalar)
	case json.Number:
		f, err := scalar.Float64()
		if err != nil {
			return fmt.Errorf("setting value %q is not a finite number", scalar.String())
		}
		*v = Number(f)
	case bool:
		*v = Flag(scalar)
	default:
		return fmt.Errorf("setting value must be a string or number or boolean; got %s", string(data))
	}
	return nil
}

// Settings maps setting names to scalar values.
type Settings map[string]Value

// Merge returns the receiver with patch applied on top: existing keys are
// kept unless the patch overrides them and patch-only keys are added. The
// receiver is not modified.
func (s Settings) Merge(patch Settings) Settings {
	merged := make(Settings, len(s)+len(patch))
	for k, v := range s {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	return merged
}

// Clone copies s so callers never alias the stored map.
func (s Settings) Clone() Settings {
	if s == nil {
		return nil
	}
	out := make(Settings, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
