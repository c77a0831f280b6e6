package o3as

import (
	"bytes"
	"math"
	"strconv"
)

// Value is a nullable float. Absent observations and empty statistics are
// Null; a Valid value may still hold NaN (e.g. a std band whose operand was null).
type Value struct {
	V     float64
	Valid bool
}

// Null is the absent value.
var Null = Value{}

// Some wraps v as a present value.
func Some(v float64) Value {
	return Value{V: v, Valid: true}
}

// FromReduced turns a reducer result into a Value, NaN becoming Null.
func FromReduced(v float64) Value {
	if math.IsNaN(v) {
		return Null
	}
	return Some(v)
}

// IsNull reports whether the value is absent.
func (v Value) IsNull() bool {
	return !v.Valid
}

// Float returns the numeric value, NaN for null.
func (v Value) Float() float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.V
}

// Add follows float arithmetic on the underlying values: a null operand yields NaN.
func (v Value) Add(o Value) Value {
	return Some(v.Float() + o.Float())
}

// Sub follows float arithmetic on the underlying values: a null operand yields NaN.
func (v Value) Sub(o Value) Value {
	return Some(v.Float() - o.Float())
}

// MarshalJSON writes null for absent and non-finite values, matching what
// chart consumers receive from a JSON-serialized NaN.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid || math.IsNaN(v.V) || math.IsInf(v.V, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v.V, 'f', -1, 64), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*v = Null
		return nil
	}
	f, err := strconv.ParseFloat(string(bytes.TrimSpace(data)), 64)
	if err != nil {
		return err
	}
	*v = Some(f)
	return nil
}
