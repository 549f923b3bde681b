package indicator

// Value is one oscillator sample. Warm-up positions (not enough history
// to compute the oscillator yet) carry Defined=false instead of a zero,
// so downstream comparisons can tell "no value" from "value of 0".
type Value struct {
	F       float64
	Defined bool
}

// Undefined is the marker for warm-up positions
var Undefined = Value{}

// NewValue wraps a computed oscillator sample
func NewValue(f float64) Value {
	return Value{F: f, Defined: true}
}
