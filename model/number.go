package model

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Number is a float value paired with the decimal precision at which it is reported.
// All construction paths round the underlying value to the declared precision so a
// Number never carries more decimal digits than its precision allows.
type Number struct {
	value     float64
	precision int8
}

// AsFloat gives a float64 representation
func (n Number) AsFloat() float64 {
	return n.value
}

// Precision gives the precision of the Number
func (n Number) Precision() int8 {
	return n.precision
}

// AsString gives a string representation at the Number's precision
func (n Number) AsString() string {
	return strconv.FormatFloat(n.value, 'f', int(n.precision), 64)
}

// String is the Stringer interface impl.
func (n Number) String() string {
	return n.AsString()
}

// Abs returns the absolute value of the number at the same precision
func (n Number) Abs() *Number {
	if n.value < 0 {
		return NumberFromFloat(-n.value, n.precision)
	}
	return &n
}

// Add returns a new Number after adding the passed in Number, keeping the smaller precision
func (n Number) Add(n2 Number) *Number {
	return NumberFromFloat(n.value+n2.value, minPrecision(n, n2))
}

// Subtract returns a new Number after subtracting out the passed in Number, keeping the smaller precision
func (n Number) Subtract(n2 Number) *Number {
	return NumberFromFloat(n.value-n2.value, minPrecision(n, n2))
}

// Multiply returns a new Number after multiplying with the passed in Number, keeping the smaller precision
func (n Number) Multiply(n2 Number) *Number {
	return NumberFromFloat(n.value*n2.value, minPrecision(n, n2))
}

// Divide returns a new Number after dividing by the passed in Number, keeping the smaller precision
func (n Number) Divide(n2 Number) *Number {
	return NumberFromFloat(n.value/n2.value, minPrecision(n, n2))
}

// Scale multiplies by a raw scalar, preserving the original precision
func (n Number) Scale(scaleFactor float64) *Number {
	return NumberFromFloat(n.value*scaleFactor, n.precision)
}

// NumberFromFloat makes a Number from a float by rounding half away from zero
func NumberFromFloat(f float64, precision int8) *Number {
	return &Number{
		value:     toFixed(f, precision, RoundHalfUp),
		precision: precision,
	}
}

// NumberFromFloatRoundTruncate makes a Number from a float by truncating digits beyond the precision
func NumberFromFloatRoundTruncate(f float64, precision int8) *Number {
	return &Number{
		value:     toFixed(f, precision, RoundTruncate),
		precision: precision,
	}
}

// NumberFromString makes a Number from a string, by calling NumberFromFloat
func NumberFromString(s string, precision int8) (*Number, error) {
	parsed, e := strconv.ParseFloat(s, 64)
	if e != nil {
		return nil, fmt.Errorf("cannot parse number from string '%s': %s", s, e)
	}
	return NumberFromFloat(parsed, precision), nil
}

// Rounding defines how digits beyond the target precision are handled
type Rounding int

// Rounding modes
const (
	RoundHalfUp Rounding = iota
	RoundTruncate
)

// toFixed goes through big.Rat to sidestep float64 representation drift when shifting
// the decimal point, e.g. 1.005*100 evaluating to 100.49999....
func toFixed(num float64, precision int8, rounding Rounding) float64 {
	shift := new(big.Rat).SetFloat64(math.Pow(10, float64(precision)))
	shifted := new(big.Rat).SetFloat64(num)
	shifted.Mul(shifted, shift)

	shiftedFloat, _ := shifted.Float64()
	var rounded int64
	switch rounding {
	case RoundHalfUp:
		rounded = int64(shiftedFloat + math.Copysign(0.5, shiftedFloat))
	case RoundTruncate:
		rounded = int64(shiftedFloat)
	default:
		panic(fmt.Sprintf("unknown rounding mode %v", rounding))
	}

	result := new(big.Rat).SetInt64(rounded)
	result.Quo(result, shift)
	f, _ := result.Float64()
	return f
}

func minPrecision(n1 Number, n2 Number) int8 {
	if n1.precision < n2.precision {
		return n1.precision
	}
	return n2.precision
}
