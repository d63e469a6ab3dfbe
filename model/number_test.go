package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberFromFloat(t *testing.T) {
	testCases := []struct {
		f          float64
		precision  int8
		wantString string
		wantFloat  float64
	}{
		{
			f:          1.1,
			precision:  1,
			wantString: "1.1",
			wantFloat:  1.1,
		}, {
			f:          1.1,
			precision:  2,
			wantString: "1.10",
			wantFloat:  1.10,
		}, {
			f:          1.12,
			precision:  1,
			wantString: "1.1",
			wantFloat:  1.1,
		}, {
			f:          1.16,
			precision:  1,
			wantString: "1.2",
			wantFloat:  1.2,
		}, {
			f:          0.12,
			precision:  1,
			wantString: "0.1",
			wantFloat:  0.1,
		}, {
			f:          9900.0,
			precision:  2,
			wantString: "9900.00",
			wantFloat:  9900.0,
		},
	}

	for _, kase := range testCases {
		t.Run(fmt.Sprintf("%f_%d", kase.f, kase.precision), func(t *testing.T) {
			n := NumberFromFloat(kase.f, kase.precision)
			if !assert.Equal(t, kase.wantString, n.AsString()) {
				return
			}
			if !assert.Equal(t, kase.wantFloat, n.AsFloat()) {
				return
			}
			assert.Equal(t, kase.precision, n.Precision())
		})
	}
}

func TestNumberFromFloatRoundTruncate(t *testing.T) {
	testCases := []struct {
		f          float64
		precision  int8
		wantString string
	}{
		{
			f:          1.19,
			precision:  1,
			wantString: "1.1",
		}, {
			f:          1.15,
			precision:  1,
			wantString: "1.1",
		}, {
			f:          0.00000001,
			precision:  8,
			wantString: "0.00000001",
		}, {
			f:          2.999999999,
			precision:  8,
			wantString: "2.99999999",
		}, {
			f:          -0.005,
			precision:  2,
			wantString: "0.00",
		},
	}

	for _, kase := range testCases {
		t.Run(fmt.Sprintf("%f_%d", kase.f, kase.precision), func(t *testing.T) {
			n := NumberFromFloatRoundTruncate(kase.f, kase.precision)
			assert.Equal(t, kase.wantString, n.AsString())
		})
	}
}

func TestNumberMath(t *testing.T) {
	testCases := []struct {
		n1           *Number
		n2           *Number
		wantAdd      float64
		wantSubtract float64
		wantMultiply float64
		wantDivide   float64
	}{
		{
			n1:           NumberFromFloat(1.1, 1),
			n2:           NumberFromFloat(2.1, 1),
			wantAdd:      3.2,
			wantSubtract: -1.0,
			wantMultiply: 2.3,
			wantDivide:   0.5,
		}, {
			n1:           NumberFromFloat(10000.00, 2),
			n2:           NumberFromFloat(100.00, 2),
			wantAdd:      10100.0,
			wantSubtract: 9900.0,
			wantMultiply: 1000000.0,
			wantDivide:   100.0,
		},
	}

	for _, kase := range testCases {
		t.Run(fmt.Sprintf("%s_%s", kase.n1.AsString(), kase.n2.AsString()), func(t *testing.T) {
			assert.Equal(t, kase.wantAdd, kase.n1.Add(*kase.n2).AsFloat())
			assert.Equal(t, kase.wantSubtract, kase.n1.Subtract(*kase.n2).AsFloat())
			assert.Equal(t, kase.wantMultiply, kase.n1.Multiply(*kase.n2).AsFloat())
			assert.Equal(t, kase.wantDivide, kase.n1.Divide(*kase.n2).AsFloat())
		})
	}
}

func TestNumberAbs(t *testing.T) {
	assert.Equal(t, 1.5, NumberFromFloat(-1.5, 1).Abs().AsFloat())
	assert.Equal(t, 1.5, NumberFromFloat(1.5, 1).Abs().AsFloat())
}

func TestNumberFromString(t *testing.T) {
	n, e := NumberFromString("12.346", 2)
	if !assert.NoError(t, e) {
		return
	}
	assert.Equal(t, "12.35", n.AsString())

	_, e = NumberFromString("not-a-number", 2)
	assert.Error(t, e)
}
