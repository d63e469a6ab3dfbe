package plugins

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tradegym/marketsim/api"
	"github.com/tradegym/marketsim/model"
)

func TestMakeSlippageModel(t *testing.T) {
	for _, tag := range []string{"uniform", "fixed", "zero"} {
		t.Run(tag, func(t *testing.T) {
			m, e := MakeSlippageModel(tag, 1.0, rand.New(rand.NewSource(42)))
			assert.NoError(t, e)
			assert.NotNil(t, m)
		})
	}

	t.Run("unknown tag", func(t *testing.T) {
		_, e := MakeSlippageModel("linear", 1.0, nil)
		if !assert.Error(t, e) {
			return
		}

		var errConfiguration *api.ErrConfiguration
		assert.True(t, errors.As(e, &errConfiguration))
	})
}

func TestUniformSlippageStaysWithinBound(t *testing.T) {
	maxPct := 1.0
	m := MakeUniformSlippageModel(maxPct, rand.New(rand.NewSource(42)))

	requestedPrice := 100.0
	requestedAmount := 5.0
	for i := 0; i < 1000; i++ {
		side := model.TradeSideBuy
		if i%2 == 1 {
			side = model.TradeSideSell
		}

		fillPrice, fillAmount := m.Apply(requestedPrice, requestedAmount, side)

		assert.Equal(t, requestedAmount, fillAmount)

		deviation := (fillPrice - requestedPrice) / requestedPrice
		if side.IsBuy() {
			// price moves against the buyer
			assert.True(t, deviation >= 0, fmt.Sprintf("buy slipped downwards: %f", deviation))
		} else {
			// price moves against the seller
			assert.True(t, deviation <= 0, fmt.Sprintf("sell slipped upwards: %f", deviation))
		}
		if deviation < 0 {
			deviation = -deviation
		}
		assert.True(t, deviation <= maxPct/100, fmt.Sprintf("slippage %f exceeds the bound %f", deviation, maxPct/100))
	}
}

func TestUniformSlippageIsSeedable(t *testing.T) {
	m1 := MakeUniformSlippageModel(1.0, rand.New(rand.NewSource(7)))
	m2 := MakeUniformSlippageModel(1.0, rand.New(rand.NewSource(7)))

	for i := 0; i < 100; i++ {
		p1, a1 := m1.Apply(100.0, 1.0, model.TradeSideBuy)
		p2, a2 := m2.Apply(100.0, 1.0, model.TradeSideBuy)
		assert.Equal(t, p1, p2)
		assert.Equal(t, a1, a2)
	}
}

func TestFixedSlippage(t *testing.T) {
	m := MakeFixedSlippageModel(2.0, nil)

	fillPrice, fillAmount := m.Apply(100.0, 3.0, model.TradeSideBuy)
	assert.Equal(t, 102.0, fillPrice)
	assert.Equal(t, 3.0, fillAmount)

	fillPrice, fillAmount = m.Apply(100.0, 3.0, model.TradeSideSell)
	assert.Equal(t, 98.0, fillPrice)
	assert.Equal(t, 3.0, fillAmount)
}

func TestZeroSlippage(t *testing.T) {
	m := MakeZeroSlippageModel(1.0, nil)

	for _, side := range []model.TradeSide{model.TradeSideBuy, model.TradeSideSell, model.TradeSideHold} {
		fillPrice, fillAmount := m.Apply(100.0, 3.0, side)
		assert.Equal(t, 100.0, fillPrice)
		assert.Equal(t, 3.0, fillAmount)
	}
}

func TestSlippageHoldLeavesPriceUntouched(t *testing.T) {
	for _, tag := range []string{"uniform", "fixed", "zero"} {
		t.Run(tag, func(t *testing.T) {
			m, e := MakeSlippageModel(tag, 5.0, rand.New(rand.NewSource(42)))
			if !assert.NoError(t, e) {
				return
			}

			fillPrice, _ := m.Apply(100.0, 1.0, model.TradeSideHold)
			assert.Equal(t, 100.0, fillPrice)
		})
	}
}
