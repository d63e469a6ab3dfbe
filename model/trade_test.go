package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTradeSideFromString(t *testing.T) {
	testCases := []struct {
		s        string
		wantSide TradeSide
		wantErr  bool
	}{
		{s: "buy", wantSide: TradeSideBuy},
		{s: "sell", wantSide: TradeSideSell},
		{s: "hold", wantSide: TradeSideHold},
		{s: "short", wantErr: true},
	}

	for _, kase := range testCases {
		t.Run(kase.s, func(t *testing.T) {
			side, e := TradeSideFromString(kase.s)
			if kase.wantErr {
				assert.Error(t, e)
				return
			}

			if !assert.NoError(t, e) {
				return
			}
			assert.Equal(t, kase.wantSide, side)
			assert.Equal(t, kase.s, side.String())
		})
	}
}

func TestTradeSidePredicates(t *testing.T) {
	assert.True(t, TradeSideBuy.IsBuy())
	assert.False(t, TradeSideBuy.IsSell())
	assert.True(t, TradeSideSell.IsSell())
	assert.True(t, TradeSideHold.IsHold())
	assert.False(t, TradeSideHold.IsBuy())
}
