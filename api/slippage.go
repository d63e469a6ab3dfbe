package api

import (
	"github.com/tradegym/marketsim/model"
)

// SlippageModel converts a requested order into the price and amount it would actually fill
// at. Implementations are parameterized at construction by the max allowed slippage percent
// and must keep |fillPrice - requestedPrice| / requestedPrice within that bound (as a
// fraction). fillAmount never exceeds requestedAmount.
type SlippageModel interface {
	Apply(requestedPrice float64, requestedAmount float64, side model.TradeSide) (fillPrice float64, fillAmount float64)
}
