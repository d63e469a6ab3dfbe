package plugins

import (
	"math/rand"
	"time"

	"github.com/tradegym/marketsim/api"
	"github.com/tradegym/marketsim/model"
)

// slippageModels maps the configuration tag of each slippage model to its factory method
var slippageModels = map[string]func(maxAllowedSlippagePercent float64, r *rand.Rand) api.SlippageModel{
	"uniform": MakeUniformSlippageModel,
	"fixed":   MakeFixedSlippageModel,
	"zero":    MakeZeroSlippageModel,
}

// MakeSlippageModel resolves a slippage model from its configuration tag. r is the random
// source for models that need one; passing nil uses a time-seeded source. Unknown tags fail
// with ErrConfiguration.
func MakeSlippageModel(tag string, maxAllowedSlippagePercent float64, r *rand.Rand) (api.SlippageModel, error) {
	makeFn, ok := slippageModels[tag]
	if !ok {
		return nil, api.MakeErrConfiguration("unrecognized slippage_model '%s'", tag)
	}
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return makeFn(maxAllowedSlippagePercent, r), nil
}

// slip moves the price against the trader by the given fraction: buys fill higher, sells
// fill lower, holds are untouched.
func slip(price float64, fraction float64, side model.TradeSide) float64 {
	if side.IsBuy() {
		return price * (1 + fraction)
	}
	if side.IsSell() {
		return price * (1 - fraction)
	}
	return price
}

// uniformSlippageModel draws the slippage fraction uniformly from [0, maxPct/100). The
// random source is its only state; it is the single source of randomness a test suite needs
// to control.
type uniformSlippageModel struct {
	maxAllowedSlippagePercent float64
	r                         *rand.Rand
}

var _ api.SlippageModel = &uniformSlippageModel{}

// MakeUniformSlippageModel is a factory method
func MakeUniformSlippageModel(maxAllowedSlippagePercent float64, r *rand.Rand) api.SlippageModel {
	return &uniformSlippageModel{
		maxAllowedSlippagePercent: maxAllowedSlippagePercent,
		r:                         r,
	}
}

// Apply impl.
func (m *uniformSlippageModel) Apply(requestedPrice float64, requestedAmount float64, side model.TradeSide) (float64, float64) {
	fraction := m.r.Float64() * m.maxAllowedSlippagePercent / 100
	return slip(requestedPrice, fraction, side), requestedAmount
}

// fixedSlippageModel always applies the full allowed slippage, i.e. the deterministic worst
// case within the bound.
type fixedSlippageModel struct {
	maxAllowedSlippagePercent float64
}

var _ api.SlippageModel = &fixedSlippageModel{}

// MakeFixedSlippageModel is a factory method. The random source is unused.
func MakeFixedSlippageModel(maxAllowedSlippagePercent float64, _ *rand.Rand) api.SlippageModel {
	return &fixedSlippageModel{
		maxAllowedSlippagePercent: maxAllowedSlippagePercent,
	}
}

// Apply impl.
func (m *fixedSlippageModel) Apply(requestedPrice float64, requestedAmount float64, side model.TradeSide) (float64, float64) {
	return slip(requestedPrice, m.maxAllowedSlippagePercent/100, side), requestedAmount
}

// zeroSlippageModel fills at exactly the requested price
type zeroSlippageModel struct {
}

var _ api.SlippageModel = &zeroSlippageModel{}

// MakeZeroSlippageModel is a factory method. Both parameters are unused.
func MakeZeroSlippageModel(_ float64, _ *rand.Rand) api.SlippageModel {
	return &zeroSlippageModel{}
}

// Apply impl.
func (m *zeroSlippageModel) Apply(requestedPrice float64, requestedAmount float64, side model.TradeSide) (float64, float64) {
	return requestedPrice, requestedAmount
}
