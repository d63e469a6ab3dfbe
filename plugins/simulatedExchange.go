package plugins

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/tradegym/marketsim/api"
	"github.com/tradegym/marketsim/model"
	"github.com/tradegym/marketsim/support/logger"
)

// SimulatedExchange drives order execution from a historical price series, applying the
// configured slippage model, commission and precision rules to produce fills and update its
// balances. One instance is driven by exactly one caller; instances simulating in parallel
// each own their mutable state and may share the immutable price series by reference.
type SimulatedExchange struct {
	cfg          api.Config
	pair         *model.InstrumentPair
	slippage     api.SlippageModel
	series       *model.PriceSeries
	fillHandlers []api.FillHandler
	l            logger.Logger

	baseBalance   *model.Number
	tradedBalance *model.Number
	trades        []model.Trade
	step          int
}

// ensure it satisfies the full capability contract
var _ api.Exchange = &SimulatedExchange{}

// MakeSimulatedExchange is a factory method. series may be nil and set later via
// SetPriceSeries, but execution requests fail with ErrUnconfiguredExchange until it exists.
// r seeds the slippage model's randomness (nil uses a time-seeded source) and l may be nil
// to disable logging.
func MakeSimulatedExchange(
	cfg api.Config,
	traded model.Instrument,
	series *model.PriceSeries,
	r *rand.Rand,
	l logger.Logger,
) (*SimulatedExchange, error) {
	if e := cfg.Validate(); e != nil {
		return nil, e
	}
	if traded == "" {
		return nil, api.MakeErrConfiguration("traded instrument cannot be empty")
	}

	slippage, e := MakeSlippageModel(cfg.SlippageModel, cfg.MaxAllowedSlippagePercent, r)
	if e != nil {
		return nil, e
	}

	x := &SimulatedExchange{
		cfg:      cfg,
		pair:     model.MakeInstrumentPair(model.Instrument(cfg.BaseInstrument), traded),
		slippage: slippage,
		series:   series,
		l:        l,
	}
	x.Reset()
	return x, nil
}

// SetPriceSeries assigns the price series driving the simulation. The series is read-only
// to the exchange from here on.
func (x *SimulatedExchange) SetPriceSeries(series *model.PriceSeries) {
	x.series = series
}

// AddFillHandler registers a handler invoked with every executed trade
func (x *SimulatedExchange) AddFillHandler(h api.FillHandler) {
	x.fillHandlers = append(x.fillHandlers, h)
}

// Reset reinitializes balances to the configured initial balance, clears the trade history
// and restarts the observation pass. Idempotent.
func (x *SimulatedExchange) Reset() {
	x.baseBalance = model.NumberFromFloatRoundTruncate(x.cfg.InitialBalance, x.cfg.BasePrecision)
	x.tradedBalance = model.NumberFromFloatRoundTruncate(0, x.cfg.InstrumentPrecision)
	x.trades = nil
	x.step = 0
}

// GetBalance impl.
func (x *SimulatedExchange) GetBalance() model.Balance {
	return model.Balance{
		Base:   x.baseBalance,
		Traded: x.tradedBalance,
	}
}

// GetNetWorth impl.
func (x *SimulatedExchange) GetNetWorth() (*model.Number, error) {
	if x.series == nil {
		return nil, api.MakeErrUnconfiguredExchange("price series")
	}

	// value holdings at the most recent available price once the pass is exhausted
	idx := x.step
	if idx >= x.series.Len() {
		idx = x.series.Len() - 1
	}
	row, _ := x.series.Row(idx)

	worth := x.baseBalance.AsFloat() + x.tradedBalance.AsFloat()*row.Price
	return model.NumberFromFloat(worth, x.cfg.BasePrecision), nil
}

// CurrentPrice impl.
func (x *SimulatedExchange) CurrentPrice(step int) (*model.Number, error) {
	if x.series == nil {
		return nil, api.MakeErrUnconfiguredExchange("price series")
	}

	row, ok := x.series.Row(step)
	if !ok {
		return nil, api.MakeErrOutOfRange(step, x.series.Len())
	}
	return model.NumberFromFloat(row.Price, x.cfg.InstrumentPrecision), nil
}

// GetTradeHistory impl.
func (x *SimulatedExchange) GetTradeHistory() []model.Trade {
	history := make([]model.Trade, len(x.trades))
	copy(history, x.trades)
	return history
}

// ExecuteTrade turns a requested order into a fill. Validation happens before any mutation
// so a failed request never leaves state partially updated. Insufficient balance is not a
// failure: the fill amount is clamped down to what the balance affords (possibly zero) so
// the caller always receives a definite outcome.
func (x *SimulatedExchange) ExecuteTrade(side model.TradeSide, amount float64, price float64) (*model.Trade, error) {
	if x.series == nil {
		return nil, api.MakeErrUnconfiguredExchange("price series")
	}
	row, ok := x.series.Row(x.step)
	if !ok {
		return nil, api.MakeErrOutOfRange(x.step, x.series.Len())
	}
	if e := x.validateOrder(amount, price); e != nil {
		return nil, e
	}

	if side.IsHold() {
		// zero-amount trade for bookkeeping symmetry, nothing mutated or recorded
		return x.makeTrade(side, amount, price, price, 0, 0, row.Timestamp), nil
	}

	fillPrice, fillAmount := x.slippage.Apply(price, amount, side)

	commissionRate := x.cfg.CommissionPercent / 100
	base := x.baseBalance.AsFloat()
	traded := x.tradedBalance.AsFloat()

	if side.IsBuy() {
		affordable := base / (fillPrice * (1 + commissionRate))
		if fillAmount > affordable {
			fillAmount = affordable
		}
	} else {
		if fillAmount > traded {
			fillAmount = traded
		}
	}
	// truncate so the fill never exceeds what the balance affords
	fillAmount = model.NumberFromFloatRoundTruncate(fillAmount, x.cfg.InstrumentPrecision).AsFloat()
	if fillAmount < 0 {
		fillAmount = 0
	}

	cost := fillPrice * fillAmount
	commission := cost * commissionRate

	if side.IsBuy() {
		base -= cost + commission
		traded += fillAmount
	} else {
		base += cost - commission
		traded -= fillAmount
	}

	x.baseBalance = model.NumberFromFloatRoundTruncate(base, x.cfg.BasePrecision)
	x.tradedBalance = model.NumberFromFloatRoundTruncate(traded, x.cfg.InstrumentPrecision)

	t := x.makeTrade(side, amount, price, fillPrice, fillAmount, commission, row.Timestamp)
	x.trades = append(x.trades, *t)
	x.notifyFillHandlers(*t)
	return t, nil
}

// HasNextObservation impl.
func (x *SimulatedExchange) HasNextObservation() bool {
	return x.series != nil && x.step < x.series.Len()
}

// NextObservation impl.
func (x *SimulatedExchange) NextObservation() (*model.Observation, error) {
	if x.series == nil {
		return nil, api.MakeErrUnconfiguredExchange("price series")
	}
	if x.step >= x.series.Len() {
		return nil, api.MakeErrOutOfRange(x.step, x.series.Len())
	}

	rows := x.series.Window(x.step, x.cfg.WindowSize)
	obs := &model.Observation{
		Step: x.step,
		Rows: rows,
	}
	if x.cfg.FeaturePipeline != nil {
		features, e := x.cfg.FeaturePipeline.Transform(rows)
		if e != nil {
			return nil, fmt.Errorf("feature pipeline failed on step %d: %s", x.step, e)
		}
		obs.Features = features
	}

	x.step++
	return obs, nil
}

func (x *SimulatedExchange) validateOrder(amount float64, price float64) error {
	if amount < x.cfg.MinTradeAmount || amount > x.cfg.MaxTradeAmount {
		return api.MakeErrInvalidOrder("amount %f is outside the allowed range [%f, %f]", amount, x.cfg.MinTradeAmount, x.cfg.MaxTradeAmount)
	}
	if amount < x.cfg.MinOrderAmount {
		return api.MakeErrInvalidOrder("amount %f is below the minimum order amount %f", amount, x.cfg.MinOrderAmount)
	}
	if price < x.cfg.MinTradePrice || price > x.cfg.MaxTradePrice {
		return api.MakeErrInvalidOrder("price %f is outside the allowed range [%f, %f]", price, x.cfg.MinTradePrice, x.cfg.MaxTradePrice)
	}
	return nil
}

func (x *SimulatedExchange) makeTrade(
	side model.TradeSide,
	requestedAmount float64,
	requestedPrice float64,
	fillPrice float64,
	fillAmount float64,
	commission float64,
	ts model.Timestamp,
) *model.Trade {
	return &model.Trade{
		TransactionID:   model.MakeTransactionID(uuid.New().String()),
		Pair:            x.pair,
		Side:            side,
		RequestedAmount: model.NumberFromFloat(requestedAmount, x.cfg.InstrumentPrecision),
		RequestedPrice:  model.NumberFromFloat(requestedPrice, x.cfg.InstrumentPrecision),
		FillAmount:      model.NumberFromFloatRoundTruncate(fillAmount, x.cfg.InstrumentPrecision),
		FillPrice:       model.NumberFromFloat(fillPrice, x.cfg.InstrumentPrecision),
		Commission:      model.NumberFromFloat(commission, x.cfg.BasePrecision),
		Step:            x.step,
		Timestamp:       model.MakeTimestamp(ts.AsInt64()),
	}
}

func (x *SimulatedExchange) notifyFillHandlers(t model.Trade) {
	for _, h := range x.fillHandlers {
		if e := h.HandleFill(t); e != nil && x.l != nil {
			x.l.Errorf("fill handler failed: %s", e)
		}
	}
}
