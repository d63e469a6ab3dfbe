package api

import (
	"github.com/mitchellh/mapstructure"
)

// Recognized dtype values for the numeric precision of observation arrays
const (
	DTypeFloat16 = "float16"
	DTypeFloat32 = "float32"
	DTypeFloat64 = "float64"
)

var recognizedDTypes = map[string]bool{
	DTypeFloat16: true,
	DTypeFloat32: true,
	DTypeFloat64: true,
}

// Config is the uniform configuration surface consumed by every exchange variant. It is
// immutable after construction: variants read from this record instead of hard-coding
// values, which is what lets a consuming environment swap exchange implementations without
// code changes.
type Config struct {
	// BaseInstrument is the unit of account for balances and pricing
	BaseInstrument string `toml:"base_instrument" mapstructure:"base_instrument"`
	// DType is the numeric precision of observation arrays (float16 / float32 / float64)
	DType string `toml:"dtype" mapstructure:"dtype"`
	// CommissionPercent is the percent of trade value deducted as fee
	CommissionPercent float64 `toml:"commission_percent" mapstructure:"commission_percent"`
	// BasePrecision is the decimal digits retained when reporting base instrument amounts
	BasePrecision int8 `toml:"base_precision" mapstructure:"base_precision"`
	// InstrumentPrecision is the decimal digits retained when reporting traded instrument amounts
	InstrumentPrecision int8 `toml:"instrument_precision" mapstructure:"instrument_precision"`
	// InitialBalance is the starting base instrument balance
	InitialBalance float64 `toml:"initial_balance" mapstructure:"initial_balance"`
	// MinOrderAmount is the smallest order size the exchange accepts
	MinOrderAmount float64 `toml:"min_order_amount" mapstructure:"min_order_amount"`
	// WindowSize is the number of historical rows exposed per observation
	WindowSize int `toml:"window_size" mapstructure:"window_size"`
	// MinTradePrice / MaxTradePrice bound the acceptable requested price
	MinTradePrice float64 `toml:"min_trade_price" mapstructure:"min_trade_price"`
	MaxTradePrice float64 `toml:"max_trade_price" mapstructure:"max_trade_price"`
	// MinTradeAmount / MaxTradeAmount bound the acceptable requested amount
	MinTradeAmount float64 `toml:"min_trade_amount" mapstructure:"min_trade_amount"`
	MaxTradeAmount float64 `toml:"max_trade_amount" mapstructure:"max_trade_amount"`
	// MaxAllowedSlippagePercent bounds how far a fill price may deviate from the requested price
	MaxAllowedSlippagePercent float64 `toml:"max_allowed_slippage_percent" mapstructure:"max_allowed_slippage_percent"`
	// SlippageModel names the slippage model implementation to instantiate
	SlippageModel string `toml:"slippage_model" mapstructure:"slippage_model"`
	// FeaturePipeline is an optional transform applied to observations before they reach
	// the caller; opaque to the exchange and only settable programmatically
	FeaturePipeline FeaturePipeline `toml:"-" mapstructure:"feature_pipeline"`
}

// DefaultConfig returns the fully-populated default configuration. It is deterministic:
// two calls always produce identical values.
func DefaultConfig() Config {
	return Config{
		BaseInstrument:            "USD",
		DType:                     DTypeFloat16,
		CommissionPercent:         0.3,
		BasePrecision:             2,
		InstrumentPrecision:       8,
		InitialBalance:            10000,
		MinOrderAmount:            0.001,
		WindowSize:                1,
		MinTradePrice:             1e-6,
		MaxTradePrice:             1e6,
		MinTradeAmount:            1e-3,
		MaxTradeAmount:            1e6,
		MaxAllowedSlippagePercent: 1.0,
		SlippageModel:             "uniform",
	}
}

// MakeConfigFromMap merges any subset of recognized options over the defaults. Unknown keys
// are rejected with ErrConfiguration instead of being silently ignored. Value ranges are not
// checked here; that is deferred to the consuming exchange via Validate.
func MakeConfigFromMap(options map[string]interface{}) (Config, error) {
	cfg := DefaultConfig()

	decoder, e := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if e != nil {
		return Config{}, MakeErrConfiguration("cannot make options decoder: %s", e)
	}

	if e = decoder.Decode(options); e != nil {
		return Config{}, MakeErrConfiguration("cannot merge options over defaults: %s", e)
	}
	return cfg, nil
}

// Validate checks the value ranges of the configuration, returning ErrConfiguration on the
// first violation. Exchange constructors call this before using the config.
func (c Config) Validate() error {
	if c.BaseInstrument == "" {
		return MakeErrConfiguration("base_instrument cannot be empty")
	}
	if !recognizedDTypes[c.DType] {
		return MakeErrConfiguration("unrecognized dtype '%s'", c.DType)
	}
	if c.CommissionPercent < 0 || c.CommissionPercent >= 100 {
		return MakeErrConfiguration("commission_percent must be in [0, 100), was %f", c.CommissionPercent)
	}
	if c.BasePrecision < 0 || c.InstrumentPrecision < 0 {
		return MakeErrConfiguration("precisions cannot be negative (base_precision=%d, instrument_precision=%d)", c.BasePrecision, c.InstrumentPrecision)
	}
	if c.InitialBalance < 0 {
		return MakeErrConfiguration("initial_balance cannot be negative, was %f", c.InitialBalance)
	}
	if c.MinOrderAmount <= 0 {
		return MakeErrConfiguration("min_order_amount must be positive, was %f", c.MinOrderAmount)
	}
	if c.WindowSize < 1 {
		return MakeErrConfiguration("window_size must be at least 1, was %d", c.WindowSize)
	}
	if c.MinTradePrice <= 0 || c.MinTradePrice >= c.MaxTradePrice {
		return MakeErrConfiguration("trade price bounds must satisfy 0 < min < max, were [%f, %f]", c.MinTradePrice, c.MaxTradePrice)
	}
	if c.MinTradeAmount <= 0 || c.MinTradeAmount >= c.MaxTradeAmount {
		return MakeErrConfiguration("trade amount bounds must satisfy 0 < min < max, were [%f, %f]", c.MinTradeAmount, c.MaxTradeAmount)
	}
	// 100 or more would let a sell slip to a non-positive fill price
	if c.MaxAllowedSlippagePercent < 0 || c.MaxAllowedSlippagePercent >= 100 {
		return MakeErrConfiguration("max_allowed_slippage_percent must be in [0, 100), was %f", c.MaxAllowedSlippagePercent)
	}
	if c.SlippageModel == "" {
		return MakeErrConfiguration("slippage_model cannot be empty")
	}
	return nil
}
