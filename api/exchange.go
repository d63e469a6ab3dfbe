package api

import (
	"github.com/tradegym/marketsim/model"
)

// Account allows you to read the holdings owned by an exchange instance
type Account interface {
	// GetBalance reports the current base and traded instrument holdings. Pure read.
	GetBalance() model.Balance

	// GetNetWorth reports the base-instrument-denominated value of all holdings at the
	// current price. Pure read. Fails with ErrUnconfiguredExchange before a price series
	// is available.
	GetNetWorth() (*model.Number, error)
}

// PriceAPI is the interface for reading prices of the traded instrument
type PriceAPI interface {
	// CurrentPrice reports the traded instrument's price at the given step index.
	// Fails with ErrOutOfRange when step exceeds the available series.
	CurrentPrice(step int) (*model.Number, error)
}

// TradeAPI is the interface for requesting order execution
type TradeAPI interface {
	/*
		Input:
			side - buy, sell or hold
			amount - requested amount of the traded instrument
			price - requested price in base instrument units
		Output:
			Trade - the completed (possibly partially filled) execution record
			error - ErrInvalidOrder, ErrOutOfRange, ErrUnconfiguredExchange, or any other error
	*/
	ExecuteTrade(side model.TradeSide, amount float64, price float64) (*model.Trade, error)

	// GetTradeHistory returns the ordered history of executed trades since the last reset
	GetTradeHistory() []model.Trade
}

// ObservationAPI exposes the price data one window at a time as a lazy, single-pass-per-episode
// sequence, restartable only via Reset
type ObservationAPI interface {
	// HasNextObservation returns true while unconsumed rows remain
	HasNextObservation() bool

	// NextObservation returns the next window of (optionally feature-transformed) rows and
	// advances the step cursor. Fails with ErrOutOfRange once the series is exhausted.
	NextObservation() (*model.Observation, error)
}

// Exchange is the capability contract every exchange variant satisfies, independent of how
// prices are sourced. The surrounding environment depends only on this interface so data
// sources (simulated, replayed, live) can be substituted without touching caller code.
type Exchange interface {
	Account
	PriceAPI
	TradeAPI
	ObservationAPI

	// Reset reinitializes balances to the configured initial balance, clears the trade
	// history and restarts the observation pass. Idempotent.
	Reset()
}

// FillHandler is invoked with every trade the exchange executes
type FillHandler interface {
	HandleFill(trade model.Trade) error
}
