package model

import "fmt"

// Instrument is the typed code of a tradable or accounting instrument, e.g. "USD" or "BTC".
// The simulator is data-driven so any non-empty code is valid; concrete exchange adapters
// can restrict the set they understand.
type Instrument string

// String is the stringer function
func (i Instrument) String() string {
	return string(i)
}

// InstrumentPair is an ordered pair of the base (unit of account) instrument and the
// traded instrument priced in terms of it. BTC/USD quoted at 100 means 1 BTC costs 100 USD
// with USD as base and BTC as traded.
type InstrumentPair struct {
	// Base is the unit of account that balances and prices are denominated in
	Base Instrument
	// Traded is the instrument being bought and sold against the base
	Traded Instrument
}

// MakeInstrumentPair is a factory method
func MakeInstrumentPair(base Instrument, traded Instrument) *InstrumentPair {
	return &InstrumentPair{
		Base:   base,
		Traded: traded,
	}
}

// String is the stringer function
func (p InstrumentPair) String() string {
	return fmt.Sprintf("%s/%s", p.Traded, p.Base)
}
