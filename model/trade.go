package model

import "fmt"

// TradeSide is the side of a requested trade: buy / sell / hold
type TradeSide int8

// These are the available trade sides. Hold exists so an agent that decides to do nothing
// still produces a well-formed execution result.
const (
	TradeSideBuy  TradeSide = 0
	TradeSideSell TradeSide = 1
	TradeSideHold TradeSide = 2
)

// IsBuy returns true for buy sides
func (s TradeSide) IsBuy() bool {
	return s == TradeSideBuy
}

// IsSell returns true for sell sides
func (s TradeSide) IsSell() bool {
	return s == TradeSideSell
}

// IsHold returns true for hold sides
func (s TradeSide) IsHold() bool {
	return s == TradeSideHold
}

// String is the stringer function
func (s TradeSide) String() string {
	switch s {
	case TradeSideBuy:
		return "buy"
	case TradeSideSell:
		return "sell"
	case TradeSideHold:
		return "hold"
	}
	return "error, unrecognized trade side"
}

var tradeSideMap = map[string]TradeSide{
	"buy":  TradeSideBuy,
	"sell": TradeSideSell,
	"hold": TradeSideHold,
}

// TradeSideFromString is a convenience to convert from common strings to the corresponding TradeSide
func TradeSideFromString(s string) (TradeSide, error) {
	side, ok := tradeSideMap[s]
	if !ok {
		return TradeSideHold, fmt.Errorf("unrecognized trade side string: %s", s)
	}
	return side, nil
}

// TransactionID is typed for the concept of a transaction ID of an executed trade
type TransactionID string

// String is the stringer function
func (t *TransactionID) String() string {
	return string(*t)
}

// MakeTransactionID is a factory method for convenience
func MakeTransactionID(s string) *TransactionID {
	t := TransactionID(s)
	return &t
}

// Trade is the immutable record of one completed execution request
type Trade struct {
	TransactionID   *TransactionID
	Pair            *InstrumentPair
	Side            TradeSide
	RequestedAmount *Number
	RequestedPrice  *Number
	FillAmount      *Number
	FillPrice       *Number
	Commission      *Number
	Step            int
	Timestamp       *Timestamp
}

// String is the stringer function
func (t Trade) String() string {
	tsString := "<nil>"
	if t.Timestamp != nil {
		tsString = fmt.Sprintf("%d", t.Timestamp.AsInt64())
	}

	return fmt.Sprintf("Trade[txid=%s, pair=%s, side=%s, reqAmount=%s, reqPrice=%s, fillAmount=%s, fillPrice=%s, commission=%s, step=%d, ts=%s]",
		checkedString(t.TransactionID),
		t.Pair,
		t.Side,
		checkedString(t.RequestedAmount),
		checkedString(t.RequestedPrice),
		checkedString(t.FillAmount),
		checkedString(t.FillPrice),
		checkedString(t.Commission),
		t.Step,
		tsString,
	)
}

// Balance is a point-in-time snapshot of the holdings owned by an exchange instance
type Balance struct {
	// Base is the holding of the base (unit of account) instrument
	Base *Number
	// Traded is the holding of the traded instrument
	Traded *Number
}

// String is the stringer function
func (b Balance) String() string {
	return fmt.Sprintf("Balance[base=%s, traded=%s]", checkedString(b.Base), checkedString(b.Traded))
}

func checkedString(v fmt.Stringer) string {
	if v == nil {
		return "<nil>"
	}
	return v.String()
}
