package plugins

import (
	"github.com/tradegym/marketsim/api"
	"github.com/tradegym/marketsim/model"
	"github.com/tradegym/marketsim/support/logger"
)

// FillLogger is a FillHandler that logs fills
type FillLogger struct {
	l logger.Logger
}

var _ api.FillHandler = &FillLogger{}

// MakeFillLogger is a factory method
func MakeFillLogger(l logger.Logger) api.FillHandler {
	return &FillLogger{
		l,
	}
}

// HandleFill impl.
func (f *FillLogger) HandleFill(trade model.Trade) error {
	f.l.Infof("step %d: filled %s %s of %s requested at %s (requested %s, commission %s)",
		trade.Step,
		trade.Side,
		trade.FillAmount.AsString(),
		trade.RequestedAmount.AsString(),
		trade.FillPrice.AsString(),
		trade.RequestedPrice.AsString(),
		trade.Commission.AsString(),
	)
	return nil
}
