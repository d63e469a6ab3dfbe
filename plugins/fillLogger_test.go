package plugins

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tradegym/marketsim/model"
)

type capturingLogger struct {
	lines []string
}

func (l *capturingLogger) Info(msg string)  { l.lines = append(l.lines, msg) }
func (l *capturingLogger) Error(msg string) { l.lines = append(l.lines, msg) }

func (l *capturingLogger) Infof(msg string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(msg, args...))
}

func (l *capturingLogger) Errorf(msg string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(msg, args...))
}

func TestFillLoggerLogsFillContext(t *testing.T) {
	l := &capturingLogger{}
	handler := MakeFillLogger(l)

	trade := model.Trade{
		TransactionID:   model.MakeTransactionID("test-tx"),
		Pair:            model.MakeInstrumentPair("USD", "BTC"),
		Side:            model.TradeSideBuy,
		RequestedAmount: model.NumberFromFloat(5.0, 8),
		RequestedPrice:  model.NumberFromFloat(100.0, 8),
		FillAmount:      model.NumberFromFloat(2.0, 8),
		FillPrice:       model.NumberFromFloat(100.5, 8),
		Commission:      model.NumberFromFloat(0.6, 2),
		Step:            3,
		Timestamp:       model.MakeTimestamp(4000),
	}

	e := handler.HandleFill(trade)
	if !assert.NoError(t, e) {
		return
	}

	if !assert.Equal(t, 1, len(l.lines)) {
		return
	}
	assert.True(t, strings.Contains(l.lines[0], "step 3"), l.lines[0])
	assert.True(t, strings.Contains(l.lines[0], "buy"), l.lines[0])
	assert.True(t, strings.Contains(l.lines[0], "2.00000000"), l.lines[0])
}
