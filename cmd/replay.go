package cmd

import (
	"log"
	"math/rand"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tradegym/marketsim/api"
	"github.com/tradegym/marketsim/model"
	"github.com/tradegym/marketsim/plugins"
	"github.com/tradegym/marketsim/support/csvdata"
	"github.com/tradegym/marketsim/support/logger"
)

var replayCmd = &cobra.Command{
	Use:     "replay",
	Short:   "Replays a historical price series through a simulated exchange driven by a random agent",
	Example: "  marketsim replay --data prices.csv --conf exchange.toml",
}

func init() {
	dataPath := replayCmd.Flags().StringP("data", "d", "", "path to the CSV price series (required)")
	confPath := replayCmd.Flags().StringP("conf", "c", "", "path to a TOML file of exchange options (defaults used when omitted)")
	traded := replayCmd.Flags().StringP("traded", "t", "BTC", "code of the traded instrument")
	amount := replayCmd.Flags().Float64P("amount", "a", 0.01, "order amount requested on each step")
	seed := replayCmd.Flags().Int64P("seed", "s", 0, "seed for the slippage model and the random agent (0 = time-seeded)")
	e := replayCmd.MarkFlagRequired("data")
	if e != nil {
		log.Fatal(e)
	}

	replayCmd.Run = func(ccmd *cobra.Command, args []string) {
		e := runReplay(*dataPath, *confPath, model.Instrument(*traded), *amount, *seed)
		if e != nil {
			log.Fatal(e)
		}
	}
}

func runReplay(dataPath string, confPath string, traded model.Instrument, amount float64, seed int64) error {
	l := logger.MakeBasicLogger()

	cfg, e := loadConfig(confPath)
	if e != nil {
		return e
	}

	series, e := csvdata.ReadPriceSeries(dataPath)
	if e != nil {
		return e
	}
	l.Infof("loaded %d price rows from %s", series.Len(), dataPath)

	var r *rand.Rand
	if seed != 0 {
		r = rand.New(rand.NewSource(seed))
	}
	exchange, e := plugins.MakeSimulatedExchange(cfg, traded, series, r, l)
	if e != nil {
		return errors.Wrap(e, "cannot make simulated exchange")
	}
	exchange.AddFillHandler(plugins.MakeFillLogger(l))

	agent := rand.New(rand.NewSource(seed + 1))
	sides := []model.TradeSide{model.TradeSideBuy, model.TradeSideSell, model.TradeSideHold}
	for exchange.HasNextObservation() {
		obs, e := exchange.NextObservation()
		if e != nil {
			return errors.Wrap(e, "cannot read next observation")
		}
		if !exchange.HasNextObservation() {
			// terminal observation, no action follows it
			break
		}

		price := obs.Rows[len(obs.Rows)-1].Price
		side := sides[agent.Intn(len(sides))]
		if _, e = exchange.ExecuteTrade(side, amount, price); e != nil {
			l.Errorf("order rejected on step %d: %s", obs.Step, e)
		}
	}

	worth, e := exchange.GetNetWorth()
	if e != nil {
		return errors.Wrap(e, "cannot compute net worth")
	}
	l.Infof("replay finished: %s, net worth %s %s, %d trades executed",
		exchange.GetBalance(), worth, cfg.BaseInstrument, len(exchange.GetTradeHistory()))
	return nil
}

// loadConfig reads the TOML option file as a flat map and merges it over the defaults, so
// unknown keys in the file are rejected the same way they are for programmatic options.
func loadConfig(confPath string) (api.Config, error) {
	if confPath == "" {
		return api.DefaultConfig(), nil
	}

	options := map[string]interface{}{}
	if _, e := toml.DecodeFile(confPath, &options); e != nil {
		return api.Config{}, errors.Wrap(e, "cannot read config file")
	}

	cfg, e := api.MakeConfigFromMap(options)
	if e != nil {
		return api.Config{}, errors.Wrapf(e, "cannot apply config file %s", confPath)
	}
	return cfg, nil
}
