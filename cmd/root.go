package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

// build flags
var version string
var buildDate string

const rootShort = "marketsim is a pluggable market-simulation layer for RL trading environments."
const rootLong = `marketsim simulates order execution (fills, slippage, commission, precision rounding)
against historical price data, so an agent's trading decisions produce realistic
portfolio state transitions.`

// RootCmd is the main command for this repo
var RootCmd = &cobra.Command{
	Use:   "marketsim",
	Short: rootShort,
	Long:  rootLong,
	Run: func(ccmd *cobra.Command, args []string) {
		e := ccmd.Help()
		if e != nil {
			log.Fatal(e)
		}

		if version != "" {
			log.Printf("version: %s (built %s)", version, buildDate)
		}
	},
}

func init() {
	RootCmd.AddCommand(replayCmd)
}
