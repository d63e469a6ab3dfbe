package main

import (
	"log"

	"github.com/tradegym/marketsim/cmd"
)

func main() {
	e := cmd.RootCmd.Execute()
	if e != nil {
		log.Fatal(e)
	}
}
