package main

import (
	"fmt"
	"log"
	"os"

	"litecene/internal"
	"litecene/internal/common"
	"litecene/internal/ui"
)

func main() {
	ctx := common.WaitSignal()

	logger, err := internal.NewLogger("prod")
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	err = ui.NewConsole(ctx, logger).Run(ctx, os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
