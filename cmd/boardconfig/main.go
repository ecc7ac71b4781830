package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tomz197/asteroid-board/internal/asset"
	"github.com/tomz197/asteroid-board/internal/board/config"
	"github.com/tomz197/asteroid-board/internal/draw"
)

func main() {
	asJSON := flag.Bool("json", false, "print the configuration as JSON")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "boardconfig"})

	cfg, err := config.New(asset.Default())
	if err != nil {
		logger.Error("failed to build board config", "err", err)
		os.Exit(1)
	}

	if *asJSON {
		err = draw.WriteJSON(os.Stdout, cfg)
	} else {
		width := 0
		if draw.IsTerminal(os.Stdout) {
			width = draw.ReportWidth(draw.DefaultTermSizeFunc)
		}
		err = draw.WriteReportWidth(os.Stdout, cfg, width)
	}
	if err != nil {
		logger.Error("failed to write report", "err", err)
		os.Exit(1)
	}
}
