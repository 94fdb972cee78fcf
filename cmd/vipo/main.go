// Package main is the entry point for the VIPO Pareto frontier viewer.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/vipo/internal/config"
	"github.com/Faultbox/vipo/internal/frontier"
	"github.com/Faultbox/vipo/internal/logger"
	"github.com/Faultbox/vipo/internal/viewer"
)

func main() {
	os.Exit(run())
}

// run carries the exit code so deferred teardown still executes on every
// path; os.Exit in main would skip it.
func run() int {
	config.ParseFlags()

	if flag.NArg() != 1 {
		fmt.Printf("usage:\n%s [flags] <pareto frontier file>\n", os.Args[0])
		return 1
	}
	path := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	// Parse before opening any window so bad input fails fast.
	fr, err := frontier.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load frontier: %v\n", err)
		return 1
	}

	v, err := viewer.New(cfg, fr)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		return 1
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		return 1
	}

	logger.Info("viewer closed normally")
	return 0
}
