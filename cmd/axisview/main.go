//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"axis/hal"
	"axis/internal/buildinfo"
	"axis/viewer"
)

func main() {
	var (
		cfg      hal.HeadlessConfig
		cfgPath  string
		scale    int
		logLevel string
		version  bool
	)
	flag.StringVar(&cfgPath, "config", "", "YAML scene file (defaults are used when empty).")
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&scale, "scale", 2, "Window pixel scale.")
	flag.StringVar(&logLevel, "log-level", "info", "debug|info|warn|error.")
	flag.BoolVar(&version, "version", false, "Print the build version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String("axisview"))
		return
	}

	logger, err := hal.NewLogger(logLevel)
	if err != nil {
		fatalf("%v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(logger, cfgPath, cfg, scale); err != nil {
		logger.Error("axisview", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(logger *zap.Logger, cfgPath string, hcfg hal.HeadlessConfig, scale int) error {
	vcfg := viewer.DefaultConfig()
	if cfgPath != "" {
		var err error
		if vcfg, err = viewer.LoadConfigFile(cfgPath); err != nil {
			return fmt.Errorf("config %s: %w", cfgPath, err)
		}
	}
	opts := hal.Options{Width: vcfg.Width, Height: vcfg.Height, Logger: logger}

	var appErr error
	newApp := func(h hal.HAL) func() error {
		a, err := viewer.New(h, vcfg)
		if err != nil {
			appErr = err
			return func() error { return err }
		}
		return a.Step
	}

	logger.Info("axisview starting", zap.String("version", buildinfo.Short()), zap.Bool("headless", hcfg.Enabled))

	var err error
	if hcfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, opts, newApp, hcfg)
	} else {
		err = hal.RunWindow(opts, scale, newApp)
	}
	switch {
	case appErr != nil:
		return appErr
	case err == nil, errors.Is(err, context.Canceled), errors.Is(err, viewer.ErrQuit):
		return nil
	}
	return err
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
