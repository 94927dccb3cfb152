//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"dodgebit/app"
	"dodgebit/hal"
)

func main() {
	var (
		configPath string
		headless   bool
		hz         int
		ticks      uint64
		fast       bool
		autoplay   bool
		seed       uint64
		stream     string
	)
	flag.StringVar(&configPath, "config", "", "YAML simulator config file.")
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&hz, "hz", 30, "Terminal redraw rate in headless mode (0 = no drawing).")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&fast, "fast", false, "Skip the 1 ms tick delay.")
	flag.BoolVar(&autoplay, "autoplay", false, "Drive the buttons from fixed pulse trains.")
	flag.Uint64Var(&seed, "seed", 0, "Fixed random seed (0 = random).")
	flag.StringVar(&stream, "stream", "", "Serve the LED stream on this address, e.g. :8080.")
	flag.Parse()

	cfg := hal.DefaultHostConfig()
	if configPath != "" {
		var err error
		if cfg, err = hal.LoadHostConfig(configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "headless":
			cfg.Headless.Enabled = headless
		case "hz":
			cfg.Headless.Hz = hz
		case "ticks":
			cfg.Headless.Ticks = ticks
		case "fast":
			cfg.Headless.Fast = fast
		case "autoplay":
			cfg.Headless.Autoplay = autoplay
		case "seed":
			cfg.Seed = seed
		case "stream":
			cfg.Stream.Addr = stream
		}
	})

	if cfg.Headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, cfg, app.New); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(cfg, app.New); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
