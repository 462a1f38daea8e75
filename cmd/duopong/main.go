package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/diegok/duopong/internal/app"
	"github.com/diegok/duopong/internal/config"
	"github.com/diegok/duopong/internal/logging"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		printUsage()
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	log, closer := logging.Setup(cfg)

	application := app.NewApp(cfg, log)
	err = application.Run()
	closer.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  duopong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --frontend <name>   window or terminal (default: window)")
	fmt.Fprintln(os.Stderr, "  --tick-rate <n>     Simulation steps per second (default: 60)")
	fmt.Fprintln(os.Stderr, "  --seed <n>          Random seed, 0 for time based")
	fmt.Fprintln(os.Stderr, "  --config <path>     Config file (yaml, toml or json)")
	fmt.Fprintln(os.Stderr, "  --log-file <path>   Log file (default: duopong.log)")
	fmt.Fprintln(os.Stderr, "  --log-level <lvl>   trace, debug, info, warn or error")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  W / S               Left paddle")
	fmt.Fprintln(os.Stderr, "  Up / Down           Right paddle")
	fmt.Fprintln(os.Stderr, "  Esc                 Quit (q also quits in the terminal)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Environment:")
	fmt.Fprintln(os.Stderr, "  DUOPONG_TICK_RATE=120 duopong --frontend terminal")
}
