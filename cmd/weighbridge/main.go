package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"weighbridge/internal/app"
	"weighbridge/internal/config"
)

var version = "dev"

func main() {
	var opts app.Options
	var showVersion bool
	flag.StringVarP(&opts.ConfigPath, "config", "c", "", "Path to the config file (default "+config.DefaultDir()+"/config.toml)")
	flag.StringVarP(&opts.DataDir, "data-dir", "d", "", "Directory for recent activity, tickets and the log")
	flag.StringVar(&opts.LogPath, "log", "", "Log file (default <data-dir>/weighbridge.log)")
	flag.BoolVar(&opts.Debug, "debug", false, "Enable debug logging")
	flag.BoolVarP(&showVersion, "version", "v", false, "Print the version and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: weighbridge [flags]\n\nTruck scale point-of-sale dashboard.\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Println("weighbridge", version)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
