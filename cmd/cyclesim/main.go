package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/thermalworks/cyclesim/internal/app"
	"github.com/thermalworks/cyclesim/internal/log"
	"github.com/thermalworks/cyclesim/pkg/config"
)

const version = "1.0-" + runtime.GOOS + "/" + runtime.GOARCH

func main() {
	cfgFile := flag.String("config", "", "Path to YAML configuration (defaults to the baseline run when omitted)")
	airData := flag.String("airdata", "", "Path to the air property table (overrides the config file)")
	archivePath := flag.String("archive", "", "Optional SQLite database to archive sweep results into")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("cyclesim %s\n", version)
		os.Exit(0)
	}

	// Set up logging
	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Load configuration
	cfg, err := loadConfig(*cfgFile)
	if err != nil {
		log.Errorf("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	if *airData != "" {
		cfg.AirData = *airData
	}

	// Create and run the analysis
	application := app.New(cfg, log.GetSugaredLogger(), os.Stdout, *archivePath)
	if err := application.Run(context.Background()); err != nil {
		log.Errorf("Analysis error: %v", err)
		os.Exit(1)
	}
}

func loadConfig(cfgFile string) (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("error reading config file. Run with -h for help: %w", err)
	}
	return cfg, nil
}
