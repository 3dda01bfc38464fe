package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "run":
		err = cmdRun(os.Args[2:])
	case "process":
		err = cmdProcess(os.Args[2:])
	case "filters":
		err = cmdFilters(os.Args[2:])
	case "prune":
		err = cmdPrune(os.Args[2:])
	case "files":
		err = cmdFiles(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "stanfood %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: stanfood <command> [-config config.yaml]

Commands:
  run       Process menu CSVs and build the filter tables
  process   Process menu CSVs into combined_dishes.json
  filters   Build the filter tables from combined_dishes.json
  prune     Remove menu directories older than today
  files     List the last outcome of every processed menu file
`)
}

// setup parses the common flags, loads .env and the config file, and builds
// the logger every stage uses.
func setup(name string, args []string) (config, *slog.Logger, error) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	_ = godotenv.Load()

	boot := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	cfg, err := loadConfig(*cfgPath, boot)
	if err != nil {
		return cfg, nil, err
	}
	level, err := cfg.level()
	if err != nil {
		return cfg, nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return cfg, logger, nil
}
