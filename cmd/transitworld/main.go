package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cassaundra/transitworld"
	"github.com/cassaundra/transitworld/internal/config"
)

// cliConfig holds the command-line flag values. Settings that overlap with
// the config file (API key, base URL, spec, limit) override it when set.
type cliConfig struct {
	configPath string
	apiKey     string
	baseURL    string
	spec       string
	limit      uint64
	after      uint64
	output     string
	debug      bool
}

// application holds the dependencies the subcommand handlers run with.
type application struct {
	config  cliConfig
	logger  *slog.Logger
	request transitworld.Request
	apiKey  string
	out     io.Writer
}

func main() {
	var cfg cliConfig

	flag.StringVar(&cfg.configPath, "config", "", "Path to a YAML config file (default ~/.transitworld.yml)")
	flag.StringVar(&cfg.apiKey, "api-key", "", "Transitland API key")
	flag.StringVar(&cfg.baseURL, "base-url", "", "Override the API base URL")
	flag.StringVar(&cfg.spec, "spec", "", "Feed spec to query (gtfs|gtfs-rt|gbfs|mds)")
	flag.Uint64Var(&cfg.limit, "limit", 0, "Page size for searches")
	flag.Uint64Var(&cfg.after, "after", 0, "Resume a listing from this pagination cursor")
	flag.StringVar(&cfg.output, "o", "", "Output path for download (default <feed-key>.zip, \"-\" for stdout)")
	flag.BoolVar(&cfg.debug, "debug", false, "Log requests at debug level")
	flag.Usage = usage
	flag.Parse()

	level := slog.LevelInfo
	if cfg.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	fileCfg, err := config.Load(cfg.configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	fileCfg = mergeFlags(cfg, fileCfg)
	if err := fileCfg.Validate(); err != nil {
		logger.Error("invalid configuration; an API key is required (-api-key, TRANSITLAND_API_KEY, or config file)", "error", err)
		os.Exit(1)
	}

	req := transitworld.NewRequest().WithLogger(logger)
	if fileCfg.BaseURL != "" {
		req = req.WithBaseURL(fileCfg.BaseURL)
	}
	if fileCfg.Spec != "" {
		req = req.WithSpec(transitworld.Spec(fileCfg.Spec))
	}
	if fileCfg.Limit > 0 {
		req = req.WithLimit(fileCfg.Limit)
	}
	if cfg.after > 0 {
		req = req.WithAfter(cfg.after)
	}

	app := &application{
		config:  cfg,
		logger:  logger,
		request: req,
		apiKey:  fileCfg.APIKey,
		out:     os.Stdout,
	}

	if err := app.run(flag.Args()); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// mergeFlags lays command-line settings over the loaded configuration;
// flags win wherever one was set.
func mergeFlags(cli cliConfig, cfg config.Config) config.Config {
	if cli.apiKey != "" {
		cfg.APIKey = cli.apiKey
	}
	if cli.baseURL != "" {
		cfg.BaseURL = cli.baseURL
	}
	if cli.spec != "" {
		cfg.Spec = cli.spec
	}
	if cli.limit > 0 {
		cfg.Limit = cli.limit
	}
	return cfg
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: transitworld [flags] <command> [arguments]

Commands:
  search <entity> [query]    search a collection (feeds, feed-versions,
                             agencies, operators, routes, stops)
  get <entity> <key>         fetch one entity by integer ID or OnestopID
  trips <route-id> [query]   search the trips of a route
  trip <route-id> <key>      fetch one trip of a route
  download <feed-key>        download the latest feed version archive

Flags:
`)
	flag.PrintDefaults()
}
