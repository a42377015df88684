package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-theft-craft/schematic/internal/config"
)

const usage = `usage: schematic [flags] <command> [command flags] <args>

commands:
  info     <file>             print dimensions and block counts
  convert  [-o out] <file>    rotate, trim, crop or connect and write back
  export   [-o out] <file>    dump block ids as text, one section per layer
  fetch    [-dir d] <source>  download a schematic and print its summary
  place    [-at x,y,z] <file> write the schematic into Anvil region files

flags:
`

var errUsage = errors.New("usage")

type command func(ctx context.Context, app *app, args []string) error

var commands = map[string]command{
	"info":    runInfo,
	"convert": runConvert,
	"export":  runExport,
	"fetch":   runFetch,
	"place":   runPlace,
}

// app carries what every subcommand needs.
type app struct {
	cfg *config.Config
	log *slog.Logger
	out io.Writer
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "schematic:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg := config.DefaultConfig()

	fs := flag.NewFlagSet("schematic", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "YAML config file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text, json)")
	fs.BoolVar(&cfg.CrossLayer, "cross-layer", cfg.CrossLayer, "let redstone wire connect across layers")
	fs.StringVar(&cfg.TempDir, "temp-dir", cfg.TempDir, "directory for repacked raw tag files")
	fs.StringVar(&cfg.CacheDir, "cache-dir", cfg.CacheDir, "directory for fetched schematics")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *configPath != "" {
		fromFile, err := config.Load(*configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		explicit := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		config.Merge(cfg, fromFile, explicit)
	}

	log, err := cfg.Logger(stderr)
	if err != nil {
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}
	cmd, ok := commands[fs.Arg(0)]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n", fs.Arg(0))
		fs.Usage()
		return errUsage
	}

	a := &app{cfg: cfg, log: log.With("command", fs.Arg(0)), out: stdout}
	return cmd(ctx, a, fs.Args()[1:])
}
