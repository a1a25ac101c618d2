package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"

	"github.com/stijndebels/ChessProjectCPL/internal/board"
	"github.com/stijndebels/ChessProjectCPL/internal/config"
	"github.com/stijndebels/ChessProjectCPL/internal/fen"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is the process entry: with one positional FEN argument ("-" reads it
// from stdin) it prints the principal variation once, otherwise it runs the
// UCI loop on stdin and stdout. It returns the exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fset := flag.NewFlagSet("chess-engine", flag.ContinueOnError)
	fset.SetOutput(stderr)
	configPath := fset.String("config", "", "TOML configuration file (default: ~/.chess-engine/config.toml if present)")
	dumpConfig := fset.Bool("dump-config", false, "Print the effective configuration and exit")
	fset.Usage = func() {
		fmt.Fprintf(stderr, "usage: chess-engine [flags] [FEN | -]\n\n")
		fset.PrintDefaults()
	}
	if err := fset.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if *dumpConfig {
		if err := cfg.Encode(stdout); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	if fset.NArg() > 1 {
		fset.Usage()
		return 2
	}

	app, err := NewApp(cfg)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer app.Close()

	if fset.NArg() == 1 {
		pos, err := readFEN(fset.Arg(0), stdin)
		if err != nil {
			fmt.Fprintln(stderr, "Parsing FEN failed:", err)
			return 1
		}
		if err := app.PrintPV(ctx, pos, stdout); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	if err := app.RunUCI(ctx, stdin, stdout); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// loadConfig reads path, or the per-user file when path is empty and that
// file exists, or falls back to the defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	path, err := config.DefaultPath()
	if err != nil {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

func readFEN(arg string, stdin io.Reader) (*board.Position, error) {
	if arg == "-" {
		return fen.Read(stdin)
	}
	return fen.Parse(arg)
}
