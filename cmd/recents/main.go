// Command recents maintains a list of recently opened files and URLs.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/djdv/go-recents"
	"github.com/djdv/go-recents/document"
	"github.com/djdv/go-recents/internal/persist"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

type config struct {
	file  string
	limit int
}

func main() {
	configureLogging(os.Stderr)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var (
		cfg   config
		flags = flag.NewFlagSet("recents", flag.ContinueOnError)
	)
	flags.SetOutput(stderr)
	flags.StringVar(&cfg.file, "file", defaultFile(), "path of the recents document")
	flags.IntVar(&cfg.limit, "limit", recents.DefaultLimit, "maximum number of entries to keep")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: recents [flags] list | push <url-or-path>... | clear")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return exitUsage
	}
	args = flags.Args()
	if len(args) == 0 {
		flags.Usage()
		return exitUsage
	}
	var err error
	switch command, operands := args[0], args[1:]; command {
	case "list":
		err = list(cfg, operands, stdout)
	case "push":
		err = push(ctx, cfg, operands)
	case "clear":
		err = clearAll(ctx, cfg, operands)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", command)
		flags.Usage()
		return exitUsage
	}
	if err != nil {
		var usage usageError
		if errors.As(err, &usage) {
			fmt.Fprintln(stderr, err)
			flags.Usage()
			return exitUsage
		}
		slog.Error("command failed", "command", args[0], "error", err)
		return exitFailure
	}
	return 0
}

type usageError string

func (errStr usageError) Error() string { return string(errStr) }

func list(cfg config, operands []string, stdout io.Writer) error {
	if len(operands) != 0 {
		return usageError("list takes no arguments")
	}
	held, err := load(cfg.file)
	if err != nil {
		return err
	}
	for recent := range held.Values().Newest() {
		if _, err := fmt.Fprintln(stdout, recent); err != nil {
			return err
		}
	}
	return nil
}

func push(ctx context.Context, cfg config, operands []string) error {
	if len(operands) == 0 {
		return usageError("push requires at least one url or path")
	}
	entries := make([]recents.Recent, len(operands))
	for i, operand := range operands {
		recent, err := parseURLOrPath(operand)
		if err != nil {
			return err
		}
		entries[i] = recent
	}
	held, err := load(cfg.file)
	if err != nil {
		return err
	}
	writer := recents.NewWriter(held)
	for _, recent := range entries {
		writer.Push(recent, cfg.limit)
		slog.Debug("pushed", "url", recent, "limit", cfg.limit)
	}
	return save(ctx, cfg.file, held)
}

func clearAll(ctx context.Context, cfg config, operands []string) error {
	if len(operands) != 0 {
		return usageError("clear takes no arguments")
	}
	held, err := load(cfg.file)
	if err != nil {
		return err
	}
	recents.NewWriter(held).Clear()
	return save(ctx, cfg.file, held)
}

func load(path string) (*document.Holder[recents.Recents], error) {
	data, err := persist.ReadFile(path)
	if err != nil {
		return nil, err
	}
	held, warnings, err := recents.Read(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for _, warning := range warnings {
		slog.Warn("dropping recent entry", "file", path, "reason", warning)
	}
	return held, nil
}

func save(ctx context.Context, path string, held *document.Holder[recents.Recents]) error {
	if !held.Changed() {
		return nil
	}
	data, err := held.Marshal()
	if err != nil {
		return err
	}
	if err := persist.WriteFile(ctx, path, data); err != nil {
		return err
	}
	held.MarkSaved()
	slog.Debug("saved recents", "file", path, "entries", len(held.Values()))
	return nil
}

// parseURLOrPath accepts an absolute URL, or a filesystem
// path which is converted to a `file` URL.
func parseURLOrPath(operand string) (recents.Recent, error) {
	// Single letter schemes are drive letters, not URLs.
	if scheme, _, found := strings.Cut(operand, ":"); found && len(scheme) > 1 {
		if recent, err := recents.ParseRecent(operand); err == nil {
			return recent, nil
		}
	}
	absolute, err := filepath.Abs(operand)
	if err != nil {
		return recents.Recent{}, fmt.Errorf("could not resolve %q: %w", operand, err)
	}
	path := filepath.ToSlash(absolute)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	fileURL := url.URL{Scheme: "file", Path: path}
	return recents.ParseRecent(fileURL.String())
}

func defaultFile() string {
	const name = "recents.toml"
	dir, err := os.UserConfigDir()
	if err != nil {
		return name
	}
	return filepath.Join(dir, "recents", name)
}
