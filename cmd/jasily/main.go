package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/saylorsolutions/jasily/cli"
	"github.com/saylorsolutions/jasily/env"
	flag "github.com/spf13/pflag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
)

const (
	envVerbose    = "JASILY_VERBOSE"
	envUsageWidth = "JASILY_USAGE_WIDTH"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stderr))
}

func run(argv []string, stdin io.Reader, out io.Writer) int {
	program := "jasily"
	if len(argv) > 0 {
		program = filepath.Base(argv[0])
		argv = argv[1:]
	}
	flags := flag.NewFlagSet(program, flag.ContinueOnError)
	flags.SetOutput(out)
	flags.SetInterspersed(false)
	flags.BoolP("verbose", "v", env.Bool(envVerbose, false), "Enables debug logging")
	flags.BoolP("interactive", "i", false, "Reads commands from STDIN until 'quit' is entered")
	flags.Int("width", env.Get(envUsageWidth, cli.TerminalWidth(int(os.Stderr.Fd()), cli.DefaultUsageWidth)), "Column budget for usage output")
	flags.Usage = func() {
		_, _ = fmt.Fprintf(out, "%s [FLAGS] COMMAND [ARGS...]\n\nFLAGS\n%s\nRun '%s help' to list commands.\n", program, flags.FlagUsages(), program)
	}
	if err := flags.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelInfo
	if cli.MustGet(flags.GetBool("verbose")) {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	printer := cli.NewPrinter()
	printer.Redirect(out)
	m := newManager(
		cli.WithPrinter(printer),
		cli.WithLogger(log),
		cli.WithUsageWidth(cli.MustGet(flags.GetInt("width"))),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if cli.MustGet(flags.GetBool("interactive")) {
		if err := m.RunInteractive(ctx, program, stdin); err != nil {
			log.Error("Interactive mode stopped", "error", err)
			return 1
		}
		return 0
	}
	if !m.ExecuteContext(ctx, append([]string{program}, flags.Args()...)) {
		return 1
	}
	return 0
}
