package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/showdown/internal/report"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	LogLevel string           `help:"Log level (debug, info, warn, error); defaults to the config file or info"`
	NoColor  bool             `help:"Disable colored output"`
	Version  kong.VersionFlag `short:"v" help:"Show version"`
}

// Validate rejects unknown log levels before any command runs.
func (g Globals) Validate() error {
	switch g.LogLevel {
	case "", "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("invalid log level: %s", g.LogLevel)
}

type CLI struct {
	Globals

	Eval       EvalCmd       `cmd:"" help:"Evaluate the best hand from hole and board cards"`
	Outs       OutsCmd       `cmd:"" help:"List outs to every stronger hand with exact hit odds"`
	Percentile PercentileCmd `cmd:"" help:"Rank a river hand against every possible opponent holding"`
	Preflop    PreflopCmd    `cmd:"" help:"Look up a starting hand percentile"`
	Odds       OddsCmd       `cmd:"" help:"Calculate pot odds for a call"`
	Settle     SettleCmd     `cmd:"" help:"Settle the hands in an HCL hand file"`
	Simulate   SimulateCmd   `cmd:"" help:"Settle random hands in bulk and check chip conservation"`
}

// runContext is bound into every command's Run method.
type runContext struct {
	Logger   *log.Logger
	LogLevel string
	Out      io.Writer
}

// useConfigLevel applies a config file's log level unless one was given on
// the command line.
func (rc *runContext) useConfigLevel(level string) {
	if rc.LogLevel == "" && level != "" {
		rc.Logger.SetLevel(parseLevel(level))
	}
}

func parseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.New(w)
	logger.SetLevel(parseLevel(level))
	return logger
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("showdown"),
		kong.Description("Poker hand evaluation, outs and side-pot settlement"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	report.SetColor(!cli.NoColor)
	rc := &runContext{
		Logger:   newLogger(os.Stderr, cli.LogLevel),
		LogLevel: cli.LogLevel,
		Out:      os.Stdout,
	}

	err = ctx.Run(rc)
	ctx.FatalIfErrorf(err)
}
