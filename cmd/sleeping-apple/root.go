package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sweeney/sleeping-apple/internal/action"
	"github.com/sweeney/sleeping-apple/internal/logic"
)

// options are the command-line settings. The zero-argument defaults are the
// daemon's normal behaviour.
type options struct {
	interval     time.Duration
	grace        time.Duration
	cooldown     time.Duration
	heartbeat    time.Duration
	sleepCommand string
	verbose      bool
	logFormat    string
	printState   bool
}

func defaultOptions() options {
	return options{
		interval:     time.Second,
		grace:        logic.DefaultGrace,
		cooldown:     10 * time.Second,
		sleepCommand: action.DefaultCommand,
		logFormat:    "text",
	}
}

func (o options) validate() error {
	if o.interval <= 0 {
		return fmt.Errorf("--interval must be positive, got %v", o.interval)
	}
	if o.grace < 0 {
		return fmt.Errorf("--grace must not be negative, got %v", o.grace)
	}
	if o.cooldown < 0 {
		return fmt.Errorf("--cooldown must not be negative, got %v", o.cooldown)
	}
	if o.heartbeat < 0 {
		return fmt.Errorf("--heartbeat must not be negative, got %v", o.heartbeat)
	}
	return nil
}

func (o options) loopConfig() loopConfig {
	return loopConfig{
		Interval:  o.interval,
		Grace:     o.grace,
		Cooldown:  o.cooldown,
		Heartbeat: o.heartbeat,
	}
}

func newRootCmd() *cobra.Command {
	opts := defaultOptions()

	cmd := &cobra.Command{
		Use:   "sleeping-apple",
		Short: "Put a Mac to sleep once its display has gone dark",
		Long: `sleeping-apple polls the display, the session lock and the power
assertions once per interval. When the display has been asleep for the grace
period and no application is holding off idle sleep (or the session is
locked), it runs "pmset sleepnow".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), opts.logFormat, opts.verbose)
			if err != nil {
				return err
			}
			if err := run(opts, logger); err != nil {
				logger.Fatal("fatal", "err", err)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.DurationVar(&opts.interval, "interval", opts.interval, "Polling interval")
	f.DurationVar(&opts.grace, "grace", opts.grace, "How long the display must stay dark before sleeping")
	f.DurationVar(&opts.cooldown, "cooldown", opts.cooldown, "Pause after the sleep command before polling resumes")
	f.DurationVar(&opts.heartbeat, "heartbeat", opts.heartbeat, "Heartbeat log interval (0 to disable)")
	f.StringVar(&opts.sleepCommand, "sleep-command", opts.sleepCommand, "Command that puts the machine to sleep")
	f.BoolVarP(&opts.verbose, "verbose", "v", opts.verbose, "Log every probe reading")
	f.StringVar(&opts.logFormat, "log-format", opts.logFormat, "Log format: text, json or logfmt")
	f.BoolVar(&opts.printState, "print-state", opts.printState, "Print current probe readings and exit")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

var errLogFormat = errors.New("unknown log format")

func newLogger(w io.Writer, format string, verbose bool) (*log.Logger, error) {
	var formatter log.Formatter
	switch format {
	case "text":
		formatter = log.TextFormatter
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	default:
		return nil, fmt.Errorf("%w: %q", errLogFormat, format)
	}

	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Formatter:       formatter,
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	}), nil
}
