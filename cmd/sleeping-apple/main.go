// Command sleeping-apple puts a Mac to sleep once its display has stayed dark
// for a grace period without an idle-sleep assertion holding it awake.
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sweeney/sleeping-apple/internal/action"
	"github.com/sweeney/sleeping-apple/internal/logic"
	"github.com/sweeney/sleeping-apple/internal/probe"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loopConfig holds the timings runLoop works with.
type loopConfig struct {
	Interval  time.Duration
	Grace     time.Duration
	Cooldown  time.Duration
	Heartbeat time.Duration
}

func run(opts options, logger *log.Logger) error {
	reader, err := probe.NewRealReader()
	if err != nil {
		return fmt.Errorf("init probes: %w", err)
	}
	defer reader.Close()

	// Print state mode
	if opts.printState {
		return printState(os.Stdout, reader)
	}

	sleeper, err := action.NewCommandSleeper(opts.sleepCommand)
	if err != nil {
		return fmt.Errorf("init sleep action: %w", err)
	}

	logger.Info("starting sleeping apple",
		"interval", opts.interval, "grace", opts.grace, "cooldown", opts.cooldown,
		"heartbeat", opts.heartbeat, "command", sleeper.String())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	return runLoop(reader, sleeper, logger, opts.loopConfig(), time.Now, time.After, sigCh)
}

// runLoop polls the probes once per interval until a signal arrives.
// It returns an error only when the sleep action fails.
func runLoop(reader probe.Reader, sleeper action.Sleeper, logger *log.Logger, cfg loopConfig, now func() time.Time, after func(time.Duration) <-chan time.Time, sig <-chan os.Signal) error {
	timer := logic.NewTimer(cfg.Grace, now())

	for {
		t := now()
		input := readInput(reader, logger, t)

		if event, ok := timer.Process(input); ok {
			switch event.Type {
			case logic.EventTimerStarted:
				logger.Info("sleep timer started", "grace", cfg.Grace)

			case logic.EventTimerCanceled:
				logger.Info("sleep canceled", "elapsed", event.Elapsed())

			case logic.EventSleep:
				logger.Info("sleeping", "elapsed", event.Elapsed(), "locked", input.DeviceLocked)
				if err := sleeper.Sleep(); err != nil {
					return fmt.Errorf("sleep action: %w", err)
				}
				// Give the OS time to suspend so the wake doesn't re-trigger.
				if s, stop := waitOrSignal(after, cfg.Cooldown, sig); stop {
					logger.Info("received signal, shutting down", "signal", s.String())
					return nil
				}
			}
		}

		if hb := timer.CheckHeartbeat(t, cfg.Heartbeat); hb != nil {
			logger.Info("heartbeat",
				"uptime", hb.Uptime.Round(time.Second), "counting", hb.Counting,
				"started", hb.Counts.Started, "canceled", hb.Counts.Canceled, "slept", hb.Counts.Slept)
		}

		if s, stop := waitOrSignal(after, cfg.Interval, sig); stop {
			logger.Info("received signal, shutting down", "signal", s.String())
			return nil
		}
	}
}

// readInput queries all three probes. An assertion probe error is logged and
// read as "not prevented".
func readInput(reader probe.Reader, logger *log.Logger, t time.Time) logic.Input {
	input := logic.Input{
		DisplaySleeping: reader.DisplaySleeping(),
		DeviceLocked:    reader.SessionLocked(),
		Time:            t,
	}

	prevented, err := reader.IdleSleepPrevented()
	if err != nil {
		logger.Error("failed to read idle sleep status", "err", err)
		prevented = false
	}
	input.IdlePrevented = prevented

	logger.Debug("probes",
		"display_sleeping", input.DisplaySleeping,
		"locked", input.DeviceLocked,
		"idle_prevented", input.IdlePrevented)

	return input
}

func waitOrSignal(after func(time.Duration) <-chan time.Time, d time.Duration, sig <-chan os.Signal) (os.Signal, bool) {
	select {
	case s := <-sig:
		return s, true
	case <-after(d):
		return nil, false
	}
}

func printState(w io.Writer, reader probe.Reader) error {
	display := reader.DisplaySleeping()
	locked := reader.SessionLocked()
	prevented, err := reader.IdleSleepPrevented()

	preventedState := yesNo(prevented)
	if err != nil {
		preventedState = fmt.Sprintf("unknown (%v)", err)
	}

	trigger := logic.Trigger(logic.Input{
		DisplaySleeping: display,
		DeviceLocked:    locked,
		IdlePrevented:   prevented && err == nil,
	})

	_, werr := fmt.Fprintf(w, "Display: %s, Locked: %s, Idle sleep prevented: %s, Trigger: %s\n",
		displayState(display), yesNo(locked), preventedState, yesNo(trigger))
	return werr
}

func displayState(asleep bool) string {
	if asleep {
		return "ASLEEP"
	}
	return "AWAKE"
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}
