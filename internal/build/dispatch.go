package build

import (
	"context"
	"strconv"
	"time"

	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/bundler"
	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/logger"
)

// Runner runs the bundler for one plugin.
type Runner interface {
	Run(ctx context.Context, req bundler.Request) bundler.Result
}

// Speed buckets the elapsed time of a build run.
type Speed int

const (
	Fast Speed = iota
	Medium
	Slow
)

// Thresholds separating Fast, Medium and Slow runs.
const (
	FastThreshold   = 30 * time.Second
	MediumThreshold = 60 * time.Second
)

// SpeedOf buckets an elapsed duration.
func SpeedOf(d time.Duration) Speed {
	switch {
	case d < FastThreshold:
		return Fast
	case d < MediumThreshold:
		return Medium
	default:
		return Slow
	}
}

// Summary reports the outcome of a dispatch.
type Summary struct {
	Succeeded []string
	Exited    []string // ran, but the bundler exited non-zero
	Failed    []string // the bundler could not be started
	Elapsed   time.Duration

	// ExitCode is the last non-zero bundler exit code, or 0.
	ExitCode int
}

// Dispatcher builds plugins one at a time.
type Dispatcher struct {
	Runner    Runner
	Log       *logger.Logger
	EngineDir string

	now func() time.Time
}

// NewDispatcher returns a Dispatcher that runs r with engineDir.
func NewDispatcher(r Runner, log *logger.Logger, engineDir string) *Dispatcher {
	return &Dispatcher{Runner: r, Log: log, EngineDir: engineDir, now: time.Now}
}

// BuildAll runs the bundler for each target sequentially. A plugin that fails
// does not stop the remaining ones. The elapsed time is logged at the end.
func (d *Dispatcher) BuildAll(ctx context.Context, targets []string, watch bool) Summary {
	var s Summary
	start := d.now()

	for _, name := range targets {
		if ctx.Err() != nil {
			d.Log.Debugf("Context done, skipping %s", name)
			s.Failed = append(s.Failed, name)
			continue
		}

		d.Log.Infof("Building plugin %s...", d.Log.Yellow(name))
		res := d.Runner.Run(ctx, bundler.Request{Plugin: name, EngineDir: d.EngineDir, Watch: watch})

		switch res.Status {
		case bundler.StatusSucceeded:
			s.Succeeded = append(s.Succeeded, name)
		case bundler.StatusExited:
			d.Log.Warnf("Bundler exited with code %d while building %s", res.ExitCode, d.Log.Yellow(name))
			s.Exited = append(s.Exited, name)
			s.ExitCode = res.ExitCode
		default:
			d.Log.Errorf("Failed to build %s because the bundler could not be started", d.Log.Yellow(name))
			d.Log.Debugf("Got error\n%v", res.Err)
			s.Failed = append(s.Failed, name)
		}
	}

	s.Elapsed = d.now().Sub(start)
	d.Log.Infof("Finished building %d plugin(s) in %s", len(targets), d.colorElapsed(s.Elapsed))
	return s
}

func (d *Dispatcher) colorElapsed(elapsed time.Duration) string {
	text := FormatElapsed(elapsed)
	switch SpeedOf(elapsed) {
	case Fast:
		return d.Log.Green(text)
	case Medium:
		return d.Log.Yellow(text)
	default:
		return d.Log.Red(text)
	}
}

// FormatElapsed renders a duration as seconds with millisecond precision,
// e.g. "12.5s".
func FormatElapsed(d time.Duration) string {
	return strconv.FormatFloat(d.Round(time.Millisecond).Seconds(), 'f', -1, 64) + "s"
}
