package filter

import (
	"errors"
	"fmt"
	"log/slog"
)

// Stage identifies one of the three conditioning stages.
type Stage int

const (
	// StageBaseline is the baseline-wander high-pass (DFT filter).
	StageBaseline Stage = iota

	// StageMuscle is the muscle-artifact high-pass (EMG filter).
	StageMuscle

	// StageNotch is the mains-interference notch (AC filter).
	StageNotch
)

// String returns the stage name used in diagnostics and logs.
func (s Stage) String() string {
	switch s {
	case StageBaseline:
		return "baseline"
	case StageMuscle:
		return "muscle"
	case StageNotch:
		return "notch"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

var (
	// ErrFrequencyRange reports a requested frequency outside the open
	// interval between DC and Nyquist. A stage skipped for this reason is
	// a configuration problem, not a numerical one.
	ErrFrequencyRange = errors.New("filter: frequency outside (0, nyquist)")

	// ErrDesign reports that the coefficient designer produced no usable
	// sections for a frequency that passed the range check.
	ErrDesign = errors.New("filter: design produced no usable sections")
)

// Diagnostic describes why a stage was skipped. A skipped stage is not a
// call failure; the signal passes through that stage untouched and the
// diagnostic is the only trace.
type Diagnostic struct {
	Stage      Stage
	Frequency  float64 // requested frequency in Hz
	SampleRate float64 // sample rate of the call in Hz
	Nyquist    float64 // half the sample rate in Hz
	Err        error   // ErrFrequencyRange, ErrDesign or a wrapped internal error
}

// String renders the diagnostic as a human-readable one-liner.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s filter at %g Hz (nyquist %g Hz) skipped: %v",
		d.Stage, d.Frequency, d.Nyquist, d.Err)
}

// Reporter receives the diagnostics of a call. Reporters must be safe for
// the caller's own concurrency model; the stages themselves never share
// state between calls.
type Reporter func(Diagnostic)

// Discard is a Reporter that drops diagnostics.
func Discard(Diagnostic) {}

// LogReporter returns a Reporter that logs diagnostics through the given
// slog logger, at warning level for configuration problems and error level
// for internal failures. A nil logger falls back to slog.Default.
func LogReporter(logger *slog.Logger) Reporter {
	if logger == nil {
		logger = slog.Default()
	}

	return func(d Diagnostic) {
		attrs := []any{
			slog.String("stage", d.Stage.String()),
			slog.Float64("frequency_hz", d.Frequency),
			slog.Float64("nyquist_hz", d.Nyquist),
		}
		if d.Err != nil {
			attrs = append(attrs, slog.String("error", d.Err.Error()))
		}

		if errors.Is(d.Err, ErrFrequencyRange) {
			logger.Warn("filter stage skipped", attrs...)
			return
		}

		logger.Error("filter stage skipped", attrs...)
	}
}

// Option configures how stages report diagnostics.
type Option func(*config)

type config struct {
	reporter Reporter
}

// WithReporter routes diagnostics to r instead of the default slog logger.
func WithReporter(r Reporter) Option {
	return func(c *config) {
		c.reporter = r
	}
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (c config) report(d Diagnostic) {
	r := c.reporter
	if r == nil {
		r = LogReporter(slog.Default())
	}
	r(d)
}

// Emit delivers a diagnostic through the reporter configured by opts,
// falling back to the default slog reporter. The stages use this
// internally; adapters that detect problems before a stage runs use it to
// surface them the same way.
func Emit(d Diagnostic, opts ...Option) {
	newConfig(opts).report(d)
}
