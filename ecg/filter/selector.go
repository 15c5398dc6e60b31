package filter

import (
	"fmt"
	"strconv"
	"strings"
)

// offSentinel is the historical settings encoding for a disabled stage.
const offSentinel = "off"

// Selector chooses whether a conditioning stage runs and at which
// frequency. The zero value is a disabled selector.
type Selector struct {
	enabled bool
	hz      float64
}

// Off returns a disabled selector; the stage passes the signal through.
func Off() Selector { return Selector{} }

// At returns a selector requesting the stage at the given frequency in Hz.
// The frequency is not range-checked here; validity against the Nyquist
// limit depends on the sample rate and is checked when the stage runs.
func At(hz float64) Selector { return Selector{enabled: true, hz: hz} }

// Enabled reports whether the stage should run.
func (s Selector) Enabled() bool { return s.enabled }

// Frequency returns the requested frequency in Hz; zero when disabled.
func (s Selector) Frequency() float64 { return s.hz }

// String renders the selector in the settings encoding: "off" or the
// frequency as decimal text.
func (s Selector) String() string {
	if !s.enabled {
		return offSentinel
	}
	return strconv.FormatFloat(s.hz, 'g', -1, 64)
}

// ParseSelector converts settings text into a Selector. Empty text and the
// "off" sentinel (case-insensitive, surrounding space ignored) disable the
// stage. Anything else must parse as a decimal frequency; any parseable
// value is accepted here and range-checked only when the stage runs.
func ParseSelector(text string) (Selector, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.EqualFold(trimmed, offSentinel) {
		return Off(), nil
	}

	hz, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return Off(), fmt.Errorf("filter: invalid selector %q: %w", text, err)
	}

	return At(hz), nil
}
