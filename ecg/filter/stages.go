package filter

import (
	"math"

	"github.com/cwbudde/algo-ecg/dsp/design"
	"github.com/cwbudde/algo-ecg/dsp/sos"
	"github.com/cwbudde/algo-ecg/dsp/zerophase"
)

const (
	// NotchQ is the quality factor of the mains notch. At Q = 30 a 50 Hz
	// notch is under 2 Hz wide, so the surrounding spectrum is barely
	// disturbed.
	NotchQ = 30.0

	// MuscleOrder is the Butterworth order of the muscle-artifact stage.
	// Fourth order is steep enough to separate tremor noise from the
	// signal without the ringing a higher order would add near QRS edges.
	MuscleOrder = 4

	// BaselineOrder is the Butterworth order of the baseline-wander
	// stage. The gentler second-order slope keeps ST-segment shape
	// intact.
	BaselineOrder = 2
)

// Baseline removes slow baseline drift below the selector frequency with a
// second-order Butterworth high-pass, applied zero-phase. Typical cutoffs
// are 0.05 or 0.5 Hz.
//
// A disabled selector, an invalid frequency or an internal failure returns
// the input slice itself; the latter two also emit a Diagnostic.
func Baseline(x []float64, sampleRate float64, sel Selector, opts ...Option) []float64 {
	if !sel.Enabled() {
		return x
	}
	return run(StageBaseline, x, sel.Frequency(), sampleRate, newConfig(opts), baselineDesign)
}

// Muscle removes muscle-tremor artifacts with a fourth-order Butterworth
// high-pass at the selector frequency, applied zero-phase. Typical cutoffs
// are 25 to 150 Hz.
//
// A disabled selector, an invalid frequency or an internal failure returns
// the input slice itself; the latter two also emit a Diagnostic.
func Muscle(x []float64, sampleRate float64, sel Selector, opts ...Option) []float64 {
	if !sel.Enabled() {
		return x
	}
	return run(StageMuscle, x, sel.Frequency(), sampleRate, newConfig(opts), muscleDesign)
}

// Notch removes narrow-band mains interference centered on the selector
// frequency (50 or 60 Hz), applied zero-phase with quality factor NotchQ.
//
// A disabled selector, an invalid frequency or an internal failure returns
// the input slice itself; the latter two also emit a Diagnostic.
func Notch(x []float64, sampleRate float64, sel Selector, opts ...Option) []float64 {
	if !sel.Enabled() {
		return x
	}
	return run(StageNotch, x, sel.Frequency(), sampleRate, newConfig(opts), notchDesign)
}

func baselineDesign(freq, sampleRate float64) []sos.Coefficients {
	return design.ButterworthHP(freq, BaselineOrder, sampleRate)
}

func muscleDesign(freq, sampleRate float64) []sos.Coefficients {
	return design.ButterworthHP(freq, MuscleOrder, sampleRate)
}

func notchDesign(freq, sampleRate float64) []sos.Coefficients {
	return []sos.Coefficients{design.Notch(freq, NotchQ, sampleRate)}
}

// run applies one stage fail-soft: any reason the filter cannot run turns
// into a Diagnostic and the untouched input.
func run(stage Stage, x []float64, freq, sampleRate float64, cfg config, designFn func(freq, sampleRate float64) []sos.Coefficients) []float64 {
	diag := Diagnostic{
		Stage:      stage,
		Frequency:  freq,
		SampleRate: sampleRate,
		Nyquist:    sampleRate / 2,
	}

	if !validFrequency(freq, sampleRate) {
		diag.Err = ErrFrequencyRange
		cfg.report(diag)
		return x
	}

	sections := designFn(freq, sampleRate)
	if !usable(sections) {
		diag.Err = ErrDesign
		cfg.report(diag)
		return x
	}

	out, err := zerophase.Filter(sections, x)
	if err != nil {
		diag.Err = err
		cfg.report(diag)
		return x
	}

	return out
}

// validFrequency reports whether freq lies strictly between DC and the
// Nyquist frequency of a finite, positive sample rate.
func validFrequency(freq, sampleRate float64) bool {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return false
	}
	return freq > 0 && freq < sampleRate/2
}

func usable(sections []sos.Coefficients) bool {
	if len(sections) == 0 {
		return false
	}
	for i := range sections {
		if sections[i] == (sos.Coefficients{}) {
			return false
		}
	}
	return true
}
