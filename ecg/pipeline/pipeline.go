// Package pipeline chains the three ECG conditioning stages in their
// clinical order: baseline-wander removal first, so slow drift cannot
// push the steeper filters around, then the muscle-artifact high-pass,
// then the mains notch last.
//
// Apply is a pure function over one finite strip. It never mutates its
// input, returns a buffer of the same length, and inherits the fail-soft
// behavior of the stages: a misconfigured stage passes the signal through
// and reports a filter.Diagnostic.
package pipeline

import (
	"github.com/cwbudde/algo-ecg/ecg/filter"
)

// MinSamples is the minimum strip length the pipeline conditions. Shorter
// strips carry too little context for stable filtering and come back as
// an untouched copy.
const MinSamples = 10

// Apply conditions one ECG strip sampled at sampleRate. Each selector
// enables its stage: ac the mains notch, emg the muscle-artifact
// high-pass, dft the baseline-wander high-pass. Disabled selectors skip
// their stage silently.
//
// The result is always a fresh buffer of the same length; the input is
// never written to.
func Apply(x []float64, sampleRate float64, ac, emg, dft filter.Selector, opts ...filter.Option) []float64 {
	out := make([]float64, len(x))
	copy(out, x)

	if len(out) < MinSamples {
		return out
	}

	out = filter.Baseline(out, sampleRate, dft, opts...)
	out = filter.Muscle(out, sampleRate, emg, opts...)
	out = filter.Notch(out, sampleRate, ac, opts...)

	return out
}
