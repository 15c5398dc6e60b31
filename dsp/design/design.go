// Package design computes biquad coefficients for the filter shapes used in
// ECG conditioning: RBJ cookbook notch and high-pass sections, and
// Butterworth high-pass cascades built from them.
//
// Designers validate their inputs and return zero-valued coefficients (or a
// nil cascade) when the request cannot be realized, e.g. a center frequency
// at or above Nyquist. Callers that need to distinguish invalid requests
// should check before designing; the zero value is safe to process but
// silences the signal.
package design

import (
	"math"

	"github.com/cwbudde/algo-ecg/dsp/sos"
)

// defaultQ is the Butterworth quality factor, used when callers pass a
// non-positive or non-finite q.
const defaultQ = 1 / math.Sqrt2

// normalizedW0 converts a frequency in Hz to the normalized angular frequency
// in radians per sample, reporting whether it lies in the open interval
// (0, pi), i.e. strictly between DC and Nyquist.
func normalizedW0(frequency, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || frequency <= 0 {
		return 0, false
	}
	w0 := 2 * math.Pi * frequency / sampleRate
	if math.IsNaN(w0) || w0 >= math.Pi {
		return 0, false
	}
	return w0, true
}

func normalizedQ(q float64) float64 {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return defaultQ
	}
	return q
}

// normalizeBiquad divides through by a0 so the stored denominator is monic.
func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) sos.Coefficients {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return sos.Coefficients{}
	}
	inv := 1 / a0
	return sos.Coefficients{
		B0: b0 * inv,
		B1: b1 * inv,
		B2: b2 * inv,
		A1: a1 * inv,
		A2: a2 * inv,
	}
}

// Notch designs a second-order notch with an exact transmission zero at the
// given frequency. The -3 dB bandwidth is frequency/q; a non-positive q falls
// back to Butterworth damping.
func Notch(frequency, q, sampleRate float64) sos.Coefficients {
	w0, ok := normalizedW0(frequency, sampleRate)
	if !ok {
		return sos.Coefficients{}
	}
	q = normalizedQ(q)

	sinw0, cosw0 := math.Sincos(w0)
	alpha := sinw0 / (2 * q)

	b0 := 1.0
	b1 := -2 * cosw0
	b2 := 1.0
	a0 := 1 + alpha
	a1 := -2 * cosw0
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// Highpass designs a second-order high-pass with the given cutoff frequency
// and quality factor. A non-positive q falls back to Butterworth damping.
func Highpass(frequency, q, sampleRate float64) sos.Coefficients {
	w0, ok := normalizedW0(frequency, sampleRate)
	if !ok {
		return sos.Coefficients{}
	}
	q = normalizedQ(q)

	sinw0, cosw0 := math.Sincos(w0)
	alpha := sinw0 / (2 * q)

	b0 := (1 + cosw0) / 2
	b1 := -(1 + cosw0)
	b2 := (1 + cosw0) / 2
	a0 := 1 + alpha
	a1 := -2 * cosw0
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}
