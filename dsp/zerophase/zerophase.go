// Package zerophase applies an IIR section cascade forward and then backward
// over a finite signal, cancelling the filter's phase response. The effective
// magnitude response is squared, and features such as QRS peaks keep their
// sample positions.
//
// Edge handling follows the usual batch recipe: the signal is extended at
// both ends with an odd (point-symmetric) reflection, each pass starts from
// DC steady-state initial conditions (Gustafsson, "Determining the initial
// states in forward-backward filtering", IEEE Trans. Signal Processing 44(4),
// 1996), and the extensions are trimmed afterwards.
package zerophase

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-ecg/dsp/sos"
)

var (
	// ErrNoSections is returned when the cascade is empty.
	ErrNoSections = errors.New("zerophase: no filter sections")

	// ErrShortSignal is returned when the signal is too short to carry the
	// edge extension; callers decide whether to skip or fail.
	ErrShortSignal = errors.New("zerophase: signal too short for edge padding")

	// ErrBadSection is returned when a section has no finite DC steady
	// state, e.g. a pole sitting exactly at z = 1.
	ErrBadSection = errors.New("zerophase: section has no finite DC steady state")
)

// PadLen returns the number of samples reflected past each signal edge for
// the given cascade. Degenerate first-order sections shorten the extension.
func PadLen(sections []sos.Coefficients) int {
	if len(sections) == 0 {
		return 0
	}
	ntaps := 2*len(sections) + 1
	nb, na := 0, 0
	for i := range sections {
		if sections[i].B2 == 0 {
			nb++
		}
		if sections[i].A2 == 0 {
			na++
		}
	}
	ntaps -= min(nb, na)
	return 3 * ntaps
}

// Filter runs x through the cascade forward and backward and returns a new
// slice of the same length; x is left untouched. The signal must be longer
// than PadLen(sections).
func Filter(sections []sos.Coefficients, x []float64) ([]float64, error) {
	if len(sections) == 0 {
		return nil, ErrNoSections
	}
	pad := PadLen(sections)
	if len(x) <= pad {
		return nil, fmt.Errorf("%w: %d samples, need more than %d", ErrShortSignal, len(x), pad)
	}

	states, err := steadyStates(sections)
	if err != nil {
		return nil, err
	}

	ext := oddExtend(x, pad)
	filterPass(sections, states, ext)
	reverse(ext)
	filterPass(sections, states, ext)
	reverse(ext)

	out := make([]float64, len(x))
	copy(out, ext[pad:])
	return out, nil
}

// steadyStates computes per-section initial conditions that put each section
// in DC steady state for a unit input, pre-scaled by the DC gain of the
// sections before it. filterPass scales them by the first sample of its pass.
func steadyStates(sections []sos.Coefficients) ([][2]float64, error) {
	states := make([][2]float64, len(sections))
	scale := 1.0
	for i, c := range sections {
		den := 1 + c.A1 + c.A2
		if den == 0 {
			return nil, ErrBadSection
		}
		kdc := (c.B0 + c.B1 + c.B2) / den
		s1 := c.B2 - kdc*c.A2
		s0 := s1 + c.B1 - kdc*c.A1
		if math.IsNaN(s0) || math.IsInf(s0, 0) || math.IsNaN(s1) || math.IsInf(s1, 0) {
			return nil, ErrBadSection
		}
		states[i] = [2]float64{scale * s0, scale * s1}
		scale *= kdc
	}
	return states, nil
}

// filterPass runs one direction of the cascade in-place over buf, seeding
// every section with its steady state for the first sample of this pass.
func filterPass(sections []sos.Coefficients, states [][2]float64, buf []float64) {
	x0 := buf[0]
	for i := range sections {
		sec := sos.NewSection(sections[i])
		sec.SetState([2]float64{states[i][0] * x0, states[i][1] * x0})
		sec.ProcessBlock(buf)
	}
}

// oddExtend reflects n samples point-symmetrically around each end of x.
func oddExtend(x []float64, n int) []float64 {
	ext := make([]float64, n+len(x)+n)

	left := 2 * x[0]
	for i := 0; i < n; i++ {
		ext[i] = left - x[n-i]
	}

	copy(ext[n:], x)

	last := len(x) - 1
	right := 2 * x[last]
	for i := 0; i < n; i++ {
		ext[n+len(x)+i] = right - x[last-1-i]
	}
	return ext
}

func reverse(x []float64) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}
