// Package attenuation measures how strongly a conditioning step
// suppresses a frequency and whether it moved feature timing. Both are
// acceptance measurements for ECG filtering: mains hum and baseline
// drift must drop by tens of dB while the QRS peak stays on its sample.
package attenuation

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ecg/dsp/spectrum"
)

// Result describes the effect of a processing step at one frequency.
type Result struct {
	Frequency     float64
	InputPower    float64
	OutputPower   float64
	AttenuationDB float64
}

// AtFrequency probes the power at freq in both buffers with a Goertzel
// analyzer and reports the attenuation in dB, positive when the output
// carries less power than the input. The input must carry measurable
// power at the probe frequency, otherwise the comparison is meaningless
// and an error is returned.
func AtFrequency(input, output []float64, freq, sampleRate float64) (Result, error) {
	inPower, err := spectrum.AnalyzeBlock(input, freq, sampleRate)
	if err != nil {
		return Result{}, err
	}

	outPower, err := spectrum.AnalyzeBlock(output, freq, sampleRate)
	if err != nil {
		return Result{}, err
	}

	if inPower <= 0 {
		return Result{}, fmt.Errorf("attenuation: no input power at %g Hz", freq)
	}

	return Result{
		Frequency:     freq,
		InputPower:    inPower,
		OutputPower:   outPower,
		AttenuationDB: powerRatioDB(inPower, outPower),
	}, nil
}

// powerRatioDB converts a power ratio to dB; a silent output reads as
// infinite attenuation.
func powerRatioDB(in, out float64) float64 {
	if out <= 0 {
		return math.Inf(1)
	}

	return 10 * math.Log10(in/out)
}

// PeakIndexShift returns how many samples the absolute peak moved between
// the two buffers; zero-phase conditioning keeps this within a sample or
// two.
func PeakIndexShift(a, b []float64) int {
	return peakIndex(b) - peakIndex(a)
}

func peakIndex(x []float64) int {
	idx := 0
	for i := range x {
		if math.Abs(x[i]) > math.Abs(x[idx]) {
			idx = i
		}
	}

	return idx
}
