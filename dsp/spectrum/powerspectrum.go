package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-ecg/dsp/window"
)

// PowerSpectrum computes the one-sided power spectrum of a real signal.
//
// The signal is tapered with a periodic Hann window, zero-padded to fftSize
// and transformed; the result holds |X[k]|^2 for bins 0..fftSize/2. Pass
// fftSize <= 0 to use the next power of two at or above the signal length.
func PowerSpectrum(signal []float64, fftSize int) ([]float64, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("spectrum: power spectrum of empty signal")
	}

	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(signal))
	}
	if fftSize < len(signal) {
		return nil, fmt.Errorf("spectrum: fft size %d smaller than signal length %d", fftSize, len(signal))
	}

	coeffs := window.Generate(window.TypeHann, len(signal), window.WithPeriodic())

	inData := make([]complex128, fftSize)
	for i, v := range signal {
		inData[i] = complex(v*coeffs[i], 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}

	return Power(out[:fftSize/2+1]), nil
}

// BinFrequency returns the center frequency in Hz of an FFT bin.
func BinFrequency(bin, fftSize int, sampleRate float64) float64 {
	if fftSize <= 0 {
		return 0
	}
	return float64(bin) * sampleRate / float64(fftSize)
}

// PeakBin returns the index of the strongest bin in a power spectrum,
// ignoring the DC bin when skipDC is set.
func PeakBin(power []float64, skipDC bool) int {
	if len(power) == 0 {
		return -1
	}
	start := 0
	if skipDC && len(power) > 1 {
		start = 1
	}
	peak := start
	for i := start; i < len(power); i++ {
		if power[i] > power[peak] {
			peak = i
		}
	}
	return peak
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
