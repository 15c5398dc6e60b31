// Package signal generates deterministic test signals for exercising the
// ECG conditioning chain: tones, noise, impulses and a synthetic ECG beat
// train with the classic P-QRS-T morphology.
package signal

import (
	"fmt"
	"math"
	"math/rand"
)

const defaultSampleRate = 500.0

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSampleRate sets the sample rate in Hz. Non-positive rates are ignored.
func WithSampleRate(rate float64) Option {
	return func(g *Generator) {
		if rate > 0 {
			g.sampleRate = rate
		}
	}
}

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator. The default sample
// rate is 500 Hz, a common ECG acquisition rate.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		sampleRate: defaultSampleRate,
		seed:       1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// SampleRate returns the generator sample rate in Hz.
func (g *Generator) SampleRate() float64 {
	return g.sampleRate
}

// Seed returns the current noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// SetSeed replaces the noise seed.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Multisine generates a sum of equal-amplitude sines at the given frequencies.
func (g *Generator) Multisine(freqsHz []float64, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("multisine samples must be > 0: %d", samples)
	}
	if len(freqsHz) == 0 {
		return nil, fmt.Errorf("multisine needs at least one frequency")
	}
	out := make([]float64, samples)
	for _, freq := range freqsHz {
		step := 2 * math.Pi * freq / g.sampleRate
		for i := range out {
			out[i] += amplitude * math.Sin(step*float64(i))
		}
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Impulse generates a unit-area style impulse of the given amplitude at
// sample position.
func (g *Generator) Impulse(amplitude float64, samples, position int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("impulse samples must be > 0: %d", samples)
	}
	if position < 0 || position >= samples {
		return nil, fmt.Errorf("impulse position out of range: %d", position)
	}
	out := make([]float64, samples)
	out[position] = amplitude
	return out, nil
}

// ecgWaves describes one beat as a sum of Gaussians: amplitude relative to
// the R peak, center as a fraction of the beat period, and width in beat
// fractions. P, Q, R, S, T in order.
var ecgWaves = [...]struct{ amp, center, width float64 }{
	{0.12, 0.18, 0.025},
	{-0.12, 0.295, 0.010},
	{1.00, 0.32, 0.008},
	{-0.25, 0.345, 0.010},
	{0.30, 0.58, 0.055},
}

// ECGPulseTrain generates a clean synthetic ECG at the given heart rate.
// Each beat is a sum of Gaussian waves; amplitude scales the R peak.
func (g *Generator) ECGPulseTrain(rateBPM, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("ecg samples must be > 0: %d", samples)
	}
	if rateBPM <= 0 {
		return nil, fmt.Errorf("ecg heart rate must be > 0: %f", rateBPM)
	}

	out := make([]float64, samples)
	beatsPerSample := rateBPM / 60 / g.sampleRate
	for i := range out {
		phase := float64(i) * beatsPerSample
		phase -= math.Floor(phase)

		v := 0.0
		for _, w := range ecgWaves {
			d := (phase - w.center) / w.width
			v += w.amp * math.Exp(-0.5*d*d)
		}
		out[i] = amplitude * v
	}
	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
