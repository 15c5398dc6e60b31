package design

import (
	"math"

	"github.com/cwbudde/algo-ecg/dsp/sos"
)

// ButterworthHP designs an order-n Butterworth high-pass as a cascade of
// second-order sections, each an RBJ high-pass with the Butterworth pole
// quality for its position. Odd orders append a first-order section.
// Returns nil when the order is non-positive or the cutoff is not strictly
// between DC and Nyquist.
func ButterworthHP(frequency float64, order int, sampleRate float64) []sos.Coefficients {
	if order <= 0 {
		return nil
	}
	if _, ok := normalizedW0(frequency, sampleRate); !ok {
		return nil
	}

	pairs := order / 2
	sections := make([]sos.Coefficients, 0, pairs+order%2)
	for i := pairs - 1; i >= 0; i-- {
		sections = append(sections, Highpass(frequency, butterworthQ(order, i), sampleRate))
	}
	if order%2 == 1 {
		sections = append(sections, firstOrderHP(frequency, sampleRate))
	}
	return sections
}

// butterworthQ returns the quality factor of the index-th conjugate pole
// pair of an order-n Butterworth prototype.
func butterworthQ(order, index int) float64 {
	angle := math.Pi * float64(2*index+1) / float64(2*order)
	return 1 / (2 * math.Sin(angle))
}

// firstOrderHP designs the real-pole section of odd-order cascades via the
// bilinear transform.
func firstOrderHP(frequency, sampleRate float64) sos.Coefficients {
	k := math.Tan(math.Pi * frequency / sampleRate)
	norm := 1 / (1 + k)
	return sos.Coefficients{
		B0: norm,
		B1: -norm,
		A1: (k - 1) * norm,
	}
}
