package attenuation_test

import (
	"fmt"

	"github.com/cwbudde/algo-ecg/dsp/signal"
	"github.com/cwbudde/algo-ecg/measure/attenuation"
)

func ExampleAtFrequency() {
	gen := signal.NewGenerator(signal.WithSampleRate(500))
	hum, _ := gen.Sine(50, 1.0, 500)

	damped := make([]float64, len(hum))
	for i := range hum {
		damped[i] = 0.1 * hum[i]
	}

	res, _ := attenuation.AtFrequency(hum, damped, 50, 500)

	fmt.Printf("%.0f dB\n", res.AttenuationDB)
	// Output:
	// 20 dB
}

func ExamplePeakIndexShift() {
	a := make([]float64, 100)
	a[40] = 1.0

	b := make([]float64, 100)
	b[42] = -1.0

	fmt.Println(attenuation.PeakIndexShift(a, b))
	// Output:
	// 2
}
