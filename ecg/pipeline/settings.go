package pipeline

import (
	"github.com/cwbudde/algo-ecg/ecg/filter"
)

// Settings supplies filter selections from an external configuration
// store. Setting returns the stored value for key, or fallback when the
// key is absent.
type Settings interface {
	Setting(key, fallback string) string
}

// Settings keys and their documented defaults.
const (
	KeyAC  = "filter_ac"
	KeyEMG = "filter_emg"
	KeyDFT = "filter_dft"

	DefaultAC  = "off"
	DefaultEMG = "150"
	DefaultDFT = "0.5"
)

// MapSettings adapts a plain map to the Settings interface. Missing keys
// resolve to the fallback.
type MapSettings map[string]string

// Setting implements Settings.
func (m MapSettings) Setting(key, fallback string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}

// ApplyFromSettings resolves the three selectors from the settings
// provider and conditions the strip with Apply. A nil provider behaves
// like an empty one: every key resolves to its default. Selector text
// that does not parse disables that stage and emits a Diagnostic, in
// keeping with the fail-soft stage contract.
func ApplyFromSettings(x []float64, sampleRate float64, settings Settings, opts ...filter.Option) []float64 {
	ac := resolveSelector(settings, KeyAC, DefaultAC, filter.StageNotch, sampleRate, opts)
	emg := resolveSelector(settings, KeyEMG, DefaultEMG, filter.StageMuscle, sampleRate, opts)
	dft := resolveSelector(settings, KeyDFT, DefaultDFT, filter.StageBaseline, sampleRate, opts)

	return Apply(x, sampleRate, ac, emg, dft, opts...)
}

func resolveSelector(settings Settings, key, fallback string, stage filter.Stage, sampleRate float64, opts []filter.Option) filter.Selector {
	text := fallback
	if settings != nil {
		text = settings.Setting(key, fallback)
	}

	sel, err := filter.ParseSelector(text)
	if err != nil {
		filter.Emit(filter.Diagnostic{
			Stage:      stage,
			SampleRate: sampleRate,
			Nyquist:    sampleRate / 2,
			Err:        err,
		}, opts...)

		return filter.Off()
	}

	return sel
}
