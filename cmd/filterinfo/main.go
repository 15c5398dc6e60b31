// Command filterinfo prints the stage designs and the effective frequency
// response of the ECG conditioning pipeline.
//
// Usage:
//
//	filterinfo [flags]
//
// The three stages are listed in processing order: baseline wander removal,
// muscle artifact suppression and the mains notch. Each stage filters the
// strip forward and reverse, so the response table reports the combined
// two-pass magnitude.
//
// Examples:
//
//	filterinfo -ac 50
//	filterinfo -rate 1000 -ac 60 -emg 150 -dft 0.05
//	filterinfo -ac 50 -fmin 1 -fmax 250 -points 40
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-ecg/dsp/design"
	"github.com/cwbudde/algo-ecg/dsp/sos"
	"github.com/cwbudde/algo-ecg/dsp/zerophase"
	"github.com/cwbudde/algo-ecg/ecg/filter"
)

type stageInfo struct {
	stage   filter.Stage
	sel     filter.Selector
	design  string
	cascade *sos.Cascade
	minLen  int
}

func main() {
	rate := flag.Float64("rate", 500, "sample rate in Hz")
	ac := flag.String("ac", "off", "mains notch frequency in Hz, or off")
	emg := flag.String("emg", "150", "muscle filter cutoff in Hz, or off")
	dft := flag.String("dft", "0.5", "baseline filter cutoff in Hz, or off")
	points := flag.Int("points", 20, "number of response table rows")
	fmin := flag.Float64("fmin", 0.01, "lowest probe frequency in Hz")
	fmax := flag.Float64("fmax", 0, "highest probe frequency in Hz (0 = nyquist)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filterinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the ECG conditioning stage designs and their combined\n")
		fmt.Fprintf(os.Stderr, "zero-phase magnitude response.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -ac 50\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -rate 1000 -ac 60 -dft 0.05\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -ac 50 -fmin 1 -fmax 250 -points 40\n")
	}
	flag.Parse()

	if *rate <= 0 || math.IsNaN(*rate) || math.IsInf(*rate, 0) {
		fmt.Fprintf(os.Stderr, "error: sample rate must be positive and finite\n")
		os.Exit(1)
	}

	acSel := parseSelector("ac", *ac)
	emgSel := parseSelector("emg", *emg)
	dftSel := parseSelector("dft", *dft)

	stages := buildStages(*rate, acSel, emgSel, dftSel)

	fmt.Printf("Conditioning stages at %g Hz sample rate:\n\n", *rate)
	printStages(stages)

	active := false
	for _, info := range stages {
		if info.cascade != nil {
			active = true
			break
		}
	}
	if !active {
		fmt.Printf("\nAll stages are off; signals pass through unchanged.\n")
		return
	}

	top := *fmax
	if top == 0 {
		top = *rate / 2
	}
	if *fmin <= 0 || top <= *fmin || *points < 2 {
		fmt.Fprintf(os.Stderr, "error: need 0 < fmin < fmax and at least 2 points\n")
		os.Exit(1)
	}

	fmt.Printf("\nZero-phase magnitude response (forward and reverse pass):\n\n")
	printResponse(stages, *rate, *fmin, top, *points)
}

// parseSelector mirrors the pipeline's fail-soft handling: a value that
// does not parse is reported and the stage stays off.
func parseSelector(name, text string) filter.Selector {
	sel, err := filter.ParseSelector(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: -%s: %v\n", name, err)
	}
	return sel
}

func buildStages(rate float64, ac, emg, dft filter.Selector) []stageInfo {
	infos := []stageInfo{
		{stage: filter.StageBaseline, sel: dft, design: "butterworth highpass"},
		{stage: filter.StageMuscle, sel: emg, design: "butterworth highpass"},
		{stage: filter.StageNotch, sel: ac, design: fmt.Sprintf("rbj notch (Q=%g)", filter.NotchQ)},
	}

	for i := range infos {
		info := &infos[i]
		if !info.sel.Enabled() {
			continue
		}

		freq := info.sel.Frequency()
		if math.IsNaN(freq) || freq <= 0 || freq >= rate/2 {
			warn(info.stage, freq, rate, filter.ErrFrequencyRange)
			info.sel = filter.Off()
			continue
		}

		var sections []sos.Coefficients
		switch info.stage {
		case filter.StageBaseline:
			sections = design.ButterworthHP(freq, filter.BaselineOrder, rate)
		case filter.StageMuscle:
			sections = design.ButterworthHP(freq, filter.MuscleOrder, rate)
		case filter.StageNotch:
			sections = []sos.Coefficients{design.Notch(freq, filter.NotchQ, rate)}
		}

		if len(sections) == 0 || sections[0] == (sos.Coefficients{}) {
			warn(info.stage, freq, rate, filter.ErrDesign)
			info.sel = filter.Off()
			continue
		}

		info.cascade = sos.NewCascade(sections)
		info.minLen = zerophase.PadLen(sections) + 1
	}

	return infos
}

func warn(stage filter.Stage, freq, rate float64, err error) {
	d := filter.Diagnostic{
		Stage:      stage,
		Frequency:  freq,
		SampleRate: rate,
		Nyquist:    rate / 2,
		Err:        err,
	}
	fmt.Fprintf(os.Stderr, "warning: %s\n", d)
}

func printStages(stages []stageInfo) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Stage\tSetting\tDesign\tSections\tOrder\tMin Samples\tStable\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "-----\t-------\t------\t--------\t-----\t-----------\t------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, info := range stages {
		if info.cascade == nil {
			if _, err := fmt.Fprintf(tw, "%s\toff\t-\t-\t-\t-\t-\n", info.stage); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
				return
			}
			continue
		}

		if _, err := fmt.Fprintf(tw, "%s\t%s Hz\t%s\t%d\t%d\t%d\t%t\n",
			info.stage,
			info.sel,
			info.design,
			info.cascade.NumSections(),
			info.cascade.Order(),
			info.minLen,
			info.cascade.Stable(),
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printResponse(stages []stageInfo, rate, fmin, fmax float64, points int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Frequency [Hz]\tBaseline [dB]\tMuscle [dB]\tNotch [dB]\tTotal [dB]\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "--------------\t-------------\t-----------\t----------\t----------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	ratio := fmax / fmin
	for i := 0; i < points; i++ {
		f := fmin * math.Pow(ratio, float64(i)/float64(points-1))
		w := 2 * math.Pi * f / rate

		cells := make([]string, 0, len(stages))
		total := 0.0
		for _, info := range stages {
			if info.cascade == nil {
				cells = append(cells, "-")
				continue
			}
			db := 2 * info.cascade.MagnitudeDB(w)
			total += db
			cells = append(cells, fmt.Sprintf("%.2f", db))
		}

		if _, err := fmt.Fprintf(tw, "%.4g\t%s\t%s\t%s\t%.2f\n",
			f, cells[0], cells[1], cells[2], total,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
