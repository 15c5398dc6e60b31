package filter

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestStageString(t *testing.T) {
	cases := []struct {
		stage Stage
		want  string
	}{
		{StageBaseline, "baseline"},
		{StageMuscle, "muscle"},
		{StageNotch, "notch"},
		{Stage(9), "stage(9)"},
	}

	for _, tc := range cases {
		if got := tc.stage.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Stage:      StageNotch,
		Frequency:  60,
		SampleRate: 100,
		Nyquist:    50,
		Err:        ErrFrequencyRange,
	}

	want := "notch filter at 60 Hz (nyquist 50 Hz) skipped: filter: frequency outside (0, nyquist)"
	if got := d.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestLogReporterLevels(t *testing.T) {
	var buf bytes.Buffer

	reporter := LogReporter(slog.New(slog.NewTextHandler(&buf, nil)))

	reporter(Diagnostic{
		Stage:     StageNotch,
		Frequency: 60,
		Nyquist:   50,
		Err:       ErrFrequencyRange,
	})

	out := buf.String()
	if !strings.Contains(out, "level=WARN") {
		t.Errorf("range violation should log at warning level: %q", out)
	}

	if !strings.Contains(out, "stage=notch") || !strings.Contains(out, "frequency_hz=60") {
		t.Errorf("missing structured attributes: %q", out)
	}

	buf.Reset()

	reporter(Diagnostic{
		Stage:     StageMuscle,
		Frequency: 150,
		Nyquist:   250,
		Err:       errors.New("boom"),
	})

	out = buf.String()
	if !strings.Contains(out, "level=ERROR") {
		t.Errorf("internal failure should log at error level: %q", out)
	}

	if !strings.Contains(out, "boom") {
		t.Errorf("missing error attribute: %q", out)
	}
}

func TestLogReporterNilLogger(t *testing.T) {
	var buf bytes.Buffer

	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(old) })

	reporter := LogReporter(nil)
	reporter(Diagnostic{Stage: StageBaseline, Frequency: 60, Nyquist: 50, Err: ErrFrequencyRange})

	if !strings.Contains(buf.String(), "stage=baseline") {
		t.Errorf("nil logger should fall back to the default: %q", buf.String())
	}
}

func TestEmitUsesConfiguredReporter(t *testing.T) {
	var got []Diagnostic

	d := Diagnostic{Stage: StageNotch, Frequency: 60, Nyquist: 50, Err: ErrFrequencyRange}
	Emit(d, WithReporter(func(d Diagnostic) { got = append(got, d) }))

	if len(got) != 1 || got[0] != d {
		t.Fatalf("Emit delivered %v, want %v", got, d)
	}
}
