package filter

import "testing"

func TestParseSelector(t *testing.T) {
	cases := []struct {
		text string
		want Selector
	}{
		{"off", Off()},
		{"OFF", Off()},
		{" Off ", Off()},
		{"", Off()},
		{"   ", Off()},
		{"50", At(50)},
		{"60", At(60)},
		{"0.05", At(0.05)},
		{"0.5", At(0.5)},
		{"150", At(150)},
		{"1e2", At(100)},
		{" 25 ", At(25)},
	}

	for _, tc := range cases {
		got, err := ParseSelector(tc.text)
		if err != nil {
			t.Errorf("ParseSelector(%q): %v", tc.text, err)
			continue
		}

		if got != tc.want {
			t.Errorf("ParseSelector(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestParseSelectorInvalid(t *testing.T) {
	for _, text := range []string{"abc", "50Hz", "5,5", "on"} {
		got, err := ParseSelector(text)
		if err == nil {
			t.Errorf("ParseSelector(%q) should fail", text)
		}

		if got != Off() {
			t.Errorf("ParseSelector(%q) = %v, want Off on error", text, got)
		}
	}
}

func TestSelectorString(t *testing.T) {
	cases := []struct {
		sel  Selector
		want string
	}{
		{Off(), "off"},
		{At(50), "50"},
		{At(150), "150"},
		{At(0.05), "0.05"},
		{At(0.5), "0.5"},
	}

	for _, tc := range cases {
		if got := tc.sel.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestSelectorRoundTrip(t *testing.T) {
	for _, sel := range []Selector{Off(), At(50), At(0.05), At(150)} {
		got, err := ParseSelector(sel.String())
		if err != nil {
			t.Fatalf("round trip %v: %v", sel, err)
		}

		if got != sel {
			t.Errorf("round trip %v = %v", sel, got)
		}
	}
}

func TestSelectorAccessors(t *testing.T) {
	if Off().Enabled() {
		t.Error("Off should be disabled")
	}

	if Off().Frequency() != 0 {
		t.Errorf("Off frequency = %v, want 0", Off().Frequency())
	}

	sel := At(25)
	if !sel.Enabled() {
		t.Error("At(25) should be enabled")
	}

	if sel.Frequency() != 25 {
		t.Errorf("At(25) frequency = %v", sel.Frequency())
	}

	var zero Selector
	if zero.Enabled() {
		t.Error("zero value should be disabled")
	}
}
