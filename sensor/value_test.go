package sensor

import (
	"slices"
	"testing"
	"time"

	"github.com/fen-lake/st2mqtt/smartthings"
)

func statusOf(v any) smartthings.Status {
	return smartthings.Status{Value: v}
}

func TestMapped(t *testing.T) {
	f := mapped(jobStateMap)
	for raw, want := range map[any]any{
		"airWash":   "air_wash",
		"aIRinse":   "ai_rinse",
		"preWash":   "pre_wash",
		"prewash":   "pre_wash",
		"rinse":     "rinse",
		"unknown":   nil,
		float64(12): nil,
	} {
		if got := f(raw); got != want {
			t.Errorf("mapped(%v) = %v, want %v", raw, got, want)
		}
	}
}

func TestMappedOvenMode(t *testing.T) {
	f := mapped(ovenModeMap)
	for raw, want := range map[any]any{
		"Bake":            "bake",
		"MWplusHotBlast2": "microwave_plus_hot_blast_2",
		"SomethingNew":    "SomethingNew",
	} {
		if got := f(raw); got != want {
			t.Errorf("mapped(%v) = %v, want %v", raw, got, want)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2025, 3, 7, 14, 21, 0, 0, time.UTC)
	got := parseTimestamp("2025-03-07T14:21:00Z")
	if tm, ok := got.(time.Time); !ok || !tm.Equal(want) {
		t.Errorf("parseTimestamp = %v, want %v", got, want)
	}

	for _, raw := range []any{"yesterday", "", nil, 42.0} {
		if got := parseTimestamp(raw); got != nil {
			t.Errorf("parseTimestamp(%v) = %v, want nil", raw, got)
		}
	}
}

func TestOvenSetpoint(t *testing.T) {
	for raw, want := range map[any]any{
		float64(0):   nil,
		float64(-17): nil,
		float64(180): float64(180),
		350:          350,
	} {
		if got := ovenSetpoint(raw); got != want {
			t.Errorf("ovenSetpoint(%v) = %v, want %v", raw, got, want)
		}
	}
	if got := ovenSetpoint(nil); got != nil {
		t.Errorf("ovenSetpoint(nil) = %v, want nil", got)
	}
}

func TestSubFields(t *testing.T) {
	report := map[string]any{
		"energy": float64(500),
		"power":  float64(42),
		"start":  "2025-03-07T00:00:00Z",
	}

	if got := subField("power")(report); got != float64(42) {
		t.Errorf("subField(power) = %v, want 42", got)
	}
	if got := subField("deltaEnergy")(report); got != nil {
		t.Errorf("subField(deltaEnergy) = %v, want nil", got)
	}
	if got := scaledSubField("energy", 1000)(report); got != float64(0.5) {
		t.Errorf("scaledSubField(energy) = %v, want 0.5", got)
	}

	if !hasSubField("energy")(statusOf(report)) {
		t.Error("hasSubField(energy) = false, want true")
	}
	if hasSubField("deltaEnergy")(statusOf(report)) {
		t.Error("hasSubField(deltaEnergy) = true, want false")
	}
}

func TestAxis(t *testing.T) {
	raw := []any{float64(12), float64(-34), float64(56)}
	for i, want := range []any{float64(12), float64(-34), float64(56)} {
		if got := axis(i)(raw); got != want {
			t.Errorf("axis(%d) = %v, want %v", i, got, want)
		}
	}
	if got := axis(3)(raw); got != nil {
		t.Errorf("axis(3) = %v, want nil", got)
	}
	if got := axis(0)("not a list"); got != nil {
		t.Errorf("axis(0) on non-list = %v, want nil", got)
	}
}

func TestPowerAttributes(t *testing.T) {
	attrs := powerAttributes(map[string]any{
		"energy": float64(500),
		"start":  "2025-03-07T00:00:00Z",
		"end":    "2025-03-07T01:00:00Z",
	})
	if got, want := attrs["power_consumption_start"], "2025-03-07T00:00:00Z"; got != want {
		t.Errorf("start = %v, want %v", got, want)
	}
	if got, want := attrs["power_consumption_end"], "2025-03-07T01:00:00Z"; got != want {
		t.Errorf("end = %v, want %v", got, want)
	}
	if _, ok := attrs["power_consumption_energy"]; ok {
		t.Error("energy leaked into attributes")
	}

	if got := powerAttributes("bogus"); got != nil {
		t.Errorf("powerAttributes on non-map = %v, want nil", got)
	}
}

func TestValuesSorted(t *testing.T) {
	opts := values(ovenModeMap)
	if !slices.IsSorted(opts) {
		t.Errorf("values not sorted: %v", opts)
	}
	if again := values(ovenModeMap); !slices.Equal(opts, again) {
		t.Errorf("values unstable: %v != %v", opts, again)
	}
}
