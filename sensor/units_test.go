package sensor

import "testing"

func TestResolveUnit(t *testing.T) {
	tests := []struct {
		live, static, want string
	}{
		{"C", "", UnitCelsius},
		{"F", "", UnitFahrenheit},
		{"lux", "", UnitLux},
		{"mG", "", ""},
		{"μg/m^3", "", UnitMicrogramsPerM3},
		{"%", UnitPercent, "%"},
		{"", UnitKilowattHour, UnitKilowattHour},
		{"", "", ""},
		{"ppm", "", "ppm"},
	}
	for _, tt := range tests {
		if got := resolveUnit(tt.live, tt.static); got != tt.want {
			t.Errorf("resolveUnit(%q, %q) = %q, want %q", tt.live, tt.static, got, tt.want)
		}
	}
}
