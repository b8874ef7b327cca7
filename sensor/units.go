package sensor

// Units of measurement used by the descriptor table.
const (
	UnitPercent         = "%"
	UnitCAQI            = "CAQI"
	UnitPPM             = "ppm"
	UnitMicrogramsPerM3 = "µg/m³"
	UnitLux             = "lx"
	UnitKilowattHour    = "kWh"
	UnitWatt            = "W"
	UnitCelsius         = "°C"
	UnitFahrenheit      = "°F"
	UnitKilogram        = "kg"
	UnitKilogramPerM2   = "kg/m²"
	UnitCubicMeter      = "m³"
)

// unitAliases normalizes vendor unit spellings to the platform constants.
// An empty value suppresses the unit entirely.
var unitAliases = map[string]string{
	"C":      UnitCelsius,
	"F":      UnitFahrenheit,
	"lux":    UnitLux,
	"mG":     "",
	"μg/m^3": UnitMicrogramsPerM3,
}

// resolveUnit maps a live reported unit through the alias table, falling
// back to the descriptor's static unit when no unit was reported. Unknown
// vendor units pass through unchanged.
func resolveUnit(live, static string) string {
	if live == "" {
		return static
	}
	if alias, ok := unitAliases[live]; ok {
		return alias
	}
	return live
}
