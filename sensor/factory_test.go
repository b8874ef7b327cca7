package sensor

import (
	"slices"
	"testing"

	"github.com/fen-lake/st2mqtt/smartthings"
)

func deviceWith(status smartthings.ComponentStatus) *smartthings.Device {
	return &smartthings.Device{
		DeviceID: "dev-1",
		Label:    "test device",
		Status: smartthings.DeviceStatus{
			smartthings.MainComponent: status,
		},
	}
}

func keys(entities []*Entity) []string {
	out := make([]string, 0, len(entities))
	for _, e := range entities {
		out = append(out, e.Descriptor().Key)
	}
	slices.Sort(out)
	return out
}

func TestEntitiesSimple(t *testing.T) {
	dev := deviceWith(smartthings.ComponentStatus{
		smartthings.CapabilityBattery: {
			smartthings.AttributeBattery: {Value: 87.0, Unit: "%"},
		},
	})

	entities := Entities(dev)
	if len(entities) != 1 {
		t.Fatalf("got %d entities, want 1", len(entities))
	}
	e := entities[0]
	if got, want := e.UniqueID(), "dev-1_main_battery_battery_battery"; got != want {
		t.Errorf("UniqueID = %q, want %q", got, want)
	}
	if got := e.Value(); got != 87.0 {
		t.Errorf("Value = %v, want 87", got)
	}
	if got := e.Unit(); got != "%" {
		t.Errorf("Unit = %q, want %%", got)
	}
}

func TestEntitiesUnknownCapability(t *testing.T) {
	dev := deviceWith(smartthings.ComponentStatus{
		"someVendorCapability": {
			"someAttribute": {Value: 1.0},
		},
	})
	if entities := Entities(dev); len(entities) != 0 {
		t.Errorf("got %v, want none", keys(entities))
	}
}

func TestEntitiesPowerConsumptionReport(t *testing.T) {
	report := map[string]any{
		"energy": float64(500),
		"power":  float64(42),
	}
	dev := deviceWith(smartthings.ComponentStatus{
		smartthings.CapabilityPowerConsumptionReport: {
			smartthings.AttributePowerConsumption: {Value: report},
		},
	})

	entities := Entities(dev)
	want := []string{"energy_meter", "power_meter"}
	if got := keys(entities); !slices.Equal(got, want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}

	for _, e := range entities {
		switch e.Descriptor().Key {
		case "energy_meter":
			if got := e.Value(); got != 0.5 {
				t.Errorf("energy = %v, want 0.5", got)
			}
			if got := e.Unit(); got != UnitKilowattHour {
				t.Errorf("energy unit = %q, want %q", got, UnitKilowattHour)
			}
		case "power_meter":
			if got := e.Value(); got != 42.0 {
				t.Errorf("power = %v, want 42", got)
			}
		}
	}
}

func TestEntitiesThermostatIgnoreList(t *testing.T) {
	// A full thermostat suppresses the standalone mode and setpoint
	// sensors; the temperature sensor survives.
	dev := deviceWith(smartthings.ComponentStatus{
		smartthings.CapabilityTemperatureMeasurement: {
			smartthings.AttributeTemperature: {Value: 21.0, Unit: "C"},
		},
		smartthings.CapabilityThermostatHeatingSetpoint: {
			smartthings.AttributeHeatingSetpoint: {Value: 19.0, Unit: "C"},
		},
		smartthings.CapabilityThermostatMode: {
			smartthings.AttributeThermostatMode: {Value: "heat"},
		},
	})

	got := keys(Entities(dev))
	want := []string{"temperature"}
	if !slices.Equal(got, want) {
		t.Errorf("keys = %v, want %v", got, want)
	}
}

func TestEntitiesThermostatStandalone(t *testing.T) {
	// Without the full thermostat capability set the setpoint sensor is
	// created.
	dev := deviceWith(smartthings.ComponentStatus{
		smartthings.CapabilityThermostatHeatingSetpoint: {
			smartthings.AttributeHeatingSetpoint: {Value: 19.0, Unit: "C"},
		},
	})

	got := keys(Entities(dev))
	want := []string{"heatingSetpoint"}
	if !slices.Equal(got, want) {
		t.Errorf("keys = %v, want %v", got, want)
	}
}

func TestEntitiesThreeAxis(t *testing.T) {
	dev := deviceWith(smartthings.ComponentStatus{
		smartthings.CapabilityThreeAxis: {
			smartthings.AttributeThreeAxis: {Value: []any{float64(12), float64(-34), float64(56)}},
		},
	})

	entities := Entities(dev)
	want := []string{"x_coordinate", "y_coordinate", "z_coordinate"}
	if got := keys(entities); !slices.Equal(got, want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	for _, e := range entities {
		if e.Value() == nil {
			t.Errorf("%s = nil", e.Descriptor().Key)
		}
	}
}
