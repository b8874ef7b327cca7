package sensor

import (
	"slices"
	"testing"
	"time"

	"github.com/fen-lake/st2mqtt/smartthings"
)

func singleEntity(t *testing.T, dev *smartthings.Device, key string) *Entity {
	t.Helper()
	for _, e := range Entities(dev) {
		if e.Descriptor().Key == key {
			return e
		}
	}
	t.Fatalf("no entity with key %q", key)
	return nil
}

func TestEntityOvenSetpointUnit(t *testing.T) {
	// The setpoint itself reports no unit; it is displayed in whatever
	// unit the device's temperature sensor uses.
	dev := deviceWith(smartthings.ComponentStatus{
		smartthings.CapabilityOvenSetpoint: {
			smartthings.AttributeOvenSetpoint: {Value: 350.0},
		},
		smartthings.CapabilityTemperatureMeasurement: {
			smartthings.AttributeTemperature: {Value: 178.0, Unit: "F"},
		},
	})

	e := singleEntity(t, dev, "ovenSetpoint")
	if got := e.Value(); got != 350.0 {
		t.Errorf("Value = %v, want 350", got)
	}
	if got := e.Unit(); got != UnitFahrenheit {
		t.Errorf("Unit = %q, want %q", got, UnitFahrenheit)
	}

	caps := e.Capabilities()
	if !slices.Contains(caps, smartthings.CapabilityTemperatureMeasurement) {
		t.Errorf("Capabilities = %v, missing temperatureMeasurement", caps)
	}
}

func TestEntityOvenSetpointSentinel(t *testing.T) {
	dev := deviceWith(smartthings.ComponentStatus{
		smartthings.CapabilityOvenSetpoint: {
			smartthings.AttributeOvenSetpoint: {Value: 0.0},
		},
	})
	if got := singleEntity(t, dev, "ovenSetpoint").Value(); got != nil {
		t.Errorf("Value = %v, want nil", got)
	}
}

func TestEntityCompletionTime(t *testing.T) {
	dev := deviceWith(smartthings.ComponentStatus{
		smartthings.CapabilityDryerOperatingState: {
			smartthings.AttributeMachineState:   {Value: "run"},
			smartthings.AttributeCompletionTime: {Value: "2025-03-07T14:21:00Z"},
			smartthings.AttributeDryerJobState:  {Value: "aIDrying"},
		},
	})

	e := singleEntity(t, dev, "completionTime")
	tm, ok := e.Value().(time.Time)
	if !ok {
		t.Fatalf("Value = %T, want time.Time", e.Value())
	}
	if want := time.Date(2025, 3, 7, 14, 21, 0, 0, time.UTC); !tm.Equal(want) {
		t.Errorf("Value = %v, want %v", tm, want)
	}

	if got := singleEntity(t, dev, "dryerJobState").Value(); got != "ai_drying" {
		t.Errorf("job state = %v, want ai_drying", got)
	}
}

func TestEntityLiveOptions(t *testing.T) {
	dev := deviceWith(smartthings.ComponentStatus{
		smartthings.CapabilityMediaInputSource: {
			smartthings.AttributeInputSource: {Value: "HDMI1"},
			smartthings.AttributeSupportedInputSources: {
				Value: []any{"HDMI1", "HDMI2", "Bluetooth"},
			},
		},
	})

	e := singleEntity(t, dev, "inputSource")
	if got := e.Value(); got != "hdmi1" {
		t.Errorf("Value = %v, want hdmi1", got)
	}
	want := []string{"hdmi1", "hdmi2", "bluetooth"}
	if got := e.Options(); !slices.Equal(got, want) {
		t.Errorf("Options = %v, want %v", got, want)
	}
	if got := e.Deprecation(); got != "media_player" {
		t.Errorf("Deprecation = %q, want media_player", got)
	}
}

func TestEntityLiveOptionsMissing(t *testing.T) {
	dev := deviceWith(smartthings.ComponentStatus{
		smartthings.CapabilityMediaInputSource: {
			smartthings.AttributeInputSource: {Value: "HDMI1"},
		},
	})

	got := singleEntity(t, dev, "inputSource").Options()
	if got == nil || len(got) != 0 {
		t.Errorf("Options = %v, want empty non-nil", got)
	}
}

func TestEntityVolumeDeprecation(t *testing.T) {
	status := smartthings.ComponentStatus{
		smartthings.CapabilityAudioVolume: {
			smartthings.AttributeVolume: {Value: 30.0, Unit: "%"},
		},
	}
	dev := deviceWith(status)
	if got := singleEntity(t, dev, "volume").Deprecation(); got != "" {
		t.Errorf("Deprecation = %q, want none", got)
	}

	// A device that also mutes and plays media gets a media player
	// entity, superseding the volume sensor.
	status[smartthings.CapabilityAudioMute] = map[smartthings.Attribute]smartthings.Status{
		smartthings.AttributeMute: {Value: "muted"},
	}
	status[smartthings.CapabilityMediaPlayback] = map[smartthings.Attribute]smartthings.Status{
		smartthings.AttributePlaybackStatus: {Value: "playing"},
	}
	if got := singleEntity(t, dev, "volume").Deprecation(); got != "media_player" {
		t.Errorf("Deprecation = %q, want media_player", got)
	}
}

func TestEntityExtraStateAttributes(t *testing.T) {
	dev := deviceWith(smartthings.ComponentStatus{
		smartthings.CapabilityPowerConsumptionReport: {
			smartthings.AttributePowerConsumption: {Value: map[string]any{
				"power": float64(42),
				"start": "2025-03-07T00:00:00Z",
				"end":   "2025-03-07T01:00:00Z",
			}},
		},
	})

	attrs := singleEntity(t, dev, "power_meter").ExtraStateAttributes()
	if got := attrs["power_consumption_start"]; got != "2025-03-07T00:00:00Z" {
		t.Errorf("start = %v", got)
	}
	if got := attrs["power_consumption_end"]; got != "2025-03-07T01:00:00Z" {
		t.Errorf("end = %v", got)
	}
}

func TestEntityTranslationKey(t *testing.T) {
	dev := deviceWith(smartthings.ComponentStatus{
		smartthings.CapabilityBattery: {
			smartthings.AttributeBattery: {Value: 87.0, Unit: "%"},
		},
		smartthings.CapabilityOvenSetpoint: {
			smartthings.AttributeOvenSetpoint: {Value: 180.0},
		},
	})

	// Falls back to the descriptor key when no translation key is set.
	if got := singleEntity(t, dev, "battery").TranslationKey(); got != "battery" {
		t.Errorf("TranslationKey = %q, want battery", got)
	}
	if got := singleEntity(t, dev, "ovenSetpoint").TranslationKey(); got != "oven_setpoint" {
		t.Errorf("TranslationKey = %q, want oven_setpoint", got)
	}
}
