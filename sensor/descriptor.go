// Package sensor maps SmartThings capability/attribute telemetry to typed
// Home Assistant sensors. The heart of the package is Table, a static
// registry of descriptors; Entities runs a device's status snapshot
// through the registry to produce the sensor entities the device supports.
package sensor

import (
	"github.com/fen-lake/st2mqtt/smartthings"
)

// DeviceClass is the Home Assistant sensor device class.
type DeviceClass string

const (
	DeviceClassBattery        DeviceClass = "battery"
	DeviceClassCO             DeviceClass = "carbon_monoxide"
	DeviceClassCO2            DeviceClass = "carbon_dioxide"
	DeviceClassEnergy         DeviceClass = "energy"
	DeviceClassEnum           DeviceClass = "enum"
	DeviceClassGas            DeviceClass = "gas"
	DeviceClassHumidity       DeviceClass = "humidity"
	DeviceClassIlluminance    DeviceClass = "illuminance"
	DeviceClassPM1            DeviceClass = "pm1"
	DeviceClassPM10           DeviceClass = "pm10"
	DeviceClassPM25           DeviceClass = "pm25"
	DeviceClassPower          DeviceClass = "power"
	DeviceClassSignalStrength DeviceClass = "signal_strength"
	DeviceClassTemperature    DeviceClass = "temperature"
	DeviceClassTimestamp      DeviceClass = "timestamp"
	DeviceClassVOC            DeviceClass = "volatile_organic_compounds_parts"
	DeviceClassVoltage        DeviceClass = "voltage"
	DeviceClassWeight         DeviceClass = "weight"
)

// StateClass is the Home Assistant sensor state class.
type StateClass string

const (
	StateClassMeasurement     StateClass = "measurement"
	StateClassTotal           StateClass = "total"
	StateClassTotalIncreasing StateClass = "total_increasing"
)

// CategoryDiagnostic marks an entity as diagnostic rather than primary.
const CategoryDiagnostic = "diagnostic"

type (
	// ValueFunc transforms a raw attribute value into the value to
	// display. Implementations must tolerate nil or malformed input and
	// return nil rather than panic.
	ValueFunc func(any) any

	// AttributesFunc derives auxiliary display attributes from a raw
	// attribute value.
	AttributesFunc func(any) map[string]any

	// ExistsFunc is a predicate on the live attribute status deciding
	// whether a descriptor applies to a device at all.
	ExistsFunc func(smartthings.Status) bool

	// DeprecatedFunc inspects a device's main-component status and
	// returns the migration reason if the sensor is superseded by a
	// richer entity, or "" if it is not.
	DeprecatedFunc func(smartthings.ComponentStatus) string
)

// Descriptor defines how one attribute is surfaced as one sensor. All
// fields are set at construction of Table and never mutated.
type Descriptor struct {
	// Key is the stable identity suffix used in unique ids.
	Key string
	// TranslationKey is the display-name lookup key, if any.
	TranslationKey string
	// Unit is the static unit of the raw value. The live reported unit,
	// when present, takes precedence.
	Unit string

	DeviceClass    DeviceClass
	StateClass     StateClass
	EntityCategory string

	// Options is the closed set of allowed values for enum sensors.
	Options []string
	// OptionsAttribute names a second attribute whose live value supplies
	// the option list instead of Options.
	OptionsAttribute smartthings.Attribute

	SuggestedDisplayPrecision int

	// Value transforms the raw value; nil means identity.
	Value ValueFunc
	// ExtraStateAttributes derives auxiliary attributes, if set.
	ExtraStateAttributes AttributesFunc

	// CapabilityIgnoreList suppresses the descriptor when the device
	// possesses every capability in any one of the listed sets.
	CapabilityIgnoreList [][]smartthings.Capability

	// Exists, when set, must evaluate true against the live attribute
	// status for an entity to be created.
	Exists ExistsFunc

	// UseTemperatureUnit resolves the displayed unit from the device's
	// temperatureMeasurement attribute instead of the descriptor.
	UseTemperatureUnit bool

	// Deprecated flags the sensor as superseded, keyed by reason.
	Deprecated DeprecatedFunc
}

// transform applies the descriptor's value function, defaulting to identity.
func (d *Descriptor) transform(raw any) any {
	if d.Value == nil {
		return raw
	}
	return d.Value(raw)
}
