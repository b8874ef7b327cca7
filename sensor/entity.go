package sensor

import (
	"strings"

	"github.com/fen-lake/st2mqtt/smartthings"
)

// Entity presents one live attribute value of one device as a sensor. It
// holds an immutable binding established at construction; values are
// recomputed from the device's current status snapshot on every read.
type Entity struct {
	device     *smartthings.Device
	capability smartthings.Capability
	attribute  smartthings.Attribute
	desc       Descriptor
}

// NewEntity binds a device, capability, attribute, and descriptor into a
// sensor entity. Callers normally use Entities instead, which applies the
// descriptor's applicability rules.
func NewEntity(dev *smartthings.Device, c smartthings.Capability, a smartthings.Attribute, desc Descriptor) *Entity {
	return &Entity{
		device:     dev,
		capability: c,
		attribute:  a,
		desc:       desc,
	}
}

// Device returns the device the entity is bound to.
func (e *Entity) Device() *smartthings.Device { return e.device }

// Capability returns the primary capability the entity reads.
func (e *Entity) Capability() smartthings.Capability { return e.capability }

// Attribute returns the attribute the entity reads.
func (e *Entity) Attribute() smartthings.Attribute { return e.attribute }

// Descriptor returns the descriptor the entity was built from.
func (e *Entity) Descriptor() Descriptor { return e.desc }

// UniqueID returns the globally unique identity of the entity.
func (e *Entity) UniqueID() string {
	return strings.Join([]string{
		e.device.DeviceID,
		smartthings.MainComponent,
		string(e.capability),
		string(e.attribute),
		e.desc.Key,
	}, "_")
}

// Slug returns the entity's identity within its device, suitable for use
// as a topic segment.
func (e *Entity) Slug() string {
	return strings.Join([]string{
		string(e.capability),
		string(e.attribute),
		e.desc.Key,
	}, "_")
}

// TranslationKey returns the display-name lookup key, falling back to the
// descriptor key.
func (e *Entity) TranslationKey() string {
	if e.desc.TranslationKey != "" {
		return e.desc.TranslationKey
	}
	return e.desc.Key
}

// raw returns the current raw status of the entity's attribute.
func (e *Entity) raw() smartthings.Status {
	return e.device.Main().Get(e.capability, e.attribute)
}

// Value returns the current display value: the live raw value run through
// the descriptor's transform. Missing data yields nil.
func (e *Entity) Value() any {
	return e.desc.transform(e.raw().Value)
}

// Unit returns the unit the value is expressed in. The live reported unit
// wins over the descriptor's static unit; with UseTemperatureUnit the
// unit comes from the device's temperature measurement instead, because
// appliance setpoints are reported in whatever unit the device's primary
// temperature sensor uses.
func (e *Entity) Unit() string {
	var live string
	if e.desc.UseTemperatureUnit {
		live = e.device.Main().Get(
			smartthings.CapabilityTemperatureMeasurement,
			smartthings.AttributeTemperature,
		).Unit
	} else {
		live = e.raw().Unit
	}
	return resolveUnit(live, e.desc.Unit)
}

// Options returns the valid values for enum sensors. When the descriptor
// names an options attribute, the list is read live from the device and
// lower-cased; a missing live list yields an empty slice.
func (e *Entity) Options() []string {
	if e.desc.OptionsAttribute == "" {
		return e.desc.Options
	}

	raw, ok := e.device.Main().Get(e.capability, e.desc.OptionsAttribute).Value.([]any)
	if !ok {
		return []string{}
	}

	opts := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			opts = append(opts, strings.ToLower(s))
		}
	}

	return opts
}

// ExtraStateAttributes returns auxiliary display attributes derived from
// the raw value, or nil when the descriptor defines none.
func (e *Entity) ExtraStateAttributes() map[string]any {
	if e.desc.ExtraStateAttributes == nil {
		return nil
	}
	return e.desc.ExtraStateAttributes(e.raw().Value)
}

// Capabilities returns the capabilities the entity needs live updates
// for: the primary capability, plus temperature measurement when the
// displayed unit tracks it.
func (e *Entity) Capabilities() []smartthings.Capability {
	caps := []smartthings.Capability{e.capability}
	if e.desc.UseTemperatureUnit && e.capability != smartthings.CapabilityTemperatureMeasurement {
		caps = append(caps, smartthings.CapabilityTemperatureMeasurement)
	}
	return caps
}

// Deprecation returns the migration reason if the entity is superseded by
// a richer entity given the device's current status, or "".
func (e *Entity) Deprecation() string {
	if e.desc.Deprecated == nil {
		return ""
	}
	return e.desc.Deprecated(e.device.Main())
}
