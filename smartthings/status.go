package smartthings

import (
	"encoding/json"
	"time"
)

// MainComponent is the id of the primary component of a multi-component
// device. All sensor mapping reads the main component's status.
const MainComponent = "main"

// Status is the reported state of a single attribute: the raw value, the
// unit it was reported in (if any), and the time it was reported.
type Status struct {
	Value     any       `json:"value"`
	Unit      string    `json:"unit,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// ComponentStatus is the status snapshot of one device component, keyed
// by capability then attribute.
type ComponentStatus map[Capability]map[Attribute]Status

// Has reports whether the component declares the given capability.
func (s ComponentStatus) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

// HasAll reports whether the component declares every capability in caps.
// An empty set is trivially satisfied.
func (s ComponentStatus) HasAll(caps ...Capability) bool {
	for _, c := range caps {
		if !s.Has(c) {
			return false
		}
	}
	return true
}

// Get returns the status of the given attribute, or the zero Status if the
// component does not report it.
func (s ComponentStatus) Get(c Capability, a Attribute) Status {
	return s[c][a]
}

// DeviceStatus is the full status snapshot of a device, keyed by component id.
type DeviceStatus map[string]ComponentStatus

// Main returns the status of the device's main component, which may be nil.
func (s DeviceStatus) Main() ComponentStatus {
	return s[MainComponent]
}

// Float returns the raw value as a float64. JSON numbers decode as float64;
// anything else reports false.
func (s Status) Float() (float64, bool) {
	switch v := s.Value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

// String returns the raw value as a string, or "" if it is not one.
func (s Status) String() string {
	v, _ := s.Value.(string)
	return v
}
