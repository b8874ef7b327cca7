package sensor

import (
	"github.com/fen-lake/st2mqtt/smartthings"
)

// Entities returns the sensor entities a device supports, by running the
// main component's status snapshot through Table. For every capability the
// device reports, each descriptor is checked against its applicability
// rules; descriptors that do not apply are skipped silently. A device with
// no qualifying descriptors yields an empty slice.
func Entities(dev *smartthings.Device) []*Entity {
	status := dev.Main()

	var entities []*Entity

	for capability, attributes := range Table {
		if !status.Has(capability) {
			continue
		}

		for attribute, descriptors := range attributes {
			for _, desc := range descriptors {
				if ignored(status, desc.CapabilityIgnoreList) {
					continue
				}
				if desc.Exists != nil && !desc.Exists(status.Get(capability, attribute)) {
					continue
				}

				entities = append(entities, NewEntity(dev, capability, attribute, desc))
			}
		}
	}

	return entities
}

// ignored reports whether any one of the ignore sets is fully contained in
// the device's capability set. An empty list never suppresses.
func ignored(status smartthings.ComponentStatus, ignoreList [][]smartthings.Capability) bool {
	for _, set := range ignoreList {
		if status.HasAll(set...) {
			return true
		}
	}
	return false
}
