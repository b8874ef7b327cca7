package discovery

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fen-lake/st2mqtt/smartthings"
)

// Connection is a tuple of the form [connection_type, connection_identifier]
// used for the device mapping of the discovery payload.
type Connection [2]string

// Device implements the device mapping for the discovery payload. This ties
// components together in Home Assistant's device registry.
type Device struct {
	ConfigurationURL string       `json:"cu,omitempty"`
	Connections      []Connection `json:"cns,omitempty"`
	HWVersion        string       `json:"hw,omitempty"`
	Identifiers      []string     `json:"ids,omitempty"`
	Manufacturer     string       `json:"mf,omitempty"`
	Model            string       `json:"mdl,omitempty"`
	ModelID          string       `json:"mdl_id,omitempty"`
	Name             string       `json:"name,omitempty"`
	SerialNumber     string       `json:"sn,omitempty"`
	SuggestedArea    string       `json:"sa,omitempty"`
	SWVersion        string       `json:"sw,omitempty"`
}

var titler = cases.Title(language.English)

// NewDevice returns the device mapping for a SmartThings device. The
// SmartThings device id doubles as the registry identifier.
func NewDevice(dev *smartthings.Device) *Device {
	d := &Device{
		Identifiers:  []string{dev.DeviceID},
		Manufacturer: "SmartThings",
		Model:        dev.Name,
	}
	if dev.Label != "" {
		d.Name = titler.String(dev.Label)
	} else {
		d.Name = titler.String(dev.Name)
	}
	return d
}
