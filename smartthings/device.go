package smartthings

// Device is a SmartThings device together with its most recent status
// snapshot. The snapshot is owned and refreshed by the client's caller;
// sensor entities only ever read it.
type Device struct {
	DeviceID string `json:"deviceId"`
	Label    string `json:"label"`
	Name     string `json:"name"`

	Status DeviceStatus `json:"-"`
}

// DisplayName returns the user-facing name of the device, preferring the
// user-assigned label over the vendor name.
func (d *Device) DisplayName() string {
	if d.Label != "" {
		return d.Label
	}
	return d.Name
}

// Main returns the status of the device's main component. The returned map
// is nil if no status has been fetched yet.
func (d *Device) Main() ComponentStatus {
	return d.Status.Main()
}
