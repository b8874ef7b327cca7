// Package discovery builds Home Assistant MQTT device discovery payloads
// for bridged SmartThings devices.
package discovery

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/fen-lake/st2mqtt/config"
	"github.com/fen-lake/st2mqtt/sensor"
)

// Component platforms
const (
	Sensor = "sensor"
)

// NodeID is the node segment of device discovery topics.
const NodeID = "st2mqtt"

// Component is one entity mapping of the discovery payload, keyed by
// abbreviated option names.
type Component map[Option]any

// Discovery is the device-based discovery payload for one SmartThings
// device and all of its sensor entities.
type Discovery struct {
	Origin     *Origin              `json:"o"`
	Device     *Device              `json:"dev"`
	Components map[string]Component `json:"cmps"`

	cfg *config.DiscoveryConfig

	ObjectID string `json:"-"`
}

// New builds the discovery payload for the entities of one device. The
// state topics referenced by the payload follow the bridge's layout,
// baseTopic/deviceID/slug.
func New(cfg *config.DiscoveryConfig, baseTopic string, entities []*sensor.Entity) (*Discovery, error) {
	if len(entities) == 0 {
		return nil, errors.New("discovery: no entities")
	}
	dev := entities[0].Device()

	d := &Discovery{
		Origin:     NewOrigin(),
		Device:     NewDevice(dev),
		Components: make(map[string]Component, len(entities)),
		cfg:        cfg,
		ObjectID:   dev.DeviceID,
	}
	for _, e := range entities {
		d.Components[e.Slug()] = d.component(baseTopic, e)
	}
	if cfg.Availability != "" {
		d.SetAvailability(Component{
			Topic: cfg.Availability,
		})
	}
	return d, nil
}

func (d *Discovery) component(baseTopic string, e *sensor.Entity) Component {
	desc := e.Descriptor()
	cmp := Component{
		Platform:   Sensor,
		Name:       displayName(e.TranslationKey()),
		UniqueID:   e.UniqueID(),
		StateTopic: EntityTopic(baseTopic, e),
	}
	if desc.DeviceClass != "" {
		cmp[DeviceClass] = desc.DeviceClass
	}
	if desc.StateClass != "" {
		cmp[StateClass] = desc.StateClass
	}
	if unit := e.Unit(); unit != "" {
		cmp[UnitOfMeasurement] = unit
	}
	if desc.EntityCategory != "" {
		cmp[EntityCategory] = desc.EntityCategory
	}
	if desc.SuggestedDisplayPrecision > 0 {
		cmp[SuggestedDisplayPrecision] = desc.SuggestedDisplayPrecision
	}
	if opts := e.Options(); len(opts) > 0 {
		cmp[Options] = opts
	}
	if desc.ExtraStateAttributes != nil {
		cmp[JSONAttributesTopic] = EntityAttributesTopic(baseTopic, e)
	}
	return cmp
}

// EntityTopic returns the topic the bridge publishes the entity's value to.
func EntityTopic(baseTopic string, e *sensor.Entity) string {
	return strings.Join([]string{baseTopic, e.Device().DeviceID, e.Slug()}, "/")
}

// EntityAttributesTopic returns the topic the bridge publishes the
// entity's extra attributes to.
func EntityAttributesTopic(baseTopic string, e *sensor.Entity) string {
	return EntityTopic(baseTopic, e) + "/attributes"
}

// Topic returns the device discovery topic under prefix.
func (d *Discovery) Topic(prefix string) string {
	return strings.Join([]string{prefix, "device", NodeID, d.ObjectID, "config"}, "/")
}

// SetAvailability sets the availability of every component in the payload.
func (d *Discovery) SetAvailability(avail Component) {
	for cmp := range d.Components {
		d.Components[cmp][Availability] = []Component{avail}
	}
}

// Publish publishes the discovery payload.
func (d *Discovery) Publish(ctx context.Context, c mqtt.Client) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return err
	}
	t := c.Publish(d.Topic(d.cfg.Prefix), d.cfg.QoS, d.cfg.Retained, payload)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.Done():
	}
	return t.Error()
}

// displayName humanizes a translation key, e.g. "oven_setpoint" becomes
// "Oven setpoint".
func displayName(key string) string {
	s := strings.ReplaceAll(key, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
