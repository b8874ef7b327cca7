package discovery

import (
	"context"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Remove publishes an empty retained payload to the device discovery
// topic, removing the device and its entities from Home Assistant.
func (d *Discovery) Remove(ctx context.Context, c mqtt.Client) error {
	t := c.Publish(d.Topic(d.cfg.Prefix), d.cfg.QoS, d.cfg.Retained, []byte{})
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.Done():
	}
	return t.Error()
}
