package bridge

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/fen-lake/st2mqtt/discovery"
	"github.com/fen-lake/st2mqtt/log"
	"github.com/fen-lake/st2mqtt/smartthings"
)

// publishDevice publishes the current value of each of the device's
// entities, along with extra attributes and history where configured.
func (b *Bridge) publishDevice(ctx context.Context, dev *smartthings.Device) {
	b.mu.Lock()
	entities := b.entities[dev.DeviceID]
	b.mu.Unlock()

	for _, e := range entities {
		if ctxDone(ctx) {
			return
		}

		topic := discovery.EntityTopic(b.baseTopic, e)
		t := b.client.Publish(topic, 0, false, formatValue(e.Value()))
		if err := waitToken(ctx, t); err != nil {
			log.WarnError("Could not publish "+topic, err)
			continue
		}

		if attrs := e.ExtraStateAttributes(); attrs != nil {
			payload, err := json.Marshal(attrs)
			if err != nil {
				log.WarnError("Could not marshal attributes for "+topic, err)
			} else {
				t = b.client.Publish(discovery.EntityAttributesTopic(b.baseTopic, e), 0, false, payload)
				if err := waitToken(ctx, t); err != nil {
					log.WarnError("Could not publish attributes for "+topic, err)
				}
			}
		}

		if b.recorder != nil {
			b.recorder.Record(e)
		}
	}
}

// formatValue renders an entity value as an MQTT payload. A nil value
// becomes an empty payload, which Home Assistant shows as unknown.
func formatValue(v any) []byte {
	switch v := v.(type) {
	case nil:
		return []byte{}
	case string:
		return []byte(v)
	case float64:
		return strconv.AppendFloat(nil, v, 'f', -1, 64)
	case int:
		return strconv.AppendInt(nil, int64(v), 10)
	case bool:
		return strconv.AppendBool(nil, v)
	case time.Time:
		return v.AppendFormat(nil, time.RFC3339)
	default:
		payload, err := json.Marshal(v)
		if err != nil {
			return []byte{}
		}
		return payload
	}
}

// publishBirth publishes the birth payload to the availability topic.
func (b *Bridge) publishBirth() mqtt.Token {
	s := &b.cfg.MQTT.BirthLWT
	if s.Topic == "" {
		return nilToken{}
	}
	return b.client.Publish(s.Topic, s.QoS, s.Retained, []byte(s.Birth))
}

// publishLWT publishes the will payload to the availability topic, used
// on orderly shutdown where the broker won't fire the will for us.
func (b *Bridge) publishLWT() mqtt.Token {
	s := &b.cfg.MQTT.BirthLWT
	if s.Topic == "" {
		return nilToken{}
	}
	return b.client.Publish(s.Topic, s.QoS, s.Retained, []byte(s.LWT))
}
