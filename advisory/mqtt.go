package advisory

import (
	"context"
	"encoding/json"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// MQTTSink publishes advisories as retained messages under a base topic,
// one topic per advisory key. Clearing publishes a retained empty payload
// so the broker drops the retained message.
type MQTTSink struct {
	client mqtt.Client
	topic  string
	qos    byte
}

// NewMQTTSink returns a sink publishing under topic.
func NewMQTTSink(client mqtt.Client, topic string, qos byte) *MQTTSink {
	return &MQTTSink{client: client, topic: topic, qos: qos}
}

// Flag publishes the advisory to <topic>/<key>, retained.
func (s *MQTTSink) Flag(ctx context.Context, a *Advisory) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return s.publish(ctx, s.topic+"/"+a.Key, payload)
}

// Clear publishes a retained empty payload to <topic>/<key>.
func (s *MQTTSink) Clear(ctx context.Context, key string) error {
	return s.publish(ctx, s.topic+"/"+key, []byte{})
}

func (s *MQTTSink) publish(ctx context.Context, topic string, payload []byte) error {
	t := s.client.Publish(topic, s.qos, true, payload)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.Done():
	}
	return t.Error()
}
