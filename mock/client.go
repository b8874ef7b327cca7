// Package mock provides an in-memory mqtt client for tests.
package mock

import (
	"strings"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Client implements [mqtt.Client] in memory, recording published
// messages and routing them to matching subscriptions.
type Client struct {
	connected bool
	opts      *mqtt.ClientOptions

	mu        sync.Mutex
	published map[string][][]byte
	handlers  map[string]mqtt.MessageHandler
}

// NewClient returns a new mock client.
func NewClient(o *mqtt.ClientOptions) *Client {
	if o == nil {
		o = mqtt.NewClientOptions()
	}
	return &Client{
		opts:      o,
		published: make(map[string][][]byte),
		handlers:  make(map[string]mqtt.MessageHandler),
	}
}

// Published returns the payloads published to topic, oldest first.
func (c *Client) Published(topic string) [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.published[topic]
}

// Topics returns every topic that has been published to.
func (c *Client) Topics() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	topics := make([]string, 0, len(c.published))
	for t := range c.published {
		topics = append(topics, t)
	}
	return topics
}

// Receive delivers a message to the handler subscribed to topic, as if
// it arrived from the broker.
func (c *Client) Receive(topic string, payload []byte) bool {
	c.mu.Lock()
	h, ok := c.handlers[topic]
	c.mu.Unlock()
	if !ok {
		return false
	}
	h(c, &message{topic: topic, payload: payload})
	return true
}

func (c *Client) IsConnected() bool      { return c.connected }
func (c *Client) IsConnectionOpen() bool { return c.connected }

func (c *Client) Connect() mqtt.Token {
	c.connected = true
	if h := c.opts.OnConnect; h != nil {
		h(c)
	}
	return &mqtt.DummyToken{}
}

func (c *Client) Disconnect(_ uint) {
	c.connected = false
}

func (c *Client) Publish(topic string, _ byte, _ bool, payload interface{}) mqtt.Token {
	var p []byte
	switch v := payload.(type) {
	case []byte:
		p = v
	case string:
		p = []byte(v)
	}
	c.mu.Lock()
	c.published[topic] = append(c.published[topic], p)
	c.mu.Unlock()
	return &mqtt.DummyToken{}
}

func (c *Client) Subscribe(topic string, _ byte, callback mqtt.MessageHandler) mqtt.Token {
	c.mu.Lock()
	c.handlers[topic] = callback
	c.mu.Unlock()
	return &mqtt.DummyToken{}
}

func (c *Client) SubscribeMultiple(filters map[string]byte, callback mqtt.MessageHandler) mqtt.Token {
	c.mu.Lock()
	for topic := range filters {
		c.handlers[topic] = callback
	}
	c.mu.Unlock()
	return &mqtt.DummyToken{}
}

func (c *Client) Unsubscribe(topics ...string) mqtt.Token {
	c.mu.Lock()
	for _, t := range topics {
		delete(c.handlers, t)
	}
	c.mu.Unlock()
	return &mqtt.DummyToken{}
}

func (c *Client) AddRoute(topic string, callback mqtt.MessageHandler) {
	c.mu.Lock()
	c.handlers[topic] = callback
	c.mu.Unlock()
}

func (c *Client) OptionsReader() mqtt.ClientOptionsReader {
	return mqtt.NewOptionsReader(c.opts)
}

// HasPublished reports whether any published topic has the given prefix.
func (c *Client) HasPublished(prefix string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for t := range c.published {
		if strings.HasPrefix(t, prefix) {
			return true
		}
	}
	return false
}

type message struct {
	topic   string
	payload []byte
}

func (m *message) Duplicate() bool   { return false }
func (m *message) Qos() byte         { return 0 }
func (m *message) Retained() bool    { return false }
func (m *message) MessageID() uint16 { return 0 }
func (m *message) Ack()              {}
func (m *message) Topic() string     { return m.topic }
func (m *message) Payload() []byte   { return m.payload }
