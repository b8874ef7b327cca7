package config

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

// MQTTConfig is the configuration for the MQTT broker connection.
type MQTTConfig struct {
	Broker    string        `yaml:"broker"`
	Port      int           `yaml:"port,omitempty"`
	ClientID  string        `yaml:"client_id,omitempty"`
	Username  string        `yaml:"username,omitempty"`
	Password  string        `yaml:"password,omitempty"`
	KeepAlive time.Duration `yaml:"keep_alive,omitempty"`

	ReconnectInterval time.Duration `yaml:"reconnect_interval,omitempty"`

	Cert    string `yaml:"cert,omitempty"`
	Key     string `yaml:"key,omitempty"`
	RootCAs string `yaml:"root_cas,omitempty"`

	BirthLWT BirthLWTConfig `yaml:"status,omitempty"`
}

// BirthLWTConfig configures the bridge availability topic. The birth
// payload is published on connect and the LWT payload is registered as
// the connection's will message.
type BirthLWTConfig struct {
	Topic    string `yaml:"topic,omitempty"`
	Birth    string `yaml:"birth,omitempty"`
	LWT      string `yaml:"lwt,omitempty"`
	QoS      byte   `yaml:"qos,omitempty"`
	Retained bool   `yaml:"retained,omitempty"`
}

func (c *MQTTConfig) expand() {
	expandString(&c.Broker)
	expandString(&c.ClientID)
	expandString(&c.Username)
	expandString(&c.Password)
}

// ClientOptions returns paho client options for the config.
func (c *MQTTConfig) ClientOptions() (*mqtt.ClientOptions, error) {
	opts := mqtt.NewClientOptions()
	broker := c.Broker
	if c.Port > 0 {
		broker = fmt.Sprintf("%s:%d", broker, c.Port)
	}
	opts.AddBroker(broker)
	clientID := c.ClientID
	if clientID == "" {
		clientID = "st2mqtt-" + uuid.NewString()[:8]
	}
	opts.SetClientID(clientID)
	if c.Username != "" {
		opts.SetUsername(c.Username)
	}
	if c.Password != "" {
		opts.SetPassword(c.Password)
	}
	if c.KeepAlive > 0 {
		opts.SetKeepAlive(c.KeepAlive)
	}
	if c.ReconnectInterval > 0 {
		opts.SetMaxReconnectInterval(c.ReconnectInterval)
	}
	if c.BirthLWT.Topic != "" && c.BirthLWT.LWT != "" {
		opts.SetWill(c.BirthLWT.Topic, c.BirthLWT.LWT, c.BirthLWT.QoS, c.BirthLWT.Retained)
	}
	tlsCfg, err := c.tlsConfig()
	if err != nil {
		return nil, err
	}
	if tlsCfg != nil {
		opts.SetTLSConfig(tlsCfg)
	}
	return opts, nil
}

func (c *MQTTConfig) tlsConfig() (*tls.Config, error) {
	if c.Cert == "" && c.RootCAs == "" {
		return nil, nil
	}
	cfg := &tls.Config{}
	if c.Cert != "" {
		cert, err := tls.LoadX509KeyPair(c.Cert, c.Key)
		if err != nil {
			return nil, fmt.Errorf("mqtt tls: %w", err)
		}
		cfg.Certificates = []tls.Certificate{cert}
	}
	if c.RootCAs != "" {
		pem, err := os.ReadFile(c.RootCAs)
		if err != nil {
			return nil, fmt.Errorf("mqtt tls: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("mqtt tls: no certificates in %s", c.RootCAs)
		}
		cfg.RootCAs = pool
	}
	return cfg, nil
}

// DiscoveryConfig is the configuration for Home Assistant MQTT discovery.
type DiscoveryConfig struct {
	Enabled      bool   `yaml:"enabled"`
	Prefix       string `yaml:"prefix,omitempty"`
	Availability string `yaml:"availability,omitempty"`
	QoS          byte   `yaml:"qos,omitempty"`
	Retained     bool   `yaml:"retained,omitempty"`
}

func (c *DiscoveryConfig) expand() {
	expandString(&c.Prefix)
}
