// Package config provides configuration for st2mqtt.
//
// Configuration is read from YAML. String fields support environment
// variable expansion ("$VAR") and secret references ("!secret name"),
// and topic strings may reference the configured base topic with "~".
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fen-lake/st2mqtt/config/secrets"
	"github.com/fen-lake/st2mqtt/log"
)

// BaseTopicRef is replaced with [Config.BaseTopic] in topic strings.
const BaseTopicRef = "~"

// Config is the configuration used by the bridge.
type Config struct {
	Interval  time.Duration `yaml:"interval,omitempty"`
	BaseTopic string        `yaml:"base_topic,omitempty"`

	MQTT        MQTTConfig        `yaml:"mqtt,omitempty"`
	SmartThings SmartThingsConfig `yaml:"smartthings"`
	Discovery   DiscoveryConfig   `yaml:"discovery,omitempty"`
	Advisory    AdvisoryConfig    `yaml:"advisory,omitempty"`
	History     HistoryConfig     `yaml:"history,omitempty"`
	API         APIConfig         `yaml:"api,omitempty"`
	Log         LogConfig         `yaml:"log,omitempty"`
}

// Default returns a new config with default values.
func Default() *Config {
	return &Config{
		Interval:  time.Minute,
		BaseTopic: "st2mqtt",
		MQTT: MQTTConfig{
			Broker:    "$ST2MQTT_BROKER_ADDRESS",
			Username:  "$ST2MQTT_BROKER_USERNAME",
			Password:  "$ST2MQTT_BROKER_PASSWORD",
			KeepAlive: 30 * time.Second,
			BirthLWT: BirthLWTConfig{
				Topic:    "~/bridge/status",
				Birth:    "online",
				LWT:      "offline",
				QoS:      1,
				Retained: true,
			},
		},
		SmartThings: SmartThingsConfig{
			Token: "$ST2MQTT_TOKEN",
		},
		Discovery: DiscoveryConfig{
			Enabled:      true,
			Prefix:       "homeassistant",
			Availability: "~/bridge/status",
			QoS:          1,
		},
		Advisory: AdvisoryConfig{
			Topic: "~/advisory",
		},
		Log: LogConfig{
			Level:  log.LevelInfo,
			Format: "text",
		},
	}
}

// Read reads yaml-encoded bytes from r into a new config. Fields not
// present in the yaml keep their default values.
func Read(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	cfg.expand()
	return cfg, nil
}

// Load reads the config from the first readable path. If no path can be
// read, the default config is returned along with the first error that
// is not [fs.ErrNotExist].
func Load(paths ...string) (*Config, error) {
	var firstErr error
	for _, path := range paths {
		if path == "" {
			continue
		}
		f, err := os.Open(os.ExpandEnv(path))
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) && firstErr == nil {
				firstErr = err
			}
			continue
		}
		defer f.Close()
		log.Debug("Loading config", "path", path)
		cfg, err := Read(f)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		return cfg, nil
	}
	cfg := Default()
	cfg.expand()
	return cfg, firstErr
}

// Write writes the yaml-encoded config to w.
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(c)
}

// WriteFile writes the yaml-encoded config to the file at path.
func (c *Config) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return c.Write(f)
}

// ReplaceBase replaces a leading [BaseTopicRef] in topic with the
// configured base topic.
func (c *Config) ReplaceBase(topic string) string {
	if rest, ok := strings.CutPrefix(topic, BaseTopicRef); ok {
		return c.BaseTopic + rest
	}
	return topic
}

func (c *Config) expand() {
	expandString(&c.BaseTopic)
	c.MQTT.expand()
	c.SmartThings.expand()
	c.Discovery.expand()
	c.Advisory.expand()
	c.History.expand()
	c.API.expand()

	c.MQTT.BirthLWT.Topic = c.ReplaceBase(c.MQTT.BirthLWT.Topic)
	c.Discovery.Availability = c.ReplaceBase(c.Discovery.Availability)
	c.Advisory.Topic = c.ReplaceBase(c.Advisory.Topic)
}

// expandString expands environment variables and secret references
// in-place. A "$VAR" with no value in the environment becomes "".
func expandString(s *string) {
	if secret, ok := secrets.CutPrefix(*s); ok {
		*s = secrets.MustRead(os.ExpandEnv(secret), "")
		return
	}
	*s = os.ExpandEnv(*s)
}
