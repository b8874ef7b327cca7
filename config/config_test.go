package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fen-lake/st2mqtt/log"
)

func TestReplaceBase(t *testing.T) {
	cfg := Default()
	cfg.BaseTopic = "home/st2mqtt"
	for topic, want := range map[string]string{
		"~/bridge/status":  "home/st2mqtt/bridge/status",
		"~/advisory":       "home/st2mqtt/advisory",
		"fixed/topic":      "fixed/topic",
		"not/~/a/base-ref": "not/~/a/base-ref",
	} {
		if got := cfg.ReplaceBase(topic); got != want {
			t.Errorf("ReplaceBase(%q) = %q, want %q", topic, got, want)
		}
	}
}

func TestExpandString(t *testing.T) {
	t.Setenv("ST2MQTT_TEST_TOKEN", "tok-123")
	for s, want := range map[string]string{
		"$ST2MQTT_TEST_TOKEN":       "tok-123",
		"plain":                     "plain",
		"$ST2MQTT_TEST_UNSET_VALUE": "",
	} {
		got := s
		expandString(&got)
		if got != want {
			t.Errorf("expandString(%q) = %q, want %q", s, got, want)
		}
	}
}

func TestRead(t *testing.T) {
	const yml = `
interval: 30s
base_topic: home/st
mqtt:
  broker: tcp://broker.local
  port: 1883
  username: user
smartthings:
  token: $ST2MQTT_TEST_TOKEN
discovery:
  enabled: true
  prefix: ha
advisory:
  enabled: true
  topic: ~/deprecations
`
	t.Setenv("ST2MQTT_TEST_TOKEN", "tok-456")
	cfg, err := Read(strings.NewReader(yml))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.Interval, 30*time.Second; got != want {
		t.Errorf("Interval = %v, want %v", got, want)
	}
	if got, want := cfg.MQTT.Broker, "tcp://broker.local"; got != want {
		t.Errorf("MQTT.Broker = %q, want %q", got, want)
	}
	if got, want := cfg.SmartThings.Token, "tok-456"; got != want {
		t.Errorf("SmartThings.Token = %q, want %q", got, want)
	}
	if got, want := cfg.Discovery.Prefix, "ha"; got != want {
		t.Errorf("Discovery.Prefix = %q, want %q", got, want)
	}
	if got, want := cfg.Advisory.Topic, "home/st/deprecations"; got != want {
		t.Errorf("Advisory.Topic = %q, want %q", got, want)
	}
	if got, want := cfg.MQTT.BirthLWT.Topic, "home/st/bridge/status"; got != want {
		t.Errorf("MQTT.BirthLWT.Topic = %q, want %q", got, want)
	}
}

func TestReadEmpty(t *testing.T) {
	cfg, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	def := Default()
	def.expand()
	if got, want := cfg.Interval, def.Interval; got != want {
		t.Errorf("Interval = %v, want %v", got, want)
	}
	if got, want := cfg.BaseTopic, def.BaseTopic; got != want {
		t.Errorf("BaseTopic = %q, want %q", got, want)
	}
	if got, want := cfg.Discovery.Prefix, "homeassistant"; got != want {
		t.Errorf("Discovery.Prefix = %q, want %q", got, want)
	}
}

func TestWriteFileLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "st2mqtt.yaml")

	cfg := Default()
	cfg.BaseTopic = "home/st"
	cfg.Interval = 5 * time.Minute
	cfg.Log.Level = log.LevelDebug
	if err := cfg.WriteFile(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := loaded.BaseTopic, "home/st"; got != want {
		t.Errorf("BaseTopic = %q, want %q", got, want)
	}
	if got, want := loaded.Interval, 5*time.Minute; got != want {
		t.Errorf("Interval = %v, want %v", got, want)
	}
	if got, want := loaded.Log.Level, log.LevelDebug; got != want {
		t.Errorf("Log.Level = %v, want %v", got, want)
	}
}
