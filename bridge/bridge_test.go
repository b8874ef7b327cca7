package bridge

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fen-lake/st2mqtt/config"
	"github.com/fen-lake/st2mqtt/mock"
	"github.com/fen-lake/st2mqtt/smartthings"
)

const statusJSON = `{
	"components": {
		"main": {
			"battery": {
				"battery": {"value": 87, "unit": "%"}
			},
			"temperatureMeasurement": {
				"temperature": {"value": 21.5, "unit": "C"}
			}
		}
	}
}`

func testAPI(t *testing.T) *smartthings.Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/devices", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": [{"deviceId": "dev-1", "label": "hall sensor", "name": "multi-sensor"}]}`))
	})
	mux.HandleFunc("/devices/dev-1/status", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(statusJSON))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	st, err := smartthings.NewClient("test-token", smartthings.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatal(err)
	}
	return st
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Interval = time.Hour
	cfg.MQTT.Broker = "tcp://test"
	cfg.MQTT.BirthLWT.Topic = "st2mqtt/bridge/status"
	cfg.SmartThings.Token = "test-token"
	return cfg
}

func startBridge(t *testing.T, cfg *config.Config) (*Bridge, *mock.Client) {
	t.Helper()
	client := mock.NewClient(nil)
	b, err := New(cfg, WithClient(client), WithSmartThings(testAPI(t)))
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	if err := b.Start(ctx); err != nil {
		t.Fatal(err)
	}
	select {
	case <-b.Ready():
	case <-ctx.Done():
		t.Fatal("bridge not ready")
	}
	if err := b.Error(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(b.Stop)
	return b, client
}

func waitPublished(t *testing.T, client *mock.Client, topic string) []byte {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if msgs := client.Published(topic); len(msgs) > 0 {
			return msgs[len(msgs)-1]
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("nothing published to %s, topics: %v", topic, client.Topics())
	return nil
}

func TestBridgePublishesStates(t *testing.T) {
	_, client := startBridge(t, testConfig())

	got := waitPublished(t, client, "st2mqtt/dev-1/battery_battery_battery")
	if string(got) != "87" {
		t.Errorf("battery payload = %q, want 87", got)
	}

	got = waitPublished(t, client, "st2mqtt/dev-1/temperatureMeasurement_temperature_temperature")
	if string(got) != "21.5" {
		t.Errorf("temperature payload = %q, want 21.5", got)
	}
}

func TestBridgePublishesDiscovery(t *testing.T) {
	_, client := startBridge(t, testConfig())

	payload := waitPublished(t, client, "homeassistant/device/st2mqtt/dev-1/config")
	if len(payload) == 0 {
		t.Fatal("empty discovery payload")
	}
}

func TestBridgePublishesBirth(t *testing.T) {
	_, client := startBridge(t, testConfig())

	got := waitPublished(t, client, "st2mqtt/bridge/status")
	if string(got) != "online" {
		t.Errorf("birth payload = %q, want online", got)
	}
}

func TestBridgeEntities(t *testing.T) {
	b, _ := startBridge(t, testConfig())

	if got := len(b.Devices()); got != 1 {
		t.Fatalf("devices = %d, want 1", got)
	}
	entities := b.Entities()
	if len(entities) != 2 {
		t.Fatalf("entities = %d, want 2", len(entities))
	}
}

func TestBridgeStopPublishesLWT(t *testing.T) {
	b, client := startBridge(t, testConfig())
	waitPublished(t, client, "st2mqtt/bridge/status")

	b.Stop()

	msgs := client.Published("st2mqtt/bridge/status")
	if len(msgs) < 2 {
		t.Fatalf("got %d status messages, want birth and lwt", len(msgs))
	}
	if got := string(msgs[len(msgs)-1]); got != "offline" {
		t.Errorf("last status = %q, want offline", got)
	}
}

func TestBridgeRemovesMissingDevice(t *testing.T) {
	var gone atomic.Bool
	mux := http.NewServeMux()
	mux.HandleFunc("/devices", func(w http.ResponseWriter, r *http.Request) {
		if gone.Load() {
			w.Write([]byte(`{"items": []}`))
			return
		}
		w.Write([]byte(`{"items": [{"deviceId": "dev-1", "label": "hall sensor", "name": "multi-sensor"}]}`))
	})
	mux.HandleFunc("/devices/dev-1/status", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(statusJSON))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	st, err := smartthings.NewClient("test-token", smartthings.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatal(err)
	}

	client := mock.NewClient(nil)
	b, err := New(testConfig(), WithClient(client), WithSmartThings(st))
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	if err := b.Start(ctx); err != nil {
		t.Fatal(err)
	}
	select {
	case <-b.Ready():
	case <-ctx.Done():
		t.Fatal("bridge not ready")
	}
	t.Cleanup(b.Stop)

	configTopic := "homeassistant/device/st2mqtt/dev-1/config"
	waitPublished(t, client, configTopic)

	gone.Store(true)
	if !client.Receive("st2mqtt/bridge/update", nil) {
		t.Fatal("no handler for bridge/update")
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		msgs := client.Published(configTopic)
		if len(msgs) >= 2 && len(msgs[len(msgs)-1]) == 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	msgs := client.Published(configTopic)
	if len(msgs) < 2 || len(msgs[len(msgs)-1]) != 0 {
		t.Fatal("retained discovery not removed")
	}

	if got := len(b.Devices()); got != 0 {
		t.Errorf("devices = %d, want 0", got)
	}
	if got := len(b.Entities()); got != 0 {
		t.Errorf("entities = %d, want 0", got)
	}
}

func TestBridgeUpdateOnCommand(t *testing.T) {
	b, client := startBridge(t, testConfig())
	waitPublished(t, client, "st2mqtt/dev-1/battery_battery_battery")

	before := len(client.Published("st2mqtt/dev-1/battery_battery_battery"))
	if !client.Receive("st2mqtt/bridge/update", nil) {
		t.Fatal("no handler for bridge/update")
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(client.Published("st2mqtt/dev-1/battery_battery_battery")) > before {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("no state published after update command")
	_ = b
}
