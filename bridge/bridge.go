// Package bridge connects the SmartThings cloud to an MQTT broker,
// publishing device sensor values and Home Assistant discovery.
package bridge

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/fen-lake/st2mqtt/advisory"
	"github.com/fen-lake/st2mqtt/config"
	"github.com/fen-lake/st2mqtt/discovery"
	"github.com/fen-lake/st2mqtt/history"
	"github.com/fen-lake/st2mqtt/log"
	"github.com/fen-lake/st2mqtt/sensor"
	"github.com/fen-lake/st2mqtt/smartthings"
)

// Bridge is the mqtt client that bridges SmartThings devices to the mqtt
// broker.
type Bridge struct {
	client mqtt.Client
	st     *smartthings.Client
	cfg    *config.Config

	baseTopic  string
	interval   time.Duration
	configPath string

	notifier *advisory.Notifier
	recorder *history.Recorder

	mu           sync.Mutex
	devices      []*smartthings.Device
	entities     map[string][]*sensor.Entity
	deprecations map[string]string
	discoveries  map[string]*discovery.Discovery

	updates chan *smartthings.Device
	reload  chan time.Duration

	ready chan struct{}
	done  chan struct{}
	err   error

	once   sync.Once
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New returns a new Bridge with the given config and options. The config
// fills in any values not provided by the options. The bridge must have
// [Bridge.Start] called on it before it may be used.
func New(cfg *config.Config, opts ...Option) (*Bridge, error) {
	b := &Bridge{
		cfg:          cfg,
		baseTopic:    cfg.BaseTopic,
		interval:     cfg.Interval,
		entities:     make(map[string][]*sensor.Entity),
		deprecations: make(map[string]string),
		discoveries:  make(map[string]*discovery.Discovery),
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.client == nil {
		mqttOpts, err := cfg.MQTT.ClientOptions()
		if err != nil {
			return nil, err
		}
		b.client = mqtt.NewClient(mqttOpts)
	}

	if b.st == nil {
		st, err := smartthings.NewClient(cfg.SmartThings.Token, stOptions(&cfg.SmartThings)...)
		if err != nil {
			return nil, err
		}
		b.st = st
	}

	if b.baseTopic == "" {
		b.baseTopic = "st2mqtt"
	}
	if b.interval <= 0 {
		b.interval = time.Minute
	}

	return b, nil
}

func stOptions(cfg *config.SmartThingsConfig) []smartthings.ClientOption {
	var opts []smartthings.ClientOption
	if cfg.APIURL != "" {
		opts = append(opts, smartthings.WithBaseURL(cfg.APIURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, smartthings.WithTimeout(cfg.Timeout))
	}
	return opts
}

// waitToken waits for the first of ctx.Done() or t.Done() and returns
// t.Error(), or nil if ctx.Done() finished first.
func waitToken(ctx context.Context, t mqtt.Token) error {
	select {
	case <-ctx.Done():
		return nil
	case <-t.Done():
	}

	return t.Error()
}

// ctxDone indicates whether the given context has been canceled.
func ctxDone(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// maybeSend sends t on ch, unless the given context is cancelled before
// it can send. maybeSend returns true if t was sent.
func maybeSend[T any](ctx context.Context, ch chan<- T, t T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- t:
		return true
	}
}

// nilToken implements [mqtt.Token] with a nil channel.
type nilToken struct{}

func (nilToken) Wait() bool                       { return true }
func (nilToken) WaitTimeout(_ time.Duration) bool { return true }
func (nilToken) Done() <-chan struct{}            { return nil }
func (nilToken) Error() error                     { return nil }

// Start connects to the broker and starts the bridge. Start only returns
// an error if the initial connection fails; use [Bridge.Ready] and
// [Bridge.Error] to observe startup.
func (b *Bridge) Start(ctx context.Context) error {
	t := b.client.Connect()
	if err := waitToken(ctx, t); err != nil {
		return err
	}

	b.once.Do(func() {
		b.ready = make(chan struct{})
		b.updates = make(chan *smartthings.Device)
		b.reload = make(chan time.Duration, 1)

		ctx, b.cancel = context.WithCancel(ctx)

		go b.start(ctx)
	})

	return nil
}

// start fetches the device inventory, publishes discovery, subscribes to
// the bridge control topics, and starts the event loops.
func (b *Bridge) start(ctx context.Context) {
	defer func() {
		select {
		case <-ctx.Done():
		default:
			close(b.ready)
		}
	}()

	if err := b.loadDevices(ctx); err != nil {
		b.err = err
		log.Error("Could not load devices", err)
		return
	}

	if ctxDone(ctx) {
		return
	}

	b.mu.Lock()
	devices := slices.Clone(b.devices)
	b.mu.Unlock()

	for _, dev := range devices {
		if err := b.syncDevice(ctx, dev); err != nil {
			log.WarnError("Could not sync "+dev.DisplayName(), err)
		}
	}

	t := b.publishBirth()
	if err := waitToken(ctx, t); err != nil {
		b.err = err
	}

	t = b.client.Subscribe(b.baseTopic+"/bridge/stop", 0, func(_ mqtt.Client, _ mqtt.Message) {
		go b.Stop()
	})
	if err := waitToken(ctx, t); err != nil && b.err == nil {
		b.err = err
	}

	t = b.client.Subscribe(b.baseTopic+"/bridge/update", 0, func(_ mqtt.Client, _ mqtt.Message) {
		go b.update(ctx)
	})
	if err := waitToken(ctx, t); err != nil && b.err == nil {
		b.err = err
	}

	if b.cfg.Discovery.Enabled {
		// Home Assistant republishes its birth payload on restart,
		// which is our cue to resend discovery.
		t = b.client.Subscribe("homeassistant/status", 0, func(_ mqtt.Client, msg mqtt.Message) {
			if string(msg.Payload()) == "online" {
				go b.rediscover(ctx)
			}
		})
		if err := waitToken(ctx, t); err != nil && b.err == nil {
			b.err = err
		}
	}

	b.done = make(chan struct{})

	b.wg.Add(2)
	go b.poll(ctx)
	go func() {
		defer b.wg.Done()
		for _, dev := range devices {
			maybeSend(ctx, b.updates, dev)
		}
	}()

	go b.watchConfig(ctx)

	go b.loop(ctx)
}

// loop is the event loop for the bridge and publishes any devices
// received on the updates channel.
func (b *Bridge) loop(ctx context.Context) {
	defer func() {
		if b.client.IsConnected() || b.client.IsConnectionOpen() {
			t := b.publishLWT()
			t.Wait()

			b.client.Disconnect(500)
		}

		b.wg.Wait()
		close(b.updates)
		close(b.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case dev, ok := <-b.updates:
			if !ok {
				return
			}
			b.publishDevice(ctx, dev)
		}
	}
}

// Stop stops the bridge and blocks until shutdown completes.
func (b *Bridge) Stop() {
	log.Debug("Stopping bridge")

	if b.ready == nil {
		return
	}

	<-b.ready
	b.cancel()

	if b.done != nil {
		<-b.done
	}
}

// Ready returns a channel that is closed once the bridge has completed
// startup.
func (b *Bridge) Ready() <-chan struct{} {
	return b.ready
}

// Done returns a channel that is closed once the bridge has shut down.
func (b *Bridge) Done() <-chan struct{} {
	return b.done
}

// Error returns the first error encountered during startup, if any.
func (b *Bridge) Error() error {
	return b.err
}

// Devices returns a snapshot of the bridged devices.
func (b *Bridge) Devices() []*smartthings.Device {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.devices)
}

// Entities returns a snapshot of all sensor entities across devices.
func (b *Bridge) Entities() []*sensor.Entity {
	b.mu.Lock()
	defer b.mu.Unlock()

	var entities []*sensor.Entity
	for _, dev := range b.devices {
		entities = append(entities, b.entities[dev.DeviceID]...)
	}
	return entities
}

// fetchDevices fetches the device inventory, applying the configured
// device filter.
func (b *Bridge) fetchDevices(ctx context.Context) ([]*smartthings.Device, error) {
	devices, err := b.st.Devices(ctx)
	if err != nil {
		return nil, err
	}

	if allow := b.cfg.SmartThings.Devices; len(allow) > 0 {
		devices = slices.DeleteFunc(devices, func(d *smartthings.Device) bool {
			return !slices.Contains(allow, d.DeviceID)
		})
	}

	return devices, nil
}

// loadDevices fetches the initial device inventory.
func (b *Bridge) loadDevices(ctx context.Context) error {
	devices, err := b.fetchDevices(ctx)
	if err != nil {
		return err
	}

	if len(devices) == 0 {
		return errors.New("no devices")
	}

	log.Info("Loaded devices", "count", len(devices))

	b.mu.Lock()
	b.devices = devices
	b.mu.Unlock()

	return nil
}
