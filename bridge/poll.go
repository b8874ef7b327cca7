package bridge

import (
	"context"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fen-lake/st2mqtt/discovery"
	"github.com/fen-lake/st2mqtt/log"
	"github.com/fen-lake/st2mqtt/sensor"
	"github.com/fen-lake/st2mqtt/smartthings"
)

// refreshConcurrency bounds the number of in-flight SmartThings status
// requests per poll.
const refreshConcurrency = 4

// poll refreshes every device on the configured interval and sends the
// refreshed devices to the update loop. Interval changes arrive on the
// reload channel.
func (b *Bridge) poll(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case d := <-b.reload:
			if d == b.interval {
				break
			}
			log.Info("Poll interval changed", "from", b.interval, "to", d)
			b.interval = d
			ticker.Reset(d)
		case <-ticker.C:
			b.update(ctx)
		}
	}
}

// update reconciles the device inventory, then refreshes all devices
// concurrently and queues each successfully refreshed device for
// publishing.
func (b *Bridge) update(ctx context.Context) {
	b.reconcileInventory(ctx)

	b.mu.Lock()
	devices := make([]*smartthings.Device, len(b.devices))
	copy(devices, b.devices)
	b.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(refreshConcurrency)

	for _, dev := range devices {
		dev := dev
		g.Go(func() error {
			if err := b.syncDevice(gctx, dev); err != nil {
				switch {
				case smartthings.IsNotFound(err):
					b.removeDevice(gctx, dev)
				case smartthings.IsRateLimited(err):
					log.Warn("Rate limited, deferring to the next poll")
					return err
				default:
					if gctx.Err() == nil {
						log.WarnError("Could not sync "+dev.DisplayName(), err)
					}
				}
				return nil
			}
			maybeSend(gctx, b.updates, dev)
			return nil
		})
	}
	g.Wait()
}

// reconcileInventory re-fetches the device inventory and diffs it against
// the bridged set, dropping devices that disappeared and adopting ones
// that appeared since the last poll.
func (b *Bridge) reconcileInventory(ctx context.Context) {
	devices, err := b.fetchDevices(ctx)
	if err != nil {
		if smartthings.IsRateLimited(err) {
			log.Warn("Rate limited listing devices")
		} else {
			log.WarnError("Could not list devices", err)
		}
		return
	}

	current := make(map[string]bool, len(devices))
	for _, d := range devices {
		current[d.DeviceID] = true
	}

	var removed, added []*smartthings.Device

	b.mu.Lock()
	known := make(map[string]bool, len(b.devices))
	for _, d := range b.devices {
		known[d.DeviceID] = true
		if !current[d.DeviceID] {
			removed = append(removed, d)
		}
	}
	b.devices = slices.DeleteFunc(b.devices, func(d *smartthings.Device) bool {
		return !current[d.DeviceID]
	})
	for _, d := range devices {
		if !known[d.DeviceID] {
			b.devices = append(b.devices, d)
			added = append(added, d)
		}
	}
	b.mu.Unlock()

	for _, dev := range removed {
		b.removeDevice(ctx, dev)
	}
	for _, dev := range added {
		log.Info("Device added", "device", dev.DisplayName())
	}
}

// removeDevice drops the device's entities, clears its advisories, and
// removes its retained discovery after it disappears from the inventory.
func (b *Bridge) removeDevice(ctx context.Context, dev *smartthings.Device) {
	log.Info("Device removed", "device", dev.DisplayName())

	b.mu.Lock()
	b.devices = slices.DeleteFunc(b.devices, func(d *smartthings.Device) bool {
		return d.DeviceID == dev.DeviceID
	})
	prev := b.entities[dev.DeviceID]
	delete(b.entities, dev.DeviceID)
	d := b.discoveries[dev.DeviceID]
	delete(b.discoveries, dev.DeviceID)
	b.mu.Unlock()

	b.reconcileAdvisories(ctx, prev, nil)

	if d != nil {
		if err := d.Remove(ctx, b.client); err != nil {
			log.WarnError("Could not remove discovery for "+dev.DisplayName(), err)
		}
	}
}

// syncDevice refreshes the device's status, rebuilds its entity set, and
// reconciles discovery and advisories with the result.
func (b *Bridge) syncDevice(ctx context.Context, dev *smartthings.Device) error {
	if err := b.st.Refresh(ctx, dev); err != nil {
		return err
	}

	entities := sensor.Entities(dev)

	b.mu.Lock()
	prev := b.entities[dev.DeviceID]
	b.entities[dev.DeviceID] = entities
	_, discovered := b.discoveries[dev.DeviceID]
	b.mu.Unlock()

	changed := b.reconcileAdvisories(ctx, prev, entities)

	if b.cfg.Discovery.Enabled && (changed || !discovered) {
		if err := b.publishDiscovery(ctx, dev, entities); err != nil {
			log.WarnError("Could not publish discovery for "+dev.DisplayName(), err)
		}
	}

	return nil
}

// reconcileAdvisories diffs the previous and current entity sets,
// clearing advisories for removed entities and re-evaluating deprecation
// for entities that appeared or whose deprecation state changed. It
// reports whether the entity set itself changed.
func (b *Bridge) reconcileAdvisories(ctx context.Context, prev, cur []*sensor.Entity) (changed bool) {
	curIDs := make(map[string]bool, len(cur))
	for _, e := range cur {
		curIDs[e.UniqueID()] = true
	}
	prevIDs := make(map[string]bool, len(prev))
	for _, e := range prev {
		prevIDs[e.UniqueID()] = true
	}

	var removed, added []*sensor.Entity

	b.mu.Lock()
	for _, e := range prev {
		if curIDs[e.UniqueID()] {
			continue
		}
		changed = true
		delete(b.deprecations, e.UniqueID())
		removed = append(removed, e)
	}
	for _, e := range cur {
		id := e.UniqueID()
		reason := e.Deprecation()

		if !prevIDs[id] {
			changed = true
		} else if b.deprecations[id] == reason {
			continue
		}

		b.deprecations[id] = reason
		added = append(added, e)
	}
	b.mu.Unlock()

	if b.notifier == nil {
		return changed
	}

	for _, e := range removed {
		if err := b.notifier.EntityRemoved(ctx, e); err != nil {
			log.WarnError("Could not clear advisories", err, "entity", e.UniqueID())
		}
	}
	for _, e := range added {
		if err := b.notifier.EntityAdded(ctx, e); err != nil {
			log.WarnError("Could not update advisories", err, "entity", e.UniqueID())
		}
	}

	return changed
}

// publishDiscovery rebuilds and publishes the device's discovery payload.
func (b *Bridge) publishDiscovery(ctx context.Context, dev *smartthings.Device, entities []*sensor.Entity) error {
	d, err := discovery.New(&b.cfg.Discovery, b.baseTopic, entities)
	if err != nil {
		return err
	}

	b.mu.Lock()
	b.discoveries[dev.DeviceID] = d
	b.mu.Unlock()

	return d.Publish(ctx, b.client)
}

// rediscover republishes discovery for every device.
func (b *Bridge) rediscover(ctx context.Context) {
	b.mu.Lock()
	discoveries := make([]*discovery.Discovery, 0, len(b.discoveries))
	for _, d := range b.discoveries {
		discoveries = append(discoveries, d)
	}
	b.mu.Unlock()

	for _, d := range discoveries {
		if err := d.Publish(ctx, b.client); err != nil {
			log.WarnError("Could not republish discovery", err)
		}
	}
}
