// Package history records entity values to InfluxDB so sensor readings
// survive beyond the broker's retained state.
package history

import (
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/fen-lake/st2mqtt/config"
	"github.com/fen-lake/st2mqtt/log"
	"github.com/fen-lake/st2mqtt/sensor"
)

// Recorder writes entity readings to an InfluxDB bucket. Writes are
// batched and asynchronous; Close flushes whatever is pending.
type Recorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPI
}

// NewRecorder connects a recorder to the configured InfluxDB instance.
func NewRecorder(cfg *config.HistoryConfig) *Recorder {
	client := influxdb2.NewClient(cfg.URL, cfg.Token)
	writeAPI := client.WriteAPI(cfg.Org, cfg.Bucket)

	r := &Recorder{client: client, writeAPI: writeAPI}
	go func() {
		for err := range writeAPI.Errors() {
			log.WarnError("History write failed", err)
		}
	}()
	return r
}

// Record writes the entity's current value, if it has one. Numeric values
// are written to the "value" field; everything else goes to "state".
func (r *Recorder) Record(e *sensor.Entity) {
	v := e.Value()
	if v == nil {
		return
	}

	fields := map[string]any{}
	switch v := v.(type) {
	case float64:
		fields["value"] = v
	case int:
		fields["value"] = float64(v)
	case time.Time:
		fields["state"] = v.Format(time.RFC3339)
	default:
		fields["state"] = v
	}

	tags := map[string]string{
		"device_id": e.Device().DeviceID,
		"entity":    e.Slug(),
	}
	if unit := e.Unit(); unit != "" {
		tags["unit"] = unit
	}

	r.writeAPI.WritePoint(write.NewPoint("sensor", tags, fields, time.Now()))
}

// Flush forces pending points to be written.
func (r *Recorder) Flush() { r.writeAPI.Flush() }

// Close flushes pending points and releases the client.
func (r *Recorder) Close() {
	r.writeAPI.Flush()
	r.client.Close()
}
