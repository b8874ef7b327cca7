package config

import "time"

// SmartThingsConfig is the configuration for the SmartThings API client.
type SmartThingsConfig struct {
	Token   string        `yaml:"token"`
	APIURL  string        `yaml:"api_url,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// Devices restricts the bridge to the listed device ids. Empty
	// means all devices on the account.
	Devices []string `yaml:"devices,omitempty"`
}

func (c *SmartThingsConfig) expand() {
	expandString(&c.Token)
	expandString(&c.APIURL)
}

// AdvisoryConfig configures deprecation advisories.
type AdvisoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Topic   string `yaml:"topic,omitempty"`
	DBPath  string `yaml:"db_path,omitempty"`
}

func (c *AdvisoryConfig) expand() {
	expandString(&c.DBPath)
}

// HistoryConfig configures the InfluxDB history recorder.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url,omitempty"`
	Token   string `yaml:"token,omitempty"`
	Org     string `yaml:"org,omitempty"`
	Bucket  string `yaml:"bucket,omitempty"`
}

func (c *HistoryConfig) expand() {
	expandString(&c.URL)
	expandString(&c.Token)
	expandString(&c.Org)
	expandString(&c.Bucket)
}

// APIConfig configures the local diagnostics HTTP API.
type APIConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr,omitempty"`
}

func (c *APIConfig) expand() {
	expandString(&c.Addr)
}
