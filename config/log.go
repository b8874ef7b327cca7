package config

import (
	"fmt"
	"os"

	"github.com/fen-lake/st2mqtt/log"
)

// LogConfig is the configuration for logging.
type LogConfig struct {
	Level  log.Level `yaml:"level,omitempty"`
	Format string    `yaml:"format,omitempty"`
	Output string    `yaml:"output,omitempty"`
}

// Apply applies the config to the package-level logger.
func (c *LogConfig) Apply() error {
	w := os.Stderr
	switch c.Output {
	case "", "stderr":
	case "stdout":
		w = os.Stdout
	default:
		f, err := os.OpenFile(os.ExpandEnv(c.Output), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("log output: %w", err)
		}
		w = f
	}
	switch c.Format {
	case "", "text":
		log.SetTextHandler(w)
	case "json":
		log.SetJSONHandler(w)
	default:
		return fmt.Errorf("log format: unknown format %q", c.Format)
	}
	log.SetLevel(c.Level)
	return nil
}
