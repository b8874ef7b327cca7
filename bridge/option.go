package bridge

import (
	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/fen-lake/st2mqtt/advisory"
	"github.com/fen-lake/st2mqtt/history"
	"github.com/fen-lake/st2mqtt/log"
	"github.com/fen-lake/st2mqtt/smartthings"
)

// Option configures a Bridge beyond what the config provides.
type Option func(*Bridge)

// WithClient sets the mqtt client, overriding the one built from the
// config.
func WithClient(c mqtt.Client) Option {
	return func(b *Bridge) {
		b.client = c
	}
}

// WithSmartThings sets the SmartThings API client.
func WithSmartThings(c *smartthings.Client) Option {
	return func(b *Bridge) {
		b.st = c
	}
}

// WithNotifier sets the advisory notifier applied to entity lifecycle
// changes.
func WithNotifier(n *advisory.Notifier) Option {
	return func(b *Bridge) {
		b.notifier = n
	}
}

// WithRecorder sets the history recorder entity values are written to.
func WithRecorder(r *history.Recorder) Option {
	return func(b *Bridge) {
		b.recorder = r
	}
}

// WithConfigPath enables hot reload of the poll interval and log level
// when the file at path changes.
func WithConfigPath(path string) Option {
	return func(b *Bridge) {
		b.configPath = path
	}
}

// WithLogLevel routes the paho client's internal logging through the
// package logger at the given level.
func WithLogLevel(level log.Level) Option {
	return func(b *Bridge) {
		if level <= log.LevelError {
			mqtt.ERROR = log.ErrorLogger()
			mqtt.CRITICAL = log.ErrorLogger()
		} else {
			mqtt.ERROR = mqtt.NOOPLogger{}
			mqtt.CRITICAL = mqtt.NOOPLogger{}
		}
		if level <= log.LevelWarn {
			mqtt.WARN = log.WarnLogger()
		} else {
			mqtt.WARN = mqtt.NOOPLogger{}
		}
		if level <= log.LevelDebug {
			mqtt.DEBUG = log.DebugLogger()
		} else {
			mqtt.DEBUG = mqtt.NOOPLogger{}
		}
	}
}
