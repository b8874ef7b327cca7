package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/spf13/cobra"

	"github.com/fen-lake/st2mqtt/advisory"
	"github.com/fen-lake/st2mqtt/api"
	"github.com/fen-lake/st2mqtt/bridge"
	"github.com/fen-lake/st2mqtt/config"
	"github.com/fen-lake/st2mqtt/history"
	"github.com/fen-lake/st2mqtt/log"
)

// Flags for [RunCommand]
var (
	ConfigPath []string      // Path(s) to config file (default is first of $ST2MQTT_CONFIG_PATH, $XDG_CONFIG_HOME/st2mqtt.yaml, $HOME/.config/st2mqtt.yaml)
	Broker     string        // MQTT broker address
	Port       int           // MQTT broker port
	Username   string        // MQTT broker username
	Password   string        // MQTT broker password
	Token      string        // SmartThings personal access token
	Interval   time.Duration // Poll interval
	Discovery  string        // Discovery prefix, or 'disabled' to disable
	LogLevel   string        // Log level
)

var cfg *config.Config

// RunCommand is the main [cobra.Command] used for running the bridge.
var RunCommand = &cobra.Command{
	Use:     "run [--config <path>]... [flags]",
	Aliases: []string{"start"},
	Short:   "Run the SmartThings bridge",
	Long: `Run a bridge to provide SmartThings device sensors to the MQTT broker.

A connection to the MQTT broker will be established and the bridge will run in the foreground until a signal is received.

	- SIGINT or SIGTERM will gracefully shutdown the bridge.

If no config file is specified, the default path will be determined by the first defined value of $ST2MQTT_CONFIG_PATH, $XDG_CONFIG_HOME/st2mqtt.yaml, or $HOME/.config/st2mqtt.yaml. In the case of $ST2MQTT_CONFIG_PATH, the value may be a comma-separated list of paths. If none of these files exist, the default configuration will be used, which looks for the following environment variables:

	- broker:   $ST2MQTT_BROKER_ADDRESS
	- username: $ST2MQTT_BROKER_USERNAME
	- password: $ST2MQTT_BROKER_PASSWORD
	- token:    $ST2MQTT_TOKEN

All of the flags, if specified, will override the equivalent values in the config. The format of --broker should be scheme://host:port where "scheme" is one of "tcp", "ssl", or "ws". If "port" is not defined, it will use the value of --port (default 1883).`,
	Example: `  st2mqtt run --config config.yaml
  st2mqtt run --broker 127.0.0.1:1883 --token $ST2MQTT_TOKEN`,
	GroupID: "commands",
	PreRunE: func(cmd *cobra.Command, args []string) (err error) {
		if err = PrintBanner(cmd); err != nil {
			return
		}

		initConfig()
		cfg, err = config.Load(ConfigPath...)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return
		}
		if err = flagsToConfig(cfg); err != nil {
			return
		}
		if err = cfg.Log.Apply(); err != nil {
			return
		}
		log.Debug("MQTT broker", "addr", cfg.MQTT.Broker)
		return nil
	},
	RunE: runBridge,

	DisableFlagsInUseLine: true,
}

func init() {
	RunCommand.Flags().SortFlags = false
	RunCommand.Flags().StringSliceVarP(&ConfigPath, "config", "c", nil, "Path(s) to config file")
	RunCommand.Flags().StringVarP(&Broker, "broker", "b", "", "MQTT broker address")
	RunCommand.Flags().IntVarP(&Port, "port", "p", 1883, "MQTT broker port")
	RunCommand.Flags().StringVar(&Username, "username", "", "MQTT client username")
	RunCommand.Flags().StringVar(&Password, "password", "", "MQTT client password")
	RunCommand.Flags().StringVarP(&Token, "token", "t", "", "SmartThings personal access token")
	RunCommand.Flags().DurationVarP(&Interval, "interval", "i", 0, "Poll interval")
	RunCommand.Flags().StringVarP(&Discovery, "discovery", "D", "", "Discovery prefix, or 'disabled' to disable")
	RunCommand.Flags().StringVarP(&LogLevel, "log", "l", "", "Log level")

	RunCommand.MarkFlagFilename("config", "yaml", "yml")

	RunCommand.SetHelpTemplate(RunCommand.HelpTemplate() + "\n" + fullDocsFooter + "\n")

	RootCommand.AddCommand(RunCommand)
}

func initConfig() {
	const defaultConfigFile = "st2mqtt.yaml"

	if len(ConfigPath) > 0 {
		return
	}
	if env, ok := os.LookupEnv("ST2MQTT_CONFIG_PATH"); ok {
		ConfigPath = strings.Split(env, ",")
		return
	}
	if xdg, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok {
		ConfigPath = []string{filepath.Join(xdg, defaultConfigFile)}
		return
	}
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)
	ConfigPath = []string{filepath.Join(home, ".config", defaultConfigFile)}
}

func dataDir() (string, error) {
	const defaultDataDir = "st2mqtt"

	if env, ok := os.LookupEnv("ST2MQTT_DATA_PATH"); ok {
		return env, nil
	}
	if xdg, ok := os.LookupEnv("XDG_DATA_HOME"); ok {
		return filepath.Join(xdg, defaultDataDir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", defaultDataDir), nil
}

func maybeWithPort(addr string, port int) string {
	var hasPort bool

	if last := addr[len(addr)-1]; '0' <= last && last <= '9' {
		for _, c := range addr {
			switch {
			case c == ':':
				hasPort = true
			case '0' <= c && c <= '9':
			default:
				hasPort = false
			}
		}
	}

	if hasPort || port < 0 {
		return addr
	}

	return addr + ":" + strconv.Itoa(port)
}

func flagsToConfig(cfg *config.Config) error {
	if LogLevel != "" {
		var level log.Level
		if err := level.UnmarshalText([]byte(LogLevel)); err != nil {
			return err
		}
		cfg.Log.Level = level
	}
	if Broker != "" {
		cfg.MQTT.Broker = maybeWithPort(Broker, Port)
	}
	if Username != "" {
		cfg.MQTT.Username = Username
	}
	if Password != "" {
		cfg.MQTT.Password = Password
	}
	if Token != "" {
		cfg.SmartThings.Token = Token
	}
	if Interval > 0 {
		cfg.Interval = Interval
	}
	if Discovery == "disabled" {
		cfg.Discovery.Enabled = false
	} else if Discovery != "" {
		cfg.Discovery.Prefix = Discovery
	}
	return nil
}

func runBridge(cmd *cobra.Command, args []string) error {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	mqttOpts, err := cfg.MQTT.ClientOptions()
	if err != nil {
		return &ExitError{err, 1}
	}
	client := mqtt.NewClient(mqttOpts)

	opts := []bridge.Option{
		bridge.WithClient(client),
		bridge.WithLogLevel(cfg.Log.Level),
	}
	if len(ConfigPath) > 0 {
		opts = append(opts, bridge.WithConfigPath(ConfigPath[0]))
	}

	var store *advisory.SQLiteStore
	if cfg.Advisory.Enabled {
		path := cfg.Advisory.DBPath
		if path == "" {
			dir, err := dataDir()
			if err != nil {
				return &ExitError{err, 1}
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return &ExitError{err, 1}
			}
			path = filepath.Join(dir, "advisory.db")
		}
		store, err = advisory.OpenSQLite(path)
		if err != nil {
			return &ExitError{err, 1}
		}
		AddCleanup(func() { store.Close() })

		sink := advisory.NewMQTTSink(client, cfg.Advisory.Topic, 1)
		opts = append(opts, bridge.WithNotifier(advisory.NewNotifier(store, store, sink)))
	}

	if cfg.History.Enabled {
		recorder := history.NewRecorder(&cfg.History)
		AddCleanup(recorder.Close)
		opts = append(opts, bridge.WithRecorder(recorder))
	}

	b, err := bridge.New(cfg, opts...)
	if err != nil {
		return &ExitError{err, 1}
	}

	if err := b.Start(ctx); err != nil {
		log.Error("Not connected.", err)
		return &ExitError{err, 1}
	}
	defer func() {
		b.Stop()
		log.Info("Done")
	}()

	select {
	case <-b.Ready():
		if err := b.Error(); err != nil {
			return &ExitError{err, 1}
		}
	case <-c:
		return nil
	}

	if cfg.API.Enabled {
		addr := cfg.API.Addr
		if addr == "" {
			addr = "127.0.0.1:8099"
		}
		srv := api.NewServer(addr, b, apiStore(store), apiRefs(store))
		if err := srv.Start(); err != nil {
			log.Error("Could not start API", err)
			return &ExitError{err, 1}
		}
		AddCleanup(func() {
			sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer scancel()
			srv.Shutdown(sctx)
		})
	}

	select {
	case <-b.Done():
	case <-c:
		log.Debug("Received signal")
	}
	return nil
}

// apiStore avoids handing the API a typed nil when advisories are
// disabled.
func apiStore(store *advisory.SQLiteStore) advisory.Store {
	if store == nil {
		return nil
	}
	return store
}

func apiRefs(store *advisory.SQLiteStore) api.ReferenceStore {
	if store == nil {
		return nil
	}
	return store
}
