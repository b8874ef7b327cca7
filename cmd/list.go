package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fen-lake/st2mqtt/config"
	"github.com/fen-lake/st2mqtt/log"
	"github.com/fen-lake/st2mqtt/sensor"
	"github.com/fen-lake/st2mqtt/smartthings"
)

// Flags for st2mqtt list
var (
	ListSummary bool // Display a summary of devices without entity detail
)

// ListCommand lists the devices visible to the configured token and the
// sensor entities the bridge would create for them.
var ListCommand = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List SmartThings devices and their sensors",
	GroupID: "commands",
	RunE:    listDevices,
}

func init() {
	ListCommand.Flags().SortFlags = false
	ListCommand.Flags().StringSliceVarP(&ConfigPath, "config", "c", nil, "Path(s) to config file")
	ListCommand.Flags().StringVarP(&Token, "token", "t", "", "SmartThings personal access token")
	ListCommand.Flags().BoolVarP(&ListSummary, "summary", "s", false, "Display a summary of available devices")

	ListCommand.MarkFlagFilename("config", "yaml", "yml")

	ListCommand.SetHelpTemplate(ListCommand.HelpTemplate() + "\n" + fullDocsFooter + "\n")

	RootCommand.AddCommand(ListCommand)
}

func listDevices(cmd *cobra.Command, args []string) error {
	log.SetLevel(log.LevelWarn)

	initConfig()
	cfg, err := config.Load(ConfigPath...)
	if err != nil {
		cfg = config.Default()
	}
	if Token != "" {
		cfg.SmartThings.Token = Token
	}

	st, err := smartthings.NewClient(cfg.SmartThings.Token, stClientOptions(cfg)...)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	devices, err := st.Devices(ctx)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, dev := range devices {
		dev := dev
		g.Go(func() error {
			return st.Refresh(gctx, dev)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if ListSummary {
		printSummary(w, devices)
	} else {
		printDevices(w, devices)
	}

	return nil
}

func stClientOptions(cfg *config.Config) []smartthings.ClientOption {
	var opts []smartthings.ClientOption
	if cfg.SmartThings.APIURL != "" {
		opts = append(opts, smartthings.WithBaseURL(cfg.SmartThings.APIURL))
	}
	if cfg.SmartThings.Timeout > 0 {
		opts = append(opts, smartthings.WithTimeout(cfg.SmartThings.Timeout))
	}
	return opts
}

func printDevices(w io.Writer, devices []*smartthings.Device) {
	for _, dev := range devices {
		fmt.Fprintf(w, "[%s] (%s)\n", dev.DisplayName(), dev.DeviceID)

		for _, e := range sensor.Entities(dev) {
			v := e.Value()
			if v == nil {
				fmt.Fprintf(w, "  %s: unknown\n", e.TranslationKey())
				continue
			}
			if unit := e.Unit(); unit != "" {
				fmt.Fprintf(w, "  %s: %v %s\n", e.TranslationKey(), v, unit)
			} else {
				fmt.Fprintf(w, "  %s: %v\n", e.TranslationKey(), v)
			}
		}
	}
}

func printSummary(w io.Writer, devices []*smartthings.Device) {
	names := make([]string, 0, len(devices))
	for _, dev := range devices {
		names = append(names, fmt.Sprintf("%s (%d sensors)", dev.DisplayName(), len(sensor.Entities(dev))))
	}
	fmt.Fprintln(w, strings.Join(names, ", "))
}
