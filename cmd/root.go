package main

import (
	"fmt"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/fen-lake/st2mqtt/internal/build"
)

// RootCommand is the root [cobra.Command] for st2mqtt.
var RootCommand = &cobra.Command{
	Use:     "st2mqtt",
	Short:   "Bridge SmartThings devices to MQTT",
	Version: build.Version(),
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		runCleanup()
	},
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
}

func init() {
	RootCommand.AddGroup(
		&cobra.Group{ID: "commands", Title: "Commands:"},
	)
}

// CleanupFunc is run after the executed command returns.
type CleanupFunc func()

var cleanup []CleanupFunc

// AddCleanup registers f to run after the executed command returns.
func AddCleanup(f CleanupFunc) {
	cleanup = append(cleanup, f)
}

func runCleanup() {
	for _, f := range cleanup {
		f()
	}
	cleanup = nil
}

const banner = `st2mqtt {{.Version}} (built %s)
`

// PrintBanner prints the banner to the given command's output.
func PrintBanner(cmd *cobra.Command) error {
	t := template.Must(template.New("banner").Parse(fmt.Sprintf(banner, build.BuildTime())))
	return t.Execute(cmd.OutOrStdout(), cmd.Root())
}

const fullDocsFooter = `Full documentation is available at:
https://pkg.go.dev/github.com/fen-lake/st2mqtt`

// ExitError is an error that should cause the program to exit with the
// given code.
type ExitError struct {
	Err  error
	Code int
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}
