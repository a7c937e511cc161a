package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/portalland/MiamiBeach-LuckPerms/client"
	"github.com/portalland/MiamiBeach-LuckPerms/config"
	"github.com/portalland/MiamiBeach-LuckPerms/store"
)

// These variables are set externally by the linker.
var (
	version = "dev"
	commit  = "unknown"
)

var bytebin *client.Client
var permsConfig *config.Config
var registry *store.Store
var ctx context.Context
var quiet bool
var format string
var actor string
var verbose bool

const (
	formatJSON = "json"
)

var jsonOut *json.Encoder
var tableOut *tabwriter.Writer

func main() {
	jsonOut = json.NewEncoder(os.Stdout)
	jsonOut.SetIndent("", "    ")

	tableOut = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer tableOut.Flush()

	var cancel context.CancelFunc
	ctx, cancel = withSignal(context.Background())
	defer cancel()

	root := &cobra.Command{
		Use:           "permsctl <command>",
		Short:         "permsctl manages permission users, groups and tracks.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("permsctl %s (%q)", version, commit),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}

			var err error
			if permsConfig, err = config.New(); err != nil {
				return err
			}
			if actor != "" {
				permsConfig.Actor = actor
			}

			if registry, err = store.Load(permsConfig.DataFile); err != nil {
				return err
			}

			bytebin, err = client.NewClient(permsConfig.BytebinAddress)
			return err
		},
	}

	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode")
	root.PersistentFlags().StringVar(&format, "format", "", "Output format")
	root.PersistentFlags().StringVar(&actor, "actor", "", "Identity to run as, overriding the configured actor")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	root.AddCommand(newConfigCommand())
	root.AddCommand(newEditorCommand())
	root.AddCommand(newGroupCommand())
	root.AddCommand(newTrackCommand())
	root.AddCommand(newUserCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %+v\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}

// Return a cancelable context which ends on signal interrupt.
//
// The first interrupt cancels the context, allowing callers to terminate
// gracefully. Upon receiving a second interrupt the process is terminated with
// exit code 130 (128 + SIGINT)
func withSignal(parent context.Context) (context.Context, context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	ctx, cancel := context.WithCancel(parent)

	// In most cases this routine will leak due to the lack of a second signal.
	// That's OK since this is expected to last for the life of the process.
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
			// Do nothing.
		}
		<-sigChan
		os.Exit(130)
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}
