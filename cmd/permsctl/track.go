package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/portalland/MiamiBeach-LuckPerms/api"
	"github.com/portalland/MiamiBeach-LuckPerms/editor"
)

func newTrackCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track <command>",
		Short: "Inspect group tracks",
	}
	cmd.AddCommand(newTrackListCommand())
	cmd.AddCommand(newTrackInspectCommand())
	return cmd
}

func newTrackListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tracks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printTracks(editor.SortTracks(registry.Tracks()))
		},
	}
}

func newTrackInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <track...>",
		Short: "Display detailed information about one or more tracks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var tracks []*api.Track
			for _, name := range args {
				track, ok := registry.Track(name)
				if !ok {
					return errors.Errorf("no such track %q", name)
				}
				tracks = append(tracks, track)
			}
			return printJSON(tracks)
		},
	}
}

func printTracks(tracks []*api.Track) error {
	switch format {
	case formatJSON:
		return printJSON(tracks)
	default:
		if err := printTableRow("NAME", "GROUPS"); err != nil {
			return err
		}
		for _, track := range tracks {
			if err := printTableRow(
				track.Name,
				strings.Join(track.Groups, " -> "),
			); err != nil {
				return err
			}
		}
		return nil
	}
}
