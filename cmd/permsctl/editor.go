package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/portalland/MiamiBeach-LuckPerms/editor"
)

// editorPermission is the base permission checked when deciding which
// entities an actor may see in an editor session.
const editorPermission = "permsctl.editor"

func newEditorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "editor [all|users|groups]",
		Short: "Open a web editor session for the entity registry",
		Long: `Opens a web editor session: uploads a filtered snapshot of the
entity registry to the configured paste service and prints a URL the
web editor loads it from. Unrecognized scope arguments select the full
scope.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var token string
			if len(args) == 1 {
				token = args[0]
			}

			svc := &editor.Service{
				Users:       registry,
				Groups:      registry,
				Tracks:      registry,
				Checker:     registry,
				Uploader:    bytebin,
				URLTemplate: permsConfig.EditorURL,
				Logger:      logrus.StandardLogger(),
			}

			if !quiet {
				fmt.Println("Preparing a new editor session, please wait...")
			}

			session, err := svc.Open(ctx, editor.Request{
				Actor:      permsConfig.Actor,
				Permission: editorPermission,
				ScopeToken: token,
				Label:      cmd.CalledAs(),
			})

			var upErr *editor.UploadError
			switch {
			case errors.Is(err, editor.ErrNoMatch):
				fmt.Println("Unable to open editor: no entities matched the requested scope.")
				return nil
			case errors.Is(err, editor.ErrNotViewable):
				fmt.Println("Unable to open editor: you don't have permission to view any matching entity.")
				return nil
			case errors.As(err, &upErr):
				return fmt.Errorf("unable to upload editor data: %w", upErr.Err)
			case err != nil:
				return err
			}

			if quiet {
				fmt.Println(session.URL)
				return nil
			}

			fmt.Println("Click the link below to open the editor:")
			fmt.Println(color.HiCyanString(session.URL))
			return nil
		},
	}
}
