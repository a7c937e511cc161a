package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/portalland/MiamiBeach-LuckPerms/api"
	"github.com/portalland/MiamiBeach-LuckPerms/editor"
)

func newUserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user <command>",
		Short: "Inspect permission users",
	}
	cmd.AddCommand(newUserListCommand())
	cmd.AddCommand(newUserInspectCommand())
	return cmd
}

func newUserListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users in display name order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printUsers(editor.SortUsers(registry.Users()))
		},
	}
}

func newUserInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <user...>",
		Short: "Display detailed information about one or more users",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var users []*api.User
			for _, ref := range args {
				user, ok := registry.User(ref)
				if !ok {
					return errors.Errorf("no such user %q", ref)
				}
				users = append(users, user)
			}
			return printJSON(users)
		},
	}
}

func printUsers(users []*api.User) error {
	switch format {
	case formatJSON:
		return printJSON(users)
	default:
		if err := printTableRow("ID", "USERNAME", "DISPLAY NAME", "NODES"); err != nil {
			return err
		}
		for _, user := range users {
			if err := printTableRow(
				user.ID,
				user.Username,
				user.Display(),
				len(user.Permissions),
			); err != nil {
				return err
			}
		}
		return nil
	}
}
