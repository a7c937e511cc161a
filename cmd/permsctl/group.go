package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/portalland/MiamiBeach-LuckPerms/api"
	"github.com/portalland/MiamiBeach-LuckPerms/editor"
)

func newGroupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group <command>",
		Short: "Inspect permission groups",
	}
	cmd.AddCommand(newGroupListCommand())
	cmd.AddCommand(newGroupInspectCommand())
	return cmd
}

func newGroupListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all groups in weight order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printGroups(editor.SortGroups(registry.Groups()))
		},
	}
}

func newGroupInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <group...>",
		Short: "Display detailed information about one or more groups",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var groups []*api.Group
			for _, name := range args {
				group, ok := registry.Group(name)
				if !ok {
					return errors.Errorf("no such group %q", name)
				}
				groups = append(groups, group)
			}
			return printJSON(groups)
		},
	}
}

func printGroups(groups []*api.Group) error {
	switch format {
	case formatJSON:
		return printJSON(groups)
	default:
		if err := printTableRow("NAME", "DISPLAY NAME", "WEIGHT", "NODES"); err != nil {
			return err
		}
		for _, group := range groups {
			weight := "-"
			if group.Weight != nil {
				weight = fmt.Sprintf("%d", *group.Weight)
			}
			if err := printTableRow(
				group.Name,
				group.Display(),
				weight,
				len(group.Permissions),
			); err != nil {
				return err
			}
		}
		return nil
	}
}
