package main

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/portalland/MiamiBeach-LuckPerms/config"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <command>",
		Short: "Manage permsctl configuration",
	}
	cmd.AddCommand(newConfigInteractiveCommand())
	cmd.AddCommand(newConfigListCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	return cmd
}

func newConfigInteractiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Configure permsctl interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.InteractiveConfiguration()
		},
	}
}

func newConfigListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configuration properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := reflect.TypeOf(*permsConfig)
			for i := 0; i < t.NumField(); i++ {
				field := t.Field(i)
				propertyKey := trimTag(field.Tag.Get("yaml"))
				value := reflect.ValueOf(permsConfig).Elem().FieldByName(field.Name).String()
				if value == "" {
					value = "(unset)"
				}
				fmt.Printf("%s = %s\n", propertyKey, color.BlueString(value))
			}
			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <property> <value>",
		Short: "Set a specific config setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			configFilePath := config.GetFilePath()
			cfg, err := config.ReadConfigFromFile(configFilePath)
			if err != nil {
				if os.IsNotExist(errors.Cause(err)) {
					cfg = permsConfig
				} else {
					return err
				}
			}

			t := reflect.TypeOf(*cfg)
			found := false
			for i := 0; i < t.NumField(); i++ {
				field := t.Field(i)
				if trimTag(field.Tag.Get("yaml")) == args[0] {
					found = true
					reflect.ValueOf(cfg).Elem().FieldByName(field.Name).SetString(strings.TrimSpace(args[1]))
				}
			}
			if !found {
				return errors.Errorf("unknown config property: %q", args[0])
			}

			return config.WriteConfig(cfg, configFilePath)
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <property>",
		Short: "Unset a specific config setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configFilePath := config.GetFilePath()
			cfg, err := config.ReadConfigFromFile(configFilePath)
			if err != nil {
				return err
			}

			t := reflect.TypeOf(*cfg)
			found := false
			for i := 0; i < t.NumField(); i++ {
				field := t.Field(i)
				if trimTag(field.Tag.Get("yaml")) == args[0] {
					found = true
					reflect.ValueOf(cfg).Elem().FieldByName(field.Name).Set(reflect.Zero(field.Type))
				}
			}
			if !found {
				return errors.Errorf("unknown config property: %q", args[0])
			}

			fmt.Printf("Unset %s\n", args[0])

			return config.WriteConfig(cfg, configFilePath)
		},
	}
}

// Remove extra fields from a YAML tag e.g. "name,omitempty" -> "name".
func trimTag(tag string) string {
	return strings.Split(tag, ",")[0]
}
