package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yllada/vpn-launcher/common"
	"github.com/yllada/vpn-launcher/launcher"
	"github.com/yllada/vpn-launcher/ui"
)

func (a *app) queryCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "query [text...]",
		Short: "Run a launcher query and print the resulting items",
		Long: `Run the plugin on "<trigger><text>" and print the items a launcher
would show. Without text every VPN connection is listed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := a.plugin.Trigger() + strings.Join(args, " ")
			q := launcher.ParseQuery(a.plugin.Trigger(), input)

			items, err := a.plugin.HandleQuery(cmd.Context(), q)
			if jsonOut {
				if werr := writeJSON(a.env.Stdout, items); werr != nil {
					return werr
				}
			} else {
				writeItems(a.env.Stdout, items)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print items as JSON")
	return cmd
}

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List VPN connections known to NetworkManager",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			connections, err := a.lister.List(cmd.Context())
			if err != nil {
				return err
			}
			writeConnections(a.env.Stdout, connections, a.env.IsTerminal())
			return nil
		},
	}
}

func (a *app) toggleCommand() *cobra.Command {
	var detach bool

	cmd := &cobra.Command{
		Use:   "toggle NAME",
		Short: "Connect or disconnect a VPN connection",
		Long: `Connect NAME if it is down, disconnect it if it is up.
NAME may be any unambiguous part of the connection name.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := a.plugin.Lookup(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			action, ok := item.DefaultAction()
			if !ok {
				return fmt.Errorf("%w: %s has no action", common.ErrActionFailed, item.Text)
			}

			if detach {
				return action.Activate()
			}

			fmt.Fprintf(a.env.Stdout, "%s...\n", action.Text)
			if err := action.Run(cmd.Context()); err != nil {
				return err
			}

			if item.Connected() {
				fmt.Fprintf(a.env.Stdout, "✓ Disconnected from %s\n", item.Text)
			} else {
				fmt.Fprintf(a.env.Stdout, "✓ Connected to %s\n", item.Text)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&detach, "detach", "d", false, "start the tool and return without waiting")
	return cmd
}

func (a *app) metadataCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "metadata",
		Short: "Print the plugin metadata as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(a.env.Stdout, a.plugin.Metadata())
		},
	}
}

func (a *app) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [text...]",
		Short: "Pick and toggle a VPN connection interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.env.IsTerminal() {
				return errors.New("tui requires an interactive terminal")
			}
			return ui.RunPicker(cmd.Context(), a.plugin, strings.Join(args, " "))
		},
	}
}

func (a *app) trayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tray",
		Short: "Show VPN connections in the system tray",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			common.LogInfo("Starting %s tray v%s", common.AppName, a.info.Version)
			ui.NewTray(cmd.Context(), a.plugin, ui.DefaultNotifier()).Run()
			return nil
		},
	}
}

func (a *app) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Manage the configuration file",
		Annotations: map[string]string{skipPlugin: "true"},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.resolveConfigPath()
			if err != nil {
				return err
			}
			if common.FileExists(path) && !force {
				return fmt.Errorf("%w: %s already exists (use --force to overwrite)", common.ErrConfigSave, path)
			}
			if err := a.cfg.Save(path); err != nil {
				return err
			}
			fmt.Fprintf(a.env.Stdout, "✓ Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeYAML(a.env.Stdout, a.cfg)
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipPlugin: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.env.Stdout, "%s v%s\n", common.AppName, a.info.Version)
			if a.info.BuildTime != "" && a.info.BuildTime != "unknown" {
				fmt.Fprintf(a.env.Stdout, "  Build:  %s\n", a.info.BuildTime)
				fmt.Fprintf(a.env.Stdout, "  Commit: %s\n", a.info.Commit)
			}
		},
	}
}
