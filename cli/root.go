// Package cli provides the command-line host for VPN Launcher.
// It drives the VPN plugin from the terminal: one-shot queries, toggling a
// connection by name, the interactive picker and the tray menu.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yllada/vpn-launcher/common"
	"github.com/yllada/vpn-launcher/config"
	"github.com/yllada/vpn-launcher/launcher"
	"github.com/yllada/vpn-launcher/ui"
	"github.com/yllada/vpn-launcher/vpn"
)

// skipPlugin marks commands that run without an initialized plugin.
const skipPlugin = "vpn-launcher/skip-plugin"

// BuildInfo carries the values injected at build time.
type BuildInfo struct {
	Version   string
	BuildTime string
	Commit    string
}

// Env is what the commands need from the outside world.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	// NewService opens the NetworkManager settings service.
	NewService func() vpn.SettingsService
	// LookPath locates the configured tool.
	LookPath func(file string) (string, error)
	// Runner executes item actions.
	Runner launcher.Runner
	// IsTerminal reports whether stdin and stdout are a terminal.
	IsTerminal func() bool
}

// DefaultEnv returns the environment of a real process.
func DefaultEnv() Env {
	return Env{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewService: func() vpn.SettingsService {
			return vpn.NewBus()
		},
		LookPath: exec.LookPath,
		Runner:   launcher.ExecRunner{},
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
}

// app holds the state shared by all commands of one invocation.
type app struct {
	env  Env
	info BuildInfo

	configPath string
	verbose    bool
	logFile    bool

	cfg    *config.Config
	plugin *launcher.Plugin
	lister *vpn.Lister
	closed bool
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, info BuildInfo) int {
	root, a := newRootCommand(info, DefaultEnv())
	defer a.close()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(a.env.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCommand(info BuildInfo, env Env) (*cobra.Command, *app) {
	a := &app{env: env, info: info}

	root := &cobra.Command{
		Use:   "vpn-launcher",
		Short: "List and toggle NetworkManager VPN connections",
		Long: `VPN Launcher - NetworkManager VPN connections at your fingertips

  Lists the VPN profiles known to NetworkManager, filters them by name and
  connects or disconnects them with nmcli.

  Quick start:
    vpn-launcher query work
    vpn-launcher toggle "Work VPN"
    vpn-launcher tui`,
		Version:           info.Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}
	root.SetOut(env.Stdout)
	root.SetErr(env.Stderr)

	// Global flags
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file path")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&a.logFile, "log-file", false, "also log to "+common.LogFileName)

	root.AddCommand(
		a.queryCommand(),
		a.listCommand(),
		a.toggleCommand(),
		a.metadataCommand(),
		a.tuiCommand(),
		a.trayCommand(),
		a.configCommand(),
		a.versionCommand(),
	)

	return root, a
}

// setup loads the configuration, configures logging and, unless the
// command opts out, initializes the plugin.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	path, err := a.resolveConfigPath()
	if err != nil {
		return err
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Level()
	if a.verbose {
		level = common.LevelDebug
	}
	if err := common.InitLogger(common.LogConfig{
		Level:      level,
		EnableFile: cfg.LogFile || a.logFile,
	}); err != nil {
		fmt.Fprintf(a.env.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}

	common.GetLogger().Logrus().
		WithField("command", cmd.CommandPath()).
		WithField("config", path).
		Debug("Starting command")

	if !needsPlugin(cmd) {
		return nil
	}

	service := a.env.NewService()
	a.lister = vpn.NewLister(service)
	a.plugin = launcher.New(service, launcher.Options{
		Trigger:     cfg.Trigger,
		Tool:        cfg.Tool,
		IconName:    cfg.Icon,
		ResolveIcon: ui.ResolveIcon,
		Runner:      a.env.Runner,
		LookPath:    a.env.LookPath,
		Version:     a.info.Version,
	})

	return a.plugin.Initialize()
}

func (a *app) resolveConfigPath() (string, error) {
	if a.configPath != "" {
		return a.configPath, nil
	}
	return config.DefaultPath()
}

// close finalizes the plugin and flushes the log file. It is safe to call
// more than once.
func (a *app) close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	var err error
	if a.plugin != nil {
		err = a.plugin.Finalize()
	}
	if cerr := common.CloseLogger(); err == nil {
		err = cerr
	}
	return err
}

// needsPlugin reports whether cmd talks to NetworkManager.
func needsPlugin(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipPlugin] != "" {
			return false
		}
		switch c.Name() {
		case "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd, "completion":
			return false
		}
	}
	return true
}
