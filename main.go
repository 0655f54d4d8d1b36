// Package main provides the entry point for VPN Launcher.
// VPN Launcher lists the VPN profiles known to NetworkManager and connects
// or disconnects them with nmcli, from the command line, a terminal picker
// or the system tray.
//
// Usage:
//
//	vpn-launcher [command] [flags]
//
// Environment:
//
//	The application requires NetworkManager on the system bus and nmcli
//	in $PATH.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/yllada/vpn-launcher/cli"
	"github.com/yllada/vpn-launcher/common"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

func main() {
	// Setup graceful shutdown context
	ctx, cancel := context.WithCancel(context.Background())
	setupSignalHandler(cancel)

	code := cli.Execute(ctx, cli.BuildInfo{
		Version:   appVersion,
		BuildTime: buildTime,
		Commit:    commitSHA,
	})

	cancel()
	os.Exit(code)
}

// setupSignalHandler cancels the context on SIGINT/SIGTERM so a running
// action, picker or tray can shut down cleanly.
func setupSignalHandler(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		common.LogInfo("Received signal %v, initiating graceful shutdown...", sig)
		cancel()
	}()
}
