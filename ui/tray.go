// Package ui provides the interactive hosts for VPN Launcher.
// This file contains the system tray host.
package ui

import (
	"context"
	"fmt"
	"sync"

	"fyne.io/systray"

	"github.com/yllada/vpn-launcher/common"
	"github.com/yllada/vpn-launcher/launcher"
)

// Pre-generated icons for performance.
var (
	iconConnected    = GenerateConnectedIcon()
	iconDisconnected = GenerateDisconnectedIcon()
)

// Tray lists VPN connections in a tray menu and toggles one per click.
// The menu is rebuilt after every action and on "Refresh"; it does not poll.
type Tray struct {
	ctx      context.Context
	handler  QueryHandler
	notifier Notifier

	mu         sync.Mutex
	items      []launcher.Item
	slots      []*systray.MenuItem
	parent     *systray.MenuItem
	statusItem *systray.MenuItem
}

// NewTray creates a tray host.
func NewTray(ctx context.Context, handler QueryHandler, notifier Notifier) *Tray {
	return &Tray{
		ctx:      ctx,
		handler:  handler,
		notifier: notifier,
	}
}

// Run starts the tray and blocks until it quits or ctx is cancelled.
func (t *Tray) Run() {
	go func() {
		<-t.ctx.Done()
		systray.Quit()
	}()
	systray.Run(t.onReady, t.onExit)
}

func (t *Tray) onReady() {
	systray.SetIcon(iconDisconnected)
	systray.SetTitle(common.AppName)
	systray.SetTooltip(common.AppName)

	t.statusItem = systray.AddMenuItem("Loading…", "VPN status")
	t.statusItem.Disable()

	systray.AddSeparator()

	t.parent = systray.AddMenuItem("Connections", "VPN connections")

	systray.AddSeparator()

	refreshItem := systray.AddMenuItem("Refresh", "Reload VPN connections")
	go func() {
		for range refreshItem.ClickedCh {
			t.refresh()
		}
	}()

	quitItem := systray.AddMenuItem("Quit", "Close "+common.AppName)
	go func() {
		for range quitItem.ClickedCh {
			systray.Quit()
		}
	}()

	t.refresh()
}

func (t *Tray) onExit() {
	common.LogInfo("Tray exited")
}

// refresh re-queries the plugin and updates the menu.
func (t *Tray) refresh() {
	items, err := t.handler.HandleQuery(t.ctx, launcher.TriggeredQuery(""))

	t.mu.Lock()
	defer t.mu.Unlock()

	if err != nil {
		t.statusItem.SetTitle("Error: " + err.Error())
		systray.SetIcon(iconDisconnected)
		return
	}
	t.items = items

	for i, item := range items {
		if i >= len(t.slots) {
			slot := t.parent.AddSubMenuItemCheckbox(item.Text, item.Subtext, item.Connected())
			t.slots = append(t.slots, slot)
			go t.watch(i, slot)
		}
		slot := t.slots[i]
		slot.SetTitle(item.Text)
		slot.SetTooltip(item.Subtext)
		if item.Connected() {
			slot.Check()
		} else {
			slot.Uncheck()
		}
		slot.Show()
	}
	for _, slot := range t.slots[len(items):] {
		slot.Hide()
	}

	active := connectedNames(items)
	t.statusItem.SetTitle(statusTitle(active, len(items)))
	if len(active) > 0 {
		systray.SetIcon(iconConnected)
		systray.SetTooltip(fmt.Sprintf("%s - %s", common.AppName, active[0]))
	} else {
		systray.SetIcon(iconDisconnected)
		systray.SetTooltip(common.AppName + " - Disconnected")
	}
}

// watch toggles the item currently shown in slot i on every click.
func (t *Tray) watch(i int, slot *systray.MenuItem) {
	for range slot.ClickedCh {
		t.mu.Lock()
		if i >= len(t.items) {
			t.mu.Unlock()
			continue
		}
		item := t.items[i]
		t.mu.Unlock()

		t.toggle(item)
	}
}

func (t *Tray) toggle(item launcher.Item) {
	action, ok := item.DefaultAction()
	if !ok {
		return
	}

	err := action.Run(t.ctx)
	if err != nil {
		common.LogError("Tray: %s failed: %v", action.Text, err)
	}
	if nerr := t.notifier.Notify(actionNotification(item.Text, !item.Connected(), err)); nerr != nil {
		common.LogWarn("Tray: notification failed: %v", nerr)
	}

	t.refresh()
}

func connectedNames(items []launcher.Item) []string {
	var names []string
	for _, item := range items {
		if item.Connected() {
			names = append(names, item.Text)
		}
	}
	return names
}

func statusTitle(active []string, total int) string {
	switch {
	case total == 0:
		return "No VPN connections"
	case len(active) == 0:
		return "○  Not Connected"
	case len(active) == 1:
		return "●  Connected: " + active[0]
	default:
		return fmt.Sprintf("●  Connected: %s (+%d)", active[0], len(active)-1)
	}
}
