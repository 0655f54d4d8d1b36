package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/yllada/vpn-launcher/common"
	"github.com/yllada/vpn-launcher/vpn"
)

// PluginIID identifies the plugin protocol version spoken by this package.
const PluginIID = "org.vpnlauncher.Plugin/v1"

// ConnectionLister lists VPN connections.
type ConnectionLister interface {
	List(ctx context.Context) ([]vpn.Connection, error)
}

// Options configures a Plugin. Zero values fall back to defaults.
type Options struct {
	// Trigger is the query prefix that activates the plugin.
	Trigger string
	// Tool is the command-line tool used by item actions.
	Tool string
	// IconName is the theme icon name for result items.
	IconName string
	// ResolveIcon maps IconName to a displayable icon; nil keeps the name.
	ResolveIcon func(name string) string
	// Runner executes item actions; nil uses ExecRunner.
	Runner Runner
	// LookPath locates Tool; nil uses exec.LookPath.
	LookPath func(file string) (string, error)
	// Version is reported in Metadata.
	Version string
}

// Metadata describes the plugin to its host.
type Metadata struct {
	IID          string   `json:"iid"`
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Trigger      string   `json:"trigger"`
	Dependencies []string `json:"dependencies"`
}

// Plugin is the VPN query handler. It is stateless across queries apart
// from the bus session and the icon resolved during Initialize.
type Plugin struct {
	opts        Options
	lister      ConnectionLister
	closer      io.Closer
	icon        string
	initialized bool
}

// New creates a Plugin that lists connections through service.
// If service is an io.Closer, Finalize closes it.
func New(service vpn.SettingsService, opts Options) *Plugin {
	p := newPlugin(vpn.NewLister(service), opts)
	if c, ok := service.(io.Closer); ok {
		p.closer = c
	}
	return p
}

func newPlugin(lister ConnectionLister, opts Options) *Plugin {
	if opts.Trigger == "" {
		opts.Trigger = common.DefaultTrigger
	}
	if opts.Tool == "" {
		opts.Tool = common.DefaultTool
	}
	if opts.IconName == "" {
		opts.IconName = common.DefaultIconName
	}
	if opts.Runner == nil {
		opts.Runner = ExecRunner{}
	}
	if opts.LookPath == nil {
		opts.LookPath = exec.LookPath
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	return &Plugin{opts: opts, lister: lister}
}

// Metadata returns the plugin description.
func (p *Plugin) Metadata() Metadata {
	return Metadata{
		IID:          PluginIID,
		Name:         "VPN",
		Version:      p.opts.Version,
		Trigger:      p.opts.Trigger,
		Dependencies: []string{p.opts.Tool},
	}
}

// Trigger returns the registered trigger prefix.
func (p *Plugin) Trigger() string {
	return p.opts.Trigger
}

// Initialize verifies the tool is on $PATH and resolves the item icon.
// A failure here is fatal for the plugin.
func (p *Plugin) Initialize() error {
	if _, err := p.opts.LookPath(p.opts.Tool); err != nil {
		return fmt.Errorf("%w: '%s' is not in $PATH", common.ErrToolNotFound, p.opts.Tool)
	}

	p.icon = p.opts.IconName
	if p.opts.ResolveIcon != nil {
		p.icon = p.opts.ResolveIcon(p.opts.IconName)
	}

	p.initialized = true
	common.LogDebug("Plugin initialized (tool %s, icon %s)", p.opts.Tool, p.icon)
	return nil
}

// Finalize releases the bus session.
func (p *Plugin) Finalize() error {
	p.initialized = false
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}

// HandleQuery returns the items for q. Queries that are not valid or not
// triggered yield no items. A listing failure yields no items and the error.
func (p *Plugin) HandleQuery(ctx context.Context, q Query) ([]Item, error) {
	items := []Item{}
	if !q.Valid || !q.Triggered {
		return items, nil
	}
	if !p.initialized {
		return items, common.ErrNotInitialized
	}

	connections, err := p.lister.List(ctx)
	if err != nil {
		common.LogError("VPN query %q failed: %v", q.String, err)
		return items, err
	}

	for _, conn := range connections {
		if q.String != "" && !common.ContainsFold(conn.Name, q.String) {
			continue
		}
		items = append(items, p.buildItem(conn))
	}
	return items, nil
}

// Lookup returns the item for the connection named name. An exact
// case-insensitive match wins; otherwise the name must be a substring of
// exactly one connection.
func (p *Plugin) Lookup(ctx context.Context, name string) (Item, error) {
	name = strings.TrimSpace(name)
	items, err := p.HandleQuery(ctx, TriggeredQuery(name))
	if err != nil {
		return Item{}, err
	}

	for _, item := range items {
		if strings.EqualFold(item.Text, name) {
			return item, nil
		}
	}

	switch len(items) {
	case 0:
		return Item{}, fmt.Errorf("%w: %q", common.ErrNoMatch, name)
	case 1:
		return items[0], nil
	default:
		candidates := make([]string, 0, len(items))
		for _, item := range items {
			candidates = append(candidates, item.Text)
		}
		return Item{}, fmt.Errorf("%w: %q matches %s", common.ErrAmbiguousMatch, name, strings.Join(candidates, ", "))
	}
}

func (p *Plugin) buildItem(conn vpn.Connection) Item {
	verb := conn.Verb()

	text := "Connect to " + conn.Name
	if verb == vpn.VerbDown {
		text = "Disconnect from " + conn.Name
	}

	return Item{
		ID:         fmt.Sprintf("vpn-%s-%s", verb, conn.Name),
		Text:       conn.Name,
		Subtext:    text,
		Icon:       p.icon,
		Completion: conn.Name,
		Actions: []ProcAction{
			NewProcAction(text, []string{p.opts.Tool, "connection", verb, "id", conn.Name}, p.opts.Runner),
		},
	}
}

// IsFatal reports whether err means the plugin cannot be used at all.
func IsFatal(err error) bool {
	return errors.Is(err, common.ErrToolNotFound)
}
