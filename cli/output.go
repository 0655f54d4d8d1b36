package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"al.essio.dev/pkg/shellescape"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/yllada/vpn-launcher/launcher"
	"github.com/yllada/vpn-launcher/vpn"
)

var (
	connectedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")).Bold(true)
	disconnectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// writeItems prints query results as a table.
func writeItems(w io.Writer, items []launcher.Item) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No VPN connections match.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tACTION\tCOMMAND")
	fmt.Fprintln(tw, "----\t------\t-------")

	for _, item := range items {
		var text, command string
		if action, ok := item.DefaultAction(); ok {
			text = action.Text
			command = shellescape.QuoteCommand(action.Commandline)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", item.Text, text, command)
	}

	tw.Flush()
}

// writeConnections prints lister output. Status is colored on terminals;
// it is the last column so escape codes do not disturb alignment.
func writeConnections(w io.Writer, connections []vpn.Connection, color bool) {
	if len(connections) == 0 {
		fmt.Fprintln(w, "No VPN connections configured in NetworkManager.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tUUID\tSTATUS")
	fmt.Fprintln(tw, "----\t----\t------")

	for _, conn := range connections {
		id := "-"
		if conn.UUID != uuid.Nil {
			id = conn.UUID.String()
		}

		status := conn.Status().String()
		if color {
			style := disconnectedStyle
			if conn.Connected {
				style = connectedStyle
			}
			status = style.Render(status)
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\n", conn.Name, id, status)
	}

	tw.Flush()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
