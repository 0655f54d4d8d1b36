// Package launcher implements the VPN query handler and the small plugin
// protocol it speaks with its host.
//
// A host turns user input into a Query with ParseQuery, hands it to
// Plugin.HandleQuery and displays the returned Items. Activating an item's
// ProcAction spawns the configured tool (nmcli by default) with
// "connection up|down id <name>".
//
// Plugin.Initialize must succeed before queries are handled; it fails with
// common.ErrToolNotFound when the tool is not on $PATH. Plugin.Finalize
// releases the bus session.
package launcher
