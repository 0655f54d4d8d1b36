package launcher

import (
	"context"
	"strings"
)

// Item is one displayable, actionable result.
type Item struct {
	ID         string       `json:"id"`
	Text       string       `json:"text"`
	Subtext    string       `json:"subtext"`
	Icon       string       `json:"icon"`
	Completion string       `json:"completion"`
	Actions    []ProcAction `json:"actions"`
}

// DefaultAction returns the item's first action.
func (i Item) DefaultAction() (ProcAction, bool) {
	if len(i.Actions) == 0 {
		return ProcAction{}, false
	}
	return i.Actions[0], true
}

// Verb returns the action verb encoded in the item ID ("up" or "down"),
// or "" for IDs not produced by the plugin.
func (i Item) Verb() string {
	rest, ok := strings.CutPrefix(i.ID, "vpn-")
	if !ok {
		return ""
	}
	verb, _, ok := strings.Cut(rest, "-")
	if !ok || (verb != "up" && verb != "down") {
		return ""
	}
	return verb
}

// Connected reports whether the item's connection is currently active.
func (i Item) Connected() bool {
	return i.Verb() == "down"
}

// ProcAction runs an external command when activated.
type ProcAction struct {
	Text        string   `json:"text"`
	Commandline []string `json:"commandline"`

	runner Runner
}

// NewProcAction creates an action that runs commandline through runner.
// A nil runner uses ExecRunner.
func NewProcAction(text string, commandline []string, runner Runner) ProcAction {
	return ProcAction{Text: text, Commandline: commandline, runner: runner}
}

// Activate spawns the command and returns without waiting for it.
func (a ProcAction) Activate() error {
	return a.runnerOrDefault().Start(a.Commandline)
}

// Run executes the command and waits for it, returning its failure if any.
func (a ProcAction) Run(ctx context.Context) error {
	return a.runnerOrDefault().Run(ctx, a.Commandline)
}

func (a ProcAction) runnerOrDefault() Runner {
	if a.runner == nil {
		return ExecRunner{}
	}
	return a.runner
}
