package launcher

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"al.essio.dev/pkg/shellescape"

	"github.com/yllada/vpn-launcher/common"
)

// Runner executes action command lines.
type Runner interface {
	// Start spawns argv detached; its outcome is not observed.
	Start(argv []string) error
	// Run executes argv and waits for it to exit.
	Run(ctx context.Context, argv []string) error
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Start implements Runner.
func (ExecRunner) Start(argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("%w: empty command line", common.ErrActionFailed)
	}

	common.LogInfo("Spawning %s", shellescape.QuoteCommand(argv))

	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrActionFailed, argv[0], err)
	}

	// Reap the child; its exit status is deliberately ignored.
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

// Run implements Runner. Combined output is folded into the error.
func (ExecRunner) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("%w: empty command line", common.ErrActionFailed)
	}

	quoted := shellescape.QuoteCommand(argv)
	common.LogInfo("Running %s", quoted)

	out, err := exec.CommandContext(ctx, argv[0], argv[1:]...).CombinedOutput()
	if err == nil {
		return nil
	}

	msg := strings.TrimSpace(string(out))
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && msg != "" {
		return fmt.Errorf("%w: %s: exit status %d: %s", common.ErrActionFailed, quoted, exitErr.ExitCode(), msg)
	}
	return fmt.Errorf("%w: %s: %v", common.ErrActionFailed, quoted, err)
}
