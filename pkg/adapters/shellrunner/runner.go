// Package shellrunner runs companion commands through the shell.
package shellrunner

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/user/gifcast/pkg/ports"
)

// Runner implements ports.CommandRunner with os/exec.
type Runner struct{}

// New creates a new Runner.
func New() *Runner {
	return &Runner{}
}

// Run executes the command through "sh -c" and blocks until it exits.
// The command inherits the caller's standard streams so interactive
// commands keep working while the recording runs in the background.
func (r *Runner) Run(ctx context.Context, command string) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %q: %w", command, err)
	}
	return nil
}

// Ensure Runner implements ports.CommandRunner
var _ ports.CommandRunner = (*Runner)(nil)
