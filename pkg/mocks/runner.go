package mocks

import (
	"context"

	"github.com/user/gifcast/pkg/ports"
)

// CommandRunner is a mock implementation of ports.CommandRunner.
type CommandRunner struct {
	Commands []string

	RunFunc func(ctx context.Context, command string) error
}

func (m *CommandRunner) Run(ctx context.Context, command string) error {
	m.Commands = append(m.Commands, command)
	if m.RunFunc != nil {
		return m.RunFunc(ctx, command)
	}
	return nil
}

var _ ports.CommandRunner = (*CommandRunner)(nil)
