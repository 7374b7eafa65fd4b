// Code generated manually for testing. Update as needed.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// CommandRunner is a mock of the external command launcher
type CommandRunner struct {
	mock.Mock
}

func (m *CommandRunner) Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	ret := m.Called(ctx, dir, name, args)
	return ret.String(0), ret.Error(1)
}

func (m *CommandRunner) Available(name string) bool {
	ret := m.Called(name)
	return ret.Bool(0)
}
