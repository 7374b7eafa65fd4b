// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package binutils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/luxfi/deployer/pkg/utils"
	"go.uber.org/zap"
)

// CommandError keeps the diagnostics of a failed external command.
type CommandError struct {
	Command  string
	ExitCode int
	Output   string
	Err      error
}

func (e *CommandError) Error() string {
	out := strings.TrimSpace(e.Output)
	if out == "" {
		return fmt.Sprintf("%s failed: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("%s failed with exit code %d:\n%s", e.Command, e.ExitCode, out)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Runner executes external tools inside a working directory.
type Runner struct {
	log *zap.Logger
	// lookPath is replaced in tests
	lookPath func(string) (string, error)
}

func NewRunner(log *zap.Logger) *Runner {
	return &Runner{log: log, lookPath: exec.LookPath}
}

// Run executes name with args in dir and returns the combined output. A
// failure is reported as *CommandError.
func (r *Runner) Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	line := strings.TrimSpace(name + " " + strings.Join(args, " "))
	r.log.Debug("running command", zap.String("command", line), zap.String("dir", dir))
	err := cmd.Run()
	output := utils.CleanOutput(out.String())
	if err != nil {
		cmdErr := &CommandError{Command: line, ExitCode: -1, Output: output, Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr.ExitCode = exitErr.ExitCode()
		}
		r.log.Debug("command failed", zap.String("command", line), zap.Error(err))
		return output, cmdErr
	}
	return output, nil
}

// Available reports whether name can be found on PATH
func (r *Runner) Available(name string) bool {
	_, err := r.lookPath(name)
	return err == nil
}
