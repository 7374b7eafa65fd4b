// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package deploy

import (
	"errors"
	"fmt"
)

// Failure kinds. Match them with errors.Is.
var (
	ErrPrecondition      = errors.New("project configuration is missing")
	ErrConfiguration     = errors.New("configuration access failed")
	ErrRemoteLookup      = errors.New("remote lookup failed")
	ErrCredentials       = errors.New("mnemonic resolution failed")
	ErrDependencyInstall = errors.New("dependency installation failed")
	ErrExecution         = errors.New("deployment command failed")
)

type Step int

const (
	StepToolchain Step = iota
	StepOpenConfig
	StepSelectNetwork
	StepResolveTarget
	StepEnsureDependencies
	StepWriteConfig
	StepExecute
)

func (s Step) String() string {
	switch s {
	case StepToolchain:
		return "toolchain"
	case StepOpenConfig:
		return "open-config"
	case StepSelectNetwork:
		return "select-network"
	case StepResolveTarget:
		return "resolve-target"
	case StepEnsureDependencies:
		return "ensure-dependencies"
	case StepWriteConfig:
		return "write-config"
	case StepExecute:
		return "execute"
	}
	return "unknown"
}

// StepError is a failed deployment step. Both the kind and the original
// cause are reachable through errors.Is and errors.As.
type StepError struct {
	Step Step
	Kind error
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Step, e.Kind, e.Err)
}

func (e *StepError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func stepErr(step Step, kind, err error) error {
	if err == nil {
		return nil
	}
	return &StepError{Step: step, Kind: kind, Err: err}
}
