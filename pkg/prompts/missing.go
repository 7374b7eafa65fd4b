// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompts

import (
	"errors"
	"fmt"
	"strings"
)

// MissingOpt describes a required option that was not provided.
type MissingOpt struct {
	Flag    string // e.g., "--url"
	Env     string // optional environment variable
	Prompt  string // label used for interactive prompts
	Note    string // optional additional context
	Default string // optional default value hint
	// Validate is applied to prompted values; nil accepts any non-empty string.
	Validate func(string) error
}

// MissingError creates an actionable error listing all missing options.
func MissingError(cmd string, missing []MissingOpt) error {
	if len(missing) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("missing required options:\n")
	for _, m := range missing {
		if m.Env != "" {
			fmt.Fprintf(&b, "  %s (or %s)", m.Flag, m.Env)
		} else {
			fmt.Fprintf(&b, "  %s", m.Flag)
		}
		if m.Note != "" {
			fmt.Fprintf(&b, " - %s", m.Note)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nrun '%s --help' to see all options", cmd)
	if !IsInteractive() {
		b.WriteString("\nor run on a TTY to be prompted interactively")
	}
	return errors.New(b.String())
}

// Requirements collects required command options and resolves the missing
// ones either by prompting or by failing with MissingError.
type Requirements struct {
	cmd     string
	missing []MissingOpt
	values  []*string
}

func NewRequirements(cmd string) *Requirements {
	return &Requirements{cmd: cmd}
}

// Require marks a value as required. If empty, adds to missing list.
func (r *Requirements) Require(target *string, opt MissingOpt) *Requirements {
	if *target == "" {
		r.missing = append(r.missing, opt)
		r.values = append(r.values, target)
	}
	return r
}

// RequireWithDefault uses the default if empty and non-interactive, otherwise prompts.
func (r *Requirements) RequireWithDefault(target *string, opt MissingOpt, defaultVal string) *Requirements {
	if *target != "" {
		return r
	}
	if !IsInteractive() {
		*target = defaultVal
		return r
	}
	opt.Default = defaultVal
	r.missing = append(r.missing, opt)
	r.values = append(r.values, target)
	return r
}

func (r *Requirements) Missing() []MissingOpt {
	return r.missing
}

func (r *Requirements) HasMissing() bool {
	return len(r.missing) > 0
}

// Resolve prompts for missing values (interactive) or returns error (non-interactive).
func (r *Requirements) Resolve(prompt Prompter) error {
	if !r.HasMissing() {
		return nil
	}
	if !IsInteractive() {
		return MissingError(r.cmd, r.missing)
	}
	for i, m := range r.missing {
		val, err := captureMissing(prompt, m)
		if err != nil {
			return fmt.Errorf("failed to get %s: %w", m.Flag, err)
		}
		if val == "" {
			val = m.Default
		}
		*r.values[i] = val
	}
	return nil
}

func captureMissing(prompt Prompter, m MissingOpt) (string, error) {
	label := m.Prompt
	if m.Default != "" {
		label = fmt.Sprintf("%s (default: %s)", m.Prompt, m.Default)
		return prompt.CaptureStringAllowEmpty(label)
	}
	if m.Validate != nil {
		return prompt.CaptureValidatedString(label, m.Validate)
	}
	return prompt.CaptureString(label)
}
