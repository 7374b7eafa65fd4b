// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

const (
	ConfirmYes = "yes"
	ConfirmNo  = "no"
)

// ErrCancelled is returned when the user backs out of a prompt
var ErrCancelled = errors.New("cancelled by user")

// promptUIRunner is a variable for testing purposes to allow mocking prompt.Run()
var promptUIRunner = func(prompt promptui.Prompt) (string, error) {
	return prompt.Run()
}

// promptUISelectRunner is a variable for testing purposes to allow mocking select.Run()
var promptUISelectRunner = func(sel promptui.Select) (int, string, error) {
	return sel.Run()
}

type Prompter interface {
	CaptureList(promptStr string, options []string) (string, error)
	CaptureString(promptStr string) (string, error)
	CaptureStringAllowEmpty(promptStr string) (string, error)
	CaptureValidatedString(promptStr string, validator func(string) error) (string, error)
	CapturePassword(promptStr string, validator func(string) error) (string, error)
	CaptureConfirmation(promptStr string) (string, error)
	CaptureNewFilepath(promptStr string, defaultPath string) (string, error)
}

type realPrompter struct{}

func NewPrompter() Prompter {
	return &realPrompter{}
}

// translateErr maps the ways a user can leave a promptui prompt to ErrCancelled
func translateErr(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
		return ErrCancelled
	}
	return err
}

func runPrompt(prompt promptui.Prompt) (string, error) {
	str, err := promptUIRunner(prompt)
	if err != nil {
		return "", translateErr(err)
	}
	return str, nil
}

func runSelect(sel promptui.Select) (int, string, error) {
	idx, str, err := promptUISelectRunner(sel)
	if err != nil {
		return 0, "", translateErr(err)
	}
	return idx, str, nil
}

func (*realPrompter) CaptureList(promptStr string, options []string) (string, error) {
	_, listDecision, err := runSelect(promptui.Select{
		Label: promptStr,
		Items: options,
		Size:  len(options),
	})
	return listDecision, err
}

func (*realPrompter) CaptureString(promptStr string) (string, error) {
	return runPrompt(promptui.Prompt{
		Label: promptStr,
		Validate: func(input string) error {
			if input == "" {
				return errors.New("string cannot be empty")
			}
			return nil
		},
	})
}

func (*realPrompter) CaptureStringAllowEmpty(promptStr string) (string, error) {
	return runPrompt(promptui.Prompt{
		Label: promptStr,
	})
}

// CaptureValidatedString prompts for a string with custom validation
func (*realPrompter) CaptureValidatedString(promptStr string, validator func(string) error) (string, error) {
	return runPrompt(promptui.Prompt{
		Label:    promptStr,
		Validate: validator,
	})
}

func (*realPrompter) CapturePassword(promptStr string, validator func(string) error) (string, error) {
	return runPrompt(promptui.Prompt{
		Label:    promptStr,
		Validate: validator,
		Mask:     '*',
	})
}

// CaptureConfirmation asks for a typed 'yes' or 'no'. An empty answer is
// returned as is so callers can treat it as a refusal.
func (*realPrompter) CaptureConfirmation(promptStr string) (string, error) {
	return runPrompt(promptui.Prompt{
		Label:    fmt.Sprintf("%s (%s/%s)", promptStr, ConfirmYes, ConfirmNo),
		Validate: validateConfirmation,
	})
}

func (*realPrompter) CaptureNewFilepath(promptStr string, defaultPath string) (string, error) {
	path, err := runPrompt(promptui.Prompt{
		Label:     promptStr,
		Default:   defaultPath,
		AllowEdit: true,
		Validate:  validateNewFilepath,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(path), nil
}
