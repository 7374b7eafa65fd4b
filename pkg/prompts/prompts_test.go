// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/require"
)

func mockPrompt(t *testing.T, fn func(promptui.Prompt) (string, error)) {
	prev := promptUIRunner
	promptUIRunner = fn
	t.Cleanup(func() { promptUIRunner = prev })
}

func mockSelect(t *testing.T, fn func(promptui.Select) (int, string, error)) {
	prev := promptUISelectRunner
	promptUISelectRunner = fn
	t.Cleanup(func() { promptUISelectRunner = prev })
}

func TestPromptCancellation(t *testing.T) {
	p := NewPrompter()
	for _, promptErr := range []error{promptui.ErrInterrupt, promptui.ErrEOF, promptui.ErrAbort} {
		mockPrompt(t, func(promptui.Prompt) (string, error) { return "", promptErr })
		mockSelect(t, func(promptui.Select) (int, string, error) { return 0, "", promptErr })

		_, err := p.CaptureStringAllowEmpty("gas")
		require.ErrorIs(t, err, ErrCancelled)
		_, err = p.CaptureList("network", []string{"development"})
		require.ErrorIs(t, err, ErrCancelled)
	}

	other := errors.New("terminal gone")
	mockPrompt(t, func(promptui.Prompt) (string, error) { return "", other })
	_, err := p.CaptureString("name")
	require.ErrorIs(t, err, other)
	require.NotErrorIs(t, err, ErrCancelled)
}

func TestCaptureListSizesToOptions(t *testing.T) {
	mockSelect(t, func(sel promptui.Select) (int, string, error) {
		require.Equal(t, 2, sel.Size)
		return 1, "live", nil
	})
	choice, err := NewPrompter().CaptureList("network", []string{"development", "live"})
	require.NoError(t, err)
	require.Equal(t, "live", choice)
}

func TestCaptureConfirmation(t *testing.T) {
	var label any
	mockPrompt(t, func(p promptui.Prompt) (string, error) {
		label = p.Label
		return "yes", p.Validate("yes")
	})
	answer, err := NewPrompter().CaptureConfirmation("Deploy to mainnet?")
	require.NoError(t, err)
	require.Equal(t, "yes", answer)
	require.Equal(t, "Deploy to mainnet? (yes/no)", label)
}

func TestCaptureNewFilepath(t *testing.T) {
	dir := t.TempDir()
	mockPrompt(t, func(p promptui.Prompt) (string, error) {
		require.Equal(t, filepath.Join(dir, "a.env"), p.Default)
		return "  " + p.Default + "  ", nil
	})
	path, err := NewPrompter().CaptureNewFilepath("Save mnemonic", filepath.Join(dir, "a.env"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "a.env"), path)
}

func TestValidateNewFilepath(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "taken.env")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0o600))

	require.Error(t, validateNewFilepath(""))
	require.Error(t, validateNewFilepath(existing))
	require.NoError(t, validateNewFilepath(filepath.Join(dir, "free.env")))
}

func TestValidateConfirmation(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"yes", false},
		{"NO", false},
		{"Yes", false},
		{"y", true},
		{"sure", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := validateConfirmation(tt.input)
			if tt.wantErr {
				require.EqualError(t, err, "'yes' or 'no'")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateURLFormat(t *testing.T) {
	require.NoError(t, ValidateURLFormat("http://127.0.0.1:8545"))
	require.NoError(t, ValidateURLFormat("https://member.blockchain.azure.com:3200"))
	require.Error(t, ValidateURLFormat(""))
	require.Error(t, ValidateURLFormat("ws://127.0.0.1:8545"))
	require.Error(t, ValidateURLFormat("http://"))
}

func TestRequirements(t *testing.T) {
	withTTY(t, true)
	t.Setenv(EnvNonInteractive, "")
	t.Setenv(EnvCI, "")

	t.Run("non-interactive lists every missing flag", func(t *testing.T) {
		SetNonInteractive(true)
		defer SetNonInteractive(false)

		name, url := "", ""
		err := NewRequirements("deployer network add").
			Require(&name, MissingOpt{Flag: "--name"}).
			Require(&url, MissingOpt{Flag: "--url", Note: "RPC endpoint"}).
			Resolve(NewNonInteractivePrompter())
		require.Error(t, err)
		require.Contains(t, err.Error(), "--name")
		require.Contains(t, err.Error(), "--url - RPC endpoint")
		require.Contains(t, err.Error(), "deployer network add --help")
	})

	t.Run("non-interactive uses defaults", func(t *testing.T) {
		SetNonInteractive(true)
		defer SetNonInteractive(false)

		url := ""
		req := NewRequirements("deployer network add").
			RequireWithDefault(&url, MissingOpt{Flag: "--url"}, "http://127.0.0.1:8545")
		require.False(t, req.HasMissing())
		require.Equal(t, "http://127.0.0.1:8545", url)
	})

	t.Run("interactive prompts for each value", func(t *testing.T) {
		SetNonInteractive(false)
		mockPrompt(t, func(p promptui.Prompt) (string, error) {
			if p.Label == "Network name" {
				return "staging", nil
			}
			return "", nil
		})

		name, url := "", ""
		err := NewRequirements("deployer network add").
			Require(&name, MissingOpt{Flag: "--name", Prompt: "Network name"}).
			RequireWithDefault(&url, MissingOpt{Flag: "--url", Prompt: "RPC URL"}, "http://127.0.0.1:8545").
			Resolve(NewPrompter())
		require.NoError(t, err)
		require.Equal(t, "staging", name)
		require.Equal(t, "http://127.0.0.1:8545", url)
	})
}
