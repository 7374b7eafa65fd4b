// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompts

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNonInteractivePrompter_CustomMessage(t *testing.T) {
	p := NewNonInteractivePrompterWithMessage("use --project-dir flag")

	_, err := p.CaptureString("Project directory")
	require.Error(t, err)
	require.Contains(t, err.Error(), "use --project-dir flag")
	require.Contains(t, err.Error(), "Project directory")
}

func TestNonInteractivePrompter_AllMethods(t *testing.T) {
	p := NewNonInteractivePrompter()

	tests := []struct {
		name string
		fn   func() error
	}{
		{"CaptureList", func() error { _, err := p.CaptureList("", []string{"a"}); return err }},
		{"CaptureString", func() error { _, err := p.CaptureString(""); return err }},
		{"CaptureStringAllowEmpty", func() error { _, err := p.CaptureStringAllowEmpty(""); return err }},
		{"CaptureValidatedString", func() error { _, err := p.CaptureValidatedString("", nil); return err }},
		{"CapturePassword", func() error { _, err := p.CapturePassword("", nil); return err }},
		{"CaptureConfirmation", func() error { _, err := p.CaptureConfirmation(""); return err }},
		{"CaptureNewFilepath", func() error { _, err := p.CaptureNewFilepath("", ""); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrNonInteractive))
		})
	}
}
