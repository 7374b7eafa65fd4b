// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dependencies

import (
	"context"
	"errors"
	"testing"

	"github.com/luxfi/deployer/internal/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestIsHdWalletProviderRequired(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected bool
		err      error
	}{
		{name: "truffle 5", output: "Truffle v5.1.39 (core: 5.1.39)\nSolidity v0.5.16", expected: true},
		{name: "truffle 5.0.0", output: "Truffle v5.0.0 (core: 5.0.0)", expected: true},
		{name: "truffle 4", output: "Truffle v4.1.14 (core: 4.1.14)", expected: false},
		{name: "colored output", output: "\x1b[1mTruffle v5.4.0\x1b[0m (core: 5.4.0)", expected: true},
		{name: "garbage", output: "command not found", err: ErrNoTruffleVersion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &mocks.CommandRunner{}
			runner.On("Run", mock.Anything, "/project", "truffle", []string{"version"}).Return(tt.output, nil)
			tc := NewToolchain(zap.NewNop(), runner)

			required, err := tc.IsHdWalletProviderRequired(context.Background(), "/project")
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, required)
		})
	}
}

func TestCheckHdWalletProviderVersion(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		runErr   error
		expected bool
	}{
		{name: "recent", output: `{"dependencies":{"@truffle/hdwallet-provider":{"version":"1.2.0"}}}`, expected: true},
		{name: "minimum", output: `{"dependencies":{"@truffle/hdwallet-provider":{"version":"1.0.6"}}}`, expected: true},
		{name: "outdated", output: `{"dependencies":{"@truffle/hdwallet-provider":{"version":"1.0.5"}}}`, expected: false},
		{name: "missing", output: `{}`, runErr: errors.New("exit status 1"), expected: false},
		{name: "no json", output: "", runErr: errors.New("exit status 1"), expected: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &mocks.CommandRunner{}
			runner.On("Run", mock.Anything, "/project", "npm", mock.Anything).Return(tt.output, tt.runErr)
			tc := NewToolchain(zap.NewNop(), runner)

			ok, err := tc.CheckHdWalletProviderVersion(context.Background(), "/project")
			require.NoError(t, err)
			require.Equal(t, tt.expected, ok)
		})
	}
}

func TestInstall(t *testing.T) {
	runner := &mocks.CommandRunner{}
	runner.On("Run", mock.Anything, "/project", "npm", []string{"install", "@truffle/hdwallet-provider@^1.0.6", "--save"}).Return("", nil)
	runner.On("Run", mock.Anything, "", "npm", []string{"install", "--global", "truffle"}).Return("", errors.New("EACCES"))
	runner.On("Available", "truffle").Return(false)
	tc := NewToolchain(zap.NewNop(), runner)

	require.NoError(t, tc.InstallHdWalletProvider(context.Background(), "/project"))
	require.ErrorContains(t, tc.InstallTruffle(context.Background()), "EACCES")

	ok, err := tc.CheckApps(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
	runner.AssertExpectations(t)
}
