// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package dependencies

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/luxfi/deployer/pkg/constants"
	"github.com/luxfi/deployer/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/mod/semver"
)

var (
	ErrNoTruffleVersion = errors.New("unable to detect the installed truffle version")

	truffleVersionRe = regexp.MustCompile(`Truffle v(\d+\.\d+\.\d+)`)
)

// CommandRunner runs external tools. binutils.Runner implements it.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) (string, error)
	Available(name string) bool
}

// Toolchain checks and installs the node tooling used for deployments.
type Toolchain struct {
	log    *zap.Logger
	runner CommandRunner
}

func NewToolchain(log *zap.Logger, runner CommandRunner) *Toolchain {
	return &Toolchain{log: log, runner: runner}
}

// CheckApps reports whether truffle is installed
func (t *Toolchain) CheckApps(context.Context) (bool, error) {
	ok := t.runner.Available(constants.TruffleAppName)
	t.log.Debug("checked apps", zap.String("app", constants.TruffleAppName), zap.Bool("available", ok))
	return ok, nil
}

func (t *Toolchain) InstallTruffle(ctx context.Context) error {
	_, err := t.runner.Run(ctx, "", constants.NpmCommand, "install", "--global", constants.TruffleAppName)
	if err != nil {
		return fmt.Errorf("failed to install %s: %w", constants.TruffleAppName, err)
	}
	return nil
}

// TruffleVersion returns the truffle version used in dir, with a "v" prefix.
func (t *Toolchain) TruffleVersion(ctx context.Context, dir string) (string, error) {
	out, err := t.runner.Run(ctx, dir, constants.TruffleAppName, "version")
	if err != nil {
		return "", err
	}
	match := truffleVersionRe.FindStringSubmatch(utils.CleanOutput(out))
	if match == nil {
		return "", ErrNoTruffleVersion
	}
	return "v" + match[1], nil
}

// IsHdWalletProviderRequired reports whether truffle in dir needs the
// separate HD wallet provider package to sign with a mnemonic.
func (t *Toolchain) IsHdWalletProviderRequired(ctx context.Context, dir string) (bool, error) {
	version, err := t.TruffleVersion(ctx, dir)
	if err != nil {
		return false, err
	}
	return semver.Compare(version, constants.HdWalletProviderRequiredTruffleVersion) >= 0, nil
}

type npmList struct {
	Dependencies map[string]struct {
		Version string `json:"version"`
	} `json:"dependencies"`
}

// CheckHdWalletProviderVersion reports whether a recent enough HD wallet
// provider is installed in dir.
func (t *Toolchain) CheckHdWalletProviderVersion(ctx context.Context, dir string) (bool, error) {
	out, err := t.runner.Run(ctx, dir, constants.NpmCommand, "ls", constants.HdWalletProviderName, "--json", "--depth", "0")
	var list npmList
	if jsonErr := json.Unmarshal([]byte(out), &list); jsonErr != nil {
		if err != nil {
			// npm exits non zero when the package is missing
			t.log.Debug("hdwallet provider not listed", zap.Error(err))
			return false, nil
		}
		return false, fmt.Errorf("failed to parse npm output: %w", jsonErr)
	}
	dep, ok := list.Dependencies[constants.HdWalletProviderName]
	if !ok || dep.Version == "" {
		return false, nil
	}
	version := semver.Canonical("v" + dep.Version)
	if version == "" {
		return false, nil
	}
	return semver.Compare(version, constants.HdWalletProviderMinVersion) >= 0, nil
}

func (t *Toolchain) InstallHdWalletProvider(ctx context.Context, dir string) error {
	pkg := constants.HdWalletProviderName + "@^" + constants.HdWalletProviderMinVersion[1:]
	if _, err := t.runner.Run(ctx, dir, constants.NpmCommand, "install", pkg, "--save"); err != nil {
		return fmt.Errorf("failed to install %s: %w", constants.HdWalletProviderName, err)
	}
	return nil
}
