// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package deploy drives a contract deployment from network selection to
// running the project's migrations.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/luxfi/deployer/pkg/azure"
	"github.com/luxfi/deployer/pkg/binutils"
	"github.com/luxfi/deployer/pkg/constants"
	"github.com/luxfi/deployer/pkg/key"
	"github.com/luxfi/deployer/pkg/models"
	"github.com/luxfi/deployer/pkg/prompts"
	"github.com/luxfi/deployer/pkg/truffleconfig"
	"github.com/luxfi/deployer/pkg/ux"
	"go.uber.org/zap"
)

const (
	promptSelectNetwork = "Select a network to deploy to"
	promptConfirmMain   = "You are deploying to the main network. Continue?"
	promptGasPrice      = "Enter gas price (default: %d)"
	promptGas           = "Enter gas limit (default: %d)"
)

type Toolchain interface {
	CheckApps(ctx context.Context) (bool, error)
	InstallTruffle(ctx context.Context) error
	IsHdWalletProviderRequired(ctx context.Context, dir string) (bool, error)
	CheckHdWalletProviderVersion(ctx context.Context, dir string) (bool, error)
	InstallHdWalletProvider(ctx context.Context, dir string) error
}

type LocalChain interface {
	Start(ctx context.Context, port int) (binutils.LocalChainInfo, error)
}

type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) (string, error)
}

type AccessKeyProvider interface {
	GetAccessKeys(ctx context.Context, consortium *models.AzureConsortium) ([]string, error)
}

type CredentialResolver interface {
	Resolve(ref key.Ref, projectDir string) (key.Credential, error)
}

type NetworkTree interface {
	Load() (*models.Tree, error)
	Save(tree *models.Tree) error
}

// ProjectConfig is an opened project configuration artifact.
type ProjectConfig interface {
	Path() string
	GetNetworks() ([]truffleconfig.Network, error)
	SetNetworks(networks []truffleconfig.Network) error
}

type ConfigOpener func(projectDir string) (ProjectConfig, error)

// Config wires a Deployer to its collaborators.
type Config struct {
	Log         *zap.Logger
	Prompt      prompts.Prompter
	Toolchain   Toolchain
	LocalChain  LocalChain
	Runner      CommandRunner
	Credentials CredentialResolver
	Tree        NetworkTree
	OpenConfig  ConfigOpener
	// AccessKeys may be nil when no managed consortium is configured.
	AccessKeys AccessKeyProvider

	DeployCommand string
	DeployArgs    []string
}

// Deployer runs one deployment at a time. It takes no lock on the project
// configuration; concurrent runs against the same project are the caller's
// concern.
type Deployer struct {
	Config
	now     func() time.Time
	spinner func(description string) interface{ Stop() }
}

func New(cfg Config) *Deployer {
	if cfg.DeployCommand == "" {
		cfg.DeployCommand = constants.DefaultDeployCommand
	}
	if len(cfg.DeployArgs) == 0 {
		cfg.DeployArgs = constants.DefaultDeployArgs
	}
	return &Deployer{
		Config: cfg,
		now:    time.Now,
		spinner: func(description string) interface{ Stop() } {
			return ux.StartSpinner(description)
		},
	}
}

// plan is what a resolved target asks the later steps to do.
type plan struct {
	name string
	// entry is written before execution; nil leaves the configuration as is.
	entry *truffleconfig.Network
}

// Deploy runs the whole flow for the project in projectDir. A user backing
// out of any prompt ends the run with StatusCancelled and a nil error;
// side effects already performed, such as a started local chain, are kept.
func (d *Deployer) Deploy(ctx context.Context, projectDir string) (Result, error) {
	res, err := d.deploy(ctx, projectDir)
	if errors.Is(err, prompts.ErrCancelled) {
		d.Log.Info("deployment cancelled", zap.String("project", projectDir))
		return cancelled(), nil
	}
	if err != nil {
		d.Log.Error("deployment failed", zap.String("project", projectDir), zap.Error(err))
		return Result{}, err
	}
	return res, nil
}

func (d *Deployer) deploy(ctx context.Context, projectDir string) (Result, error) {
	d.Log.Debug("deployment step", zap.String("step", StepToolchain.String()))
	if err := d.ensureToolchain(ctx); err != nil {
		return Result{}, stepErr(StepToolchain, ErrDependencyInstall, err)
	}

	d.Log.Debug("deployment step", zap.String("step", StepOpenConfig.String()))
	cfg, err := d.OpenConfig(projectDir)
	if err != nil {
		return Result{}, stepErr(StepOpenConfig, ErrPrecondition, err)
	}
	entries, err := cfg.GetNetworks()
	if err != nil {
		return Result{}, stepErr(StepOpenConfig, ErrConfiguration, err)
	}
	tree, err := d.Tree.Load()
	if err != nil {
		return Result{}, stepErr(StepOpenConfig, ErrConfiguration, err)
	}

	d.Log.Debug("deployment step", zap.String("step", StepSelectNetwork.String()))
	target, err := d.selectTarget(entries, tree)
	if err != nil {
		return Result{}, err
	}

	d.Log.Debug("deployment step", zap.String("step", StepResolveTarget.String()), zap.String("target", target.Label))
	p, err := d.resolve(ctx, projectDir, tree, target)
	if err != nil {
		return Result{}, err
	}

	d.Log.Debug("deployment step", zap.String("step", StepEnsureDependencies.String()))
	if err := d.ensureDependencies(ctx, projectDir); err != nil {
		return Result{}, stepErr(StepEnsureDependencies, ErrDependencyInstall, err)
	}

	if p.entry != nil {
		d.Log.Debug("deployment step", zap.String("step", StepWriteConfig.String()), zap.String("network", p.name))
		if err := cfg.SetNetworks(truffleconfig.Upsert(entries, *p.entry)); err != nil {
			return Result{}, stepErr(StepWriteConfig, ErrConfiguration, err)
		}
	}

	d.Log.Debug("deployment step", zap.String("step", StepExecute.String()), zap.String("network", p.name))
	out, err := d.execute(ctx, projectDir, p.name)
	if err != nil {
		// the written entry is kept
		return Result{}, stepErr(StepExecute, ErrExecution, err)
	}
	ux.Logger.GreenCheckmarkToUser("Deployed to %s", p.name)
	return Result{Status: StatusCompleted, Network: p.name, Output: out}, nil
}

func (d *Deployer) ensureToolchain(ctx context.Context) error {
	ok, err := d.Toolchain.CheckApps(ctx)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	s := d.spinner("Installing " + constants.TruffleAppName)
	defer s.Stop()
	return d.Toolchain.InstallTruffle(ctx)
}

func (d *Deployer) selectTarget(entries []truffleconfig.Network, tree *models.Tree) (Target, error) {
	targets := buildTargets(entries, tree)
	choice, err := d.Prompt.CaptureList(promptSelectNetwork, labels(targets))
	if err != nil {
		return Target{}, err
	}
	for _, t := range targets {
		if t.Label == choice {
			return t, nil
		}
	}
	// no selection
	return Target{}, prompts.ErrCancelled
}

func (d *Deployer) resolve(ctx context.Context, projectDir string, tree *models.Tree, t Target) (plan, error) {
	if t.Entry != nil {
		return d.resolveEntry(ctx, *t.Entry)
	}
	switch c := t.Consortium.(type) {
	case *models.LocalConsortium:
		return d.resolveLocal(ctx, tree, c)
	case *models.TestChainConsortium:
		return d.resolveLocal(ctx, tree, c)
	case *models.TestnetConsortium:
		return d.resolvePublic(projectDir, tree, t.Network, c, constants.AnyNetworkID)
	case *models.MainnetConsortium:
		if err := d.confirmMainnet(); err != nil {
			return plan{}, err
		}
		return d.resolvePublic(projectDir, tree, t.Network, c, constants.MainnetNetworkID)
	case *models.AzureConsortium:
		return d.resolveAzure(ctx, projectDir, tree, t.Network, c)
	}
	return plan{}, fmt.Errorf("unsupported consortium %T", t.Consortium)
}

// resolveEntry handles entries already in the configuration. They are
// deployed as they are.
func (d *Deployer) resolveEntry(ctx context.Context, entry truffleconfig.Network) (plan, error) {
	switch {
	case entry.Name == constants.DevelopmentNetworkName:
		port := entry.Options.Port
		if port == 0 {
			port = constants.LocalPort
		}
		if _, err := d.LocalChain.Start(ctx, port); err != nil {
			return plan{}, stepErr(StepResolveTarget, ErrExecution, err)
		}
	case entry.Options.NetworkID == constants.MainnetNetworkID:
		if err := d.confirmMainnet(); err != nil {
			return plan{}, err
		}
	}
	return plan{name: entry.Name}, nil
}

// consortiumID returns the id of c, assigning and persisting one when c is
// deployed for the first time. It runs only once every prompt and remote
// lookup of the target has succeeded, so a cancelled or failed resolution
// leaves the network tree untouched.
func (d *Deployer) consortiumID(tree *models.Tree, c models.Consortium) (int64, error) {
	if id, ok := c.ID(); ok {
		return id, nil
	}
	id := d.now().UnixMilli()
	if err := c.SetID(id); err != nil {
		return 0, stepErr(StepResolveTarget, ErrConfiguration, err)
	}
	if err := d.Tree.Save(tree); err != nil {
		return 0, stepErr(StepResolveTarget, ErrConfiguration, err)
	}
	return id, nil
}

func (d *Deployer) resolveLocal(ctx context.Context, tree *models.Tree, c models.Consortium) (plan, error) {
	host, port, err := splitURL(c.URL())
	if err != nil {
		return plan{}, stepErr(StepResolveTarget, ErrConfiguration, err)
	}
	if _, err := d.LocalChain.Start(ctx, port); err != nil {
		return plan{}, stepErr(StepResolveTarget, ErrExecution, err)
	}
	if _, err := d.consortiumID(tree, c); err != nil {
		return plan{}, err
	}
	entry := truffleconfig.Network{
		Name: c.Name(),
		Options: truffleconfig.NetworkOptions{
			Host:      host,
			Port:      port,
			NetworkID: constants.AnyNetworkID,
		},
	}
	return plan{name: entry.Name, entry: &entry}, nil
}

func (d *Deployer) resolvePublic(projectDir string, tree *models.Tree, n *models.Network, c models.Consortium, networkID truffleconfig.NetworkID) (plan, error) {
	cred, err := d.resolveMnemonic(projectDir, n, c)
	if err != nil {
		return plan{}, err
	}
	gasPrice, err := d.captureUint(fmt.Sprintf(promptGasPrice, constants.DefaultGasPrice), constants.DefaultGasPrice)
	if err != nil {
		return plan{}, err
	}
	gas, err := d.captureUint(fmt.Sprintf(promptGas, constants.DefaultGas), constants.DefaultGas)
	if err != nil {
		return plan{}, err
	}
	ux.Logger.PrintToUser("Using gas limit %s and gas price %s wei",
		ux.ConvertToStringWithThousandSeparator(gas), ux.ConvertToStringWithThousandSeparator(gasPrice))
	id, err := d.consortiumID(tree, c)
	if err != nil {
		return plan{}, err
	}
	entry := truffleconfig.Network{
		Name: c.Name(),
		Options: truffleconfig.NetworkOptions{
			NetworkID:    networkID,
			ConsortiumID: id,
			Gas:          gas,
			GasPrice:     &gasPrice,
			Provider:     &truffleconfig.Provider{Mnemonic: cred.Path, URL: c.URL()},
		},
	}
	return plan{name: entry.Name, entry: &entry}, nil
}

func (d *Deployer) resolveAzure(ctx context.Context, projectDir string, tree *models.Tree, n *models.Network, c *models.AzureConsortium) (plan, error) {
	if d.AccessKeys == nil {
		return plan{}, stepErr(StepResolveTarget, ErrRemoteLookup, constants.ErrNoAzureCredentials)
	}
	keys, err := d.AccessKeys.GetAccessKeys(ctx, c)
	if err != nil {
		return plan{}, stepErr(StepResolveTarget, ErrRemoteLookup, err)
	}
	if len(keys) == 0 {
		return plan{}, stepErr(StepResolveTarget, ErrRemoteLookup, fmt.Errorf("%w: %s", azure.ErrNoAccessKeys, c.Name()))
	}
	cred, err := d.resolveMnemonic(projectDir, n, c)
	if err != nil {
		return plan{}, err
	}
	id, err := d.consortiumID(tree, c)
	if err != nil {
		return plan{}, err
	}
	gasPrice := uint64(0)
	entry := truffleconfig.Network{
		Name: c.Name(),
		Options: truffleconfig.NetworkOptions{
			NetworkID:    constants.AnyNetworkID,
			ConsortiumID: id,
			Gas:          constants.DefaultGas,
			GasPrice:     &gasPrice,
			Provider: &truffleconfig.Provider{
				Mnemonic: cred.Path,
				URL:      strings.TrimSuffix(c.URL(), "/") + "/" + keys[0],
			},
		},
	}
	return plan{name: entry.Name, entry: &entry}, nil
}

func (d *Deployer) resolveMnemonic(projectDir string, n *models.Network, c models.Consortium) (key.Credential, error) {
	cred, err := d.Credentials.Resolve(key.Ref{Network: n.Name, Consortium: c.Name()}, projectDir)
	if err != nil {
		if errors.Is(err, prompts.ErrCancelled) {
			return key.Credential{}, err
		}
		return key.Credential{}, stepErr(StepResolveTarget, ErrCredentials, err)
	}
	return cred, nil
}

func (d *Deployer) confirmMainnet() error {
	answer, err := d.Prompt.CaptureConfirmation(promptConfirmMain)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, prompts.ConfirmYes) {
		return prompts.ErrCancelled
	}
	return nil
}

// captureUint asks for a number, using def when the answer is blank.
func (d *Deployer) captureUint(label string, def uint64) (uint64, error) {
	answer, err := d.Prompt.CaptureValidatedString(label, validateOptionalUint)
	if err != nil {
		return 0, err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return def, nil
	}
	return strconv.ParseUint(answer, 10, 64)
}

func validateOptionalUint(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	if _, err := strconv.ParseUint(input, 10, 64); err != nil {
		return errors.New("value must be a positive whole number")
	}
	return nil
}

// ensureDependencies installs the HD wallet provider when truffle needs it
// and the installed one is missing or too old.
func (d *Deployer) ensureDependencies(ctx context.Context, projectDir string) error {
	required, err := d.Toolchain.IsHdWalletProviderRequired(ctx, projectDir)
	if err != nil {
		return err
	}
	if !required {
		return nil
	}
	current, err := d.Toolchain.CheckHdWalletProviderVersion(ctx, projectDir)
	if err != nil {
		return err
	}
	if current {
		return nil
	}
	s := d.spinner("Installing " + constants.HdWalletProviderName)
	defer s.Stop()
	return d.Toolchain.InstallHdWalletProvider(ctx, projectDir)
}

func (d *Deployer) execute(ctx context.Context, projectDir, network string) (string, error) {
	args := append(append([]string{}, d.DeployArgs...), network)
	s := d.spinner("Deploying contracts to " + network)
	defer s.Stop()
	return d.Runner.Run(ctx, projectDir, d.DeployCommand, args...)
}

func splitURL(raw string) (string, int, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", 0, err
	}
	host, portStr, err := net.SplitHostPort(u.Host)
	if err != nil {
		return "", 0, fmt.Errorf("local chain url %q must contain a port: %w", raw, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid port in %q: %w", raw, err)
	}
	return host, port, nil
}
