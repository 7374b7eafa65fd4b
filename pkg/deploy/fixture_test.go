// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package deploy

import (
	"fmt"
	"io"
	"time"

	"github.com/luxfi/deployer/internal/mocks"
	"github.com/luxfi/deployer/pkg/binutils"
	"github.com/luxfi/deployer/pkg/constants"
	"github.com/luxfi/deployer/pkg/models"
	pmocks "github.com/luxfi/deployer/pkg/prompts/mocks"
	"github.com/luxfi/deployer/pkg/truffleconfig"
	"github.com/luxfi/deployer/pkg/ux"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const (
	projectDir = "/project"
	baseDir    = "/home/.deployer"

	labelLocal   = "Local Network [local]"
	labelTestnet = "ropsten [testnet]"
	labelMainnet = "ethmain [mainnet]"
	labelAzure   = "cons [azure]"

	testURLTestnet = "https://ropsten.example"
	testURLMainnet = "https://mainnet.example"
	testURLAzure   = "https://cons.blockchain.azure.com:3200"
	testMnemonic   = "/project/fixed.env"
	testAccessKey  = "secret-key"
)

var fixedNow = time.UnixMilli(1556000000000)

const projectConfig = `contracts_directory: ./contracts
networks:
  development:
    host: 127.0.0.1
    port: 8545
    network_id: "*"
  live:
    host: 10.0.0.1
    port: 8545
    network_id: 1
`

type fixture struct {
	fs        afero.Fs
	prompt    *pmocks.Prompter
	toolchain *mocks.Toolchain
	chain     *mocks.LocalChain
	runner    *mocks.CommandRunner
	creds     *mocks.CredentialResolver
	keys      *mocks.AccessKeyProvider
	tree      *models.TreeStore
	deployer  *Deployer
}

func newFixture() *fixture {
	ux.NewUserLog(zap.NewNop(), io.Discard)
	f := &fixture{
		fs:        afero.NewMemMapFs(),
		prompt:    &pmocks.Prompter{},
		toolchain: &mocks.Toolchain{},
		chain:     &mocks.LocalChain{},
		runner:    &mocks.CommandRunner{},
		creds:     &mocks.CredentialResolver{},
		keys:      &mocks.AccessKeyProvider{},
	}
	if err := afero.WriteFile(f.fs, projectDir+"/"+constants.TruffleConfigFileName, []byte(projectConfig), 0o644); err != nil {
		panic(err)
	}

	f.tree = models.NewTreeStore(f.fs, baseDir)
	tree := models.DefaultTree()
	for _, n := range []struct {
		name string
		kind models.Kind
		url  string
	}{
		{"ropsten", models.PublicTestnet, testURLTestnet},
		{"ethmain", models.PublicMainnet, testURLMainnet},
	} {
		if _, err := tree.AddNetwork(n.name, n.kind, n.url); err != nil {
			panic(err)
		}
	}
	if err := tree.ManagedNetwork().AddChild(models.NewAzureConsortium("cons", testURLAzure, "sub", "rg", "member", "eastus")); err != nil {
		panic(err)
	}
	if err := f.tree.Save(tree); err != nil {
		panic(err)
	}

	f.deployer = New(Config{
		Log:         zap.NewNop(),
		Prompt:      f.prompt,
		Toolchain:   f.toolchain,
		LocalChain:  f.chain,
		Runner:      f.runner,
		Credentials: f.creds,
		Tree:        f.tree,
		AccessKeys:  f.keys,
		OpenConfig: func(dir string) (ProjectConfig, error) {
			cfg, err := truffleconfig.OpenProject(f.fs, dir)
			if err != nil {
				return nil, err
			}
			return cfg, nil
		},
	})
	f.deployer.now = func() time.Time { return fixedNow }
	f.deployer.spinner = func(string) interface{ Stop() } { return noopSpinner{} }

	f.toolchain.On("CheckApps", mock.Anything).Return(true, nil).Maybe()
	return f
}

type noopSpinner struct{}

func (noopSpinner) Stop() {}

func (f *fixture) selects(label string) {
	f.prompt.On("CaptureList", promptSelectNetwork, mock.Anything).Return(label, nil).Once()
}

func (f *fixture) walletProvider(required, current bool) {
	f.toolchain.On("IsHdWalletProviderRequired", mock.Anything, projectDir).Return(required, nil)
	f.toolchain.On("CheckHdWalletProviderVersion", mock.Anything, projectDir).Return(current, nil).Maybe()
	f.toolchain.On("InstallHdWalletProvider", mock.Anything, projectDir).Return(nil).Maybe()
}

func (f *fixture) blankGas() {
	f.prompt.On("CaptureValidatedString", mock.MatchedBy(func(label string) bool {
		return label == gasPriceLabel() || label == gasLabel()
	}), mock.Anything).Return("", nil)
}

func (f *fixture) deployCommand(network string, out string, err error) {
	args := append(append([]string{}, constants.DefaultDeployArgs...), network)
	f.runner.On("Run", mock.Anything, projectDir, constants.DefaultDeployCommand, args).Return(out, err).Once()
}

func (f *fixture) localChainStarts(port int) {
	f.chain.On("Start", mock.Anything, port).Return(binutils.LocalChainInfo{Pid: 1, Port: port}, nil).Once()
}

func (f *fixture) networks() []truffleconfig.Network {
	cfg, err := truffleconfig.OpenProject(f.fs, projectDir)
	if err != nil {
		panic(err)
	}
	networks, err := cfg.GetNetworks()
	if err != nil {
		panic(err)
	}
	return networks
}

func (f *fixture) configFile() string {
	data, err := afero.ReadFile(f.fs, projectDir+"/"+constants.TruffleConfigFileName)
	if err != nil {
		panic(err)
	}
	return string(data)
}

func gasPriceLabel() string {
	return fmt.Sprintf(promptGasPrice, constants.DefaultGasPrice)
}

func gasLabel() string {
	return fmt.Sprintf(promptGas, constants.DefaultGas)
}

func (f *fixture) treeFile() string {
	data, err := afero.ReadFile(f.fs, baseDir+"/"+constants.NetworkTreeFileName)
	if err != nil {
		panic(err)
	}
	return string(data)
}
