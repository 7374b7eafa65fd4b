// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package deploy

import (
	"context"
	"errors"

	"github.com/luxfi/deployer/pkg/constants"
	"github.com/luxfi/deployer/pkg/key"
	"github.com/luxfi/deployer/pkg/prompts"
	"github.com/luxfi/deployer/pkg/truffleconfig"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"
)

var _ = ginkgo.Describe("[Deploy]", func() {
	var f *fixture

	ginkgo.BeforeEach(func() {
		f = newFixture()
	})

	ginkgo.Context("redeploying a testnet consortium", func() {
		ginkgo.It("updates the entry in place and keeps the id", func() {
			for i := 0; i < 2; i++ {
				f.selects(labelTestnet)
				f.deployCommand("ropsten", "", nil)
			}
			f.creds.On("Resolve", key.Ref{Network: "ropsten", Consortium: "ropsten"}, projectDir).
				Return(key.Credential{Path: testMnemonic}, nil)
			f.blankGas()
			f.walletProvider(false, false)

			for i := 0; i < 2; i++ {
				res, err := f.deployer.Deploy(context.Background(), projectDir)
				gomega.Expect(err).Should(gomega.BeNil())
				gomega.Expect(res.Status).Should(gomega.Equal(StatusCompleted))
			}

			networks := f.networks()
			gomega.Expect(networks).Should(gomega.HaveLen(3))
			entry, ok := truffleconfig.Find(networks, "ropsten")
			gomega.Expect(ok).Should(gomega.BeTrue())
			gomega.Expect(entry.Options.ConsortiumID).Should(gomega.Equal(fixedNow.UnixMilli()))
			gomega.Expect(f.configFile()).Should(gomega.HavePrefix("contracts_directory: ./contracts"))
		})
	})

	ginkgo.Context("backing out", func() {
		ginkgo.It("leaves the project untouched when the gas prompt is interrupted", func() {
			f.selects(labelTestnet)
			f.creds.On("Resolve", mock.Anything, projectDir).Return(key.Credential{Path: testMnemonic}, nil)
			f.prompt.On("CaptureValidatedString", gasPriceLabel(), mock.Anything).Return("", prompts.ErrCancelled)

			res, err := f.deployer.Deploy(context.Background(), projectDir)
			gomega.Expect(err).Should(gomega.BeNil())
			gomega.Expect(res.Status).Should(gomega.Equal(StatusCancelled))
			gomega.Expect(f.configFile()).Should(gomega.Equal(projectConfig))
			f.runner.AssertNotCalled(ginkgo.GinkgoT(), "Run", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})

		ginkgo.It("keeps the local chain running after a cancelled wallet install", func() {
			f.selects(labelLocal)
			f.localChainStarts(8545)
			f.toolchain.On("IsHdWalletProviderRequired", mock.Anything, projectDir).Return(false, context.Canceled)

			_, err := f.deployer.Deploy(context.Background(), projectDir)
			gomega.Expect(errors.Is(err, ErrDependencyInstall)).Should(gomega.BeTrue())
			f.chain.AssertNumberOfCalls(ginkgo.GinkgoT(), "Start", 1)
			gomega.Expect(f.configFile()).Should(gomega.Equal(projectConfig))
		})
	})

	ginkgo.Context("custom deploy command", func() {
		ginkgo.It("appends the network name to the configured arguments", func() {
			f.deployer.DeployCommand = "truffle"
			f.deployer.DeployArgs = []string{"migrate"}
			f.selects(constants.DevelopmentNetworkName)
			f.localChainStarts(8545)
			f.walletProvider(false, false)
			f.runner.On("Run", mock.Anything, projectDir, "truffle", []string{"migrate", constants.DevelopmentNetworkName}).
				Return("ok", nil).Once()

			res, err := f.deployer.Deploy(context.Background(), projectDir)
			gomega.Expect(err).Should(gomega.BeNil())
			gomega.Expect(res.Output).Should(gomega.Equal("ok"))
		})
	})
})
