// Code generated manually for testing. Update as needed.

package mocks

import (
	"context"

	"github.com/luxfi/deployer/pkg/binutils"
	"github.com/stretchr/testify/mock"
)

type LocalChain struct {
	mock.Mock
}

func (m *LocalChain) Start(ctx context.Context, port int) (binutils.LocalChainInfo, error) {
	ret := m.Called(ctx, port)
	return ret.Get(0).(binutils.LocalChainInfo), ret.Error(1)
}
