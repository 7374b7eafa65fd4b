// Code generated manually for testing. Update as needed.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Toolchain struct {
	mock.Mock
}

func (m *Toolchain) CheckApps(ctx context.Context) (bool, error) {
	ret := m.Called(ctx)
	return ret.Bool(0), ret.Error(1)
}

func (m *Toolchain) InstallTruffle(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *Toolchain) IsHdWalletProviderRequired(ctx context.Context, dir string) (bool, error) {
	ret := m.Called(ctx, dir)
	return ret.Bool(0), ret.Error(1)
}

func (m *Toolchain) CheckHdWalletProviderVersion(ctx context.Context, dir string) (bool, error) {
	ret := m.Called(ctx, dir)
	return ret.Bool(0), ret.Error(1)
}

func (m *Toolchain) InstallHdWalletProvider(ctx context.Context, dir string) error {
	return m.Called(ctx, dir).Error(0)
}
