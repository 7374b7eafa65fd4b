// Code generated manually for testing. Update as needed.

package mocks

import (
	"github.com/luxfi/deployer/pkg/models"
	"github.com/luxfi/deployer/pkg/truffleconfig"
	"github.com/stretchr/testify/mock"
)

type ProjectConfig struct {
	mock.Mock
}

func (m *ProjectConfig) Path() string {
	return m.Called().String(0)
}

func (m *ProjectConfig) GetNetworks() ([]truffleconfig.Network, error) {
	ret := m.Called()
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).([]truffleconfig.Network), ret.Error(1)
}

func (m *ProjectConfig) SetNetworks(networks []truffleconfig.Network) error {
	return m.Called(networks).Error(0)
}

type NetworkTree struct {
	mock.Mock
}

func (m *NetworkTree) Load() (*models.Tree, error) {
	ret := m.Called()
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(*models.Tree), ret.Error(1)
}

func (m *NetworkTree) Save(tree *models.Tree) error {
	return m.Called(tree).Error(0)
}
