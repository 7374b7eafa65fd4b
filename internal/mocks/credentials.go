// Code generated manually for testing. Update as needed.

package mocks

import (
	"github.com/luxfi/deployer/pkg/key"
	"github.com/stretchr/testify/mock"
)

type CredentialResolver struct {
	mock.Mock
}

func (m *CredentialResolver) Resolve(ref key.Ref, projectDir string) (key.Credential, error) {
	ret := m.Called(ref, projectDir)
	return ret.Get(0).(key.Credential), ret.Error(1)
}
