// Code generated manually for testing. Update as needed.

package mocks

import (
	"context"

	"github.com/luxfi/deployer/pkg/models"
	"github.com/stretchr/testify/mock"
)

type AccessKeyProvider struct {
	mock.Mock
}

func (m *AccessKeyProvider) GetAccessKeys(ctx context.Context, consortium *models.AzureConsortium) ([]string, error) {
	ret := m.Called(ctx, consortium)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).([]string), ret.Error(1)
}
