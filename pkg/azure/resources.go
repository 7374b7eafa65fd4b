// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package azure

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/luxfi/deployer/pkg/models"
	"go.uber.org/zap"
)

// ResourceGroupExists reports whether the resource group is already taken
func (c *Client) ResourceGroupExists(ctx context.Context, name string) (bool, error) {
	status, err := c.do(ctx, http.MethodHead, c.subscriptionPath("resourcegroups", name), resourceAPIVersion, nil, nil)
	if err != nil {
		return false, err
	}
	return status == http.StatusNoContent || status == http.StatusOK, nil
}

func (c *Client) CreateResourceGroup(ctx context.Context, name string) error {
	body := map[string]string{"location": c.location}
	_, err := c.do(ctx, http.MethodPut, c.subscriptionPath("resourcegroups", name), resourceAPIVersion, body, nil)
	return err
}

type nameAvailability struct {
	NameAvailable bool   `json:"nameAvailable"`
	Message       string `json:"message"`
	Reason        string `json:"reason"`
}

// MemberNameAvailable asks ARM whether a blockchain member name is free.
func (c *Client) MemberNameAvailable(ctx context.Context, name string) (bool, string, error) {
	var out nameAvailability
	body := map[string]string{"name": name, "type": memberResourceType}
	path := c.subscriptionPath("providers", blockchainProvider, "locations", c.location, "checkNameAvailability")
	if _, err := c.do(ctx, http.MethodPost, path, blockchainAPIVersion, body, &out); err != nil {
		return false, "", err
	}
	return out.NameAvailable, out.Message, nil
}

type consortiumList struct {
	Value []struct {
		Name     string `json:"name"`
		Protocol string `json:"protocol"`
	} `json:"value"`
}

// ConsortiumNameAvailable reports whether no consortium in the location
// uses name.
func (c *Client) ConsortiumNameAvailable(ctx context.Context, name string) (bool, string, error) {
	var out consortiumList
	path := c.subscriptionPath("providers", blockchainProvider, "locations", c.location, "listConsortiums")
	if _, err := c.do(ctx, http.MethodPost, path, blockchainAPIVersion, nil, &out); err != nil {
		return false, "", err
	}
	for _, existing := range out.Value {
		if strings.EqualFold(existing.Name, name) {
			return false, "", nil
		}
	}
	return true, "", nil
}

type apiKeys struct {
	Keys []struct {
		KeyName string `json:"keyName"`
		Value   string `json:"value"`
	} `json:"keys"`
}

// GetAccessKeys returns the member's transaction node access keys.
func (c *Client) GetAccessKeys(ctx context.Context, consortium *models.AzureConsortium) ([]string, error) {
	var out apiKeys
	path := fmt.Sprintf("%s/providers/%s/blockchainMembers/%s/listApiKeys",
		c.subscriptionPath("resourceGroups", consortium.ResourceGroup), blockchainProvider, consortium.MemberName)
	if _, err := c.do(ctx, http.MethodPost, path, blockchainAPIVersion, nil, &out); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(out.Keys))
	for _, k := range out.Keys {
		if k.Value != "" {
			keys = append(keys, k.Value)
		}
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoAccessKeys, consortium.MemberName)
	}
	return keys, nil
}

// MemberSpec describes a new blockchain member.
type MemberSpec struct {
	ResourceGroup      string
	Consortium         string
	MemberName         string
	Password           string
	ManagementPassword string
}

type memberRequest struct {
	Location   string `json:"location"`
	Properties struct {
		Protocol                            string `json:"protocol"`
		Consortium                          string `json:"consortium"`
		Password                            string `json:"password"`
		ConsortiumManagementAccountPassword string `json:"consortiumManagementAccountPassword"`
		ValidatorNodesSku                   struct {
			Capacity int `json:"capacity"`
		} `json:"validatorNodesSku"`
	} `json:"properties"`
	Sku struct {
		Name string `json:"name"`
		Tier string `json:"tier"`
	} `json:"sku"`
}

type memberResponse struct {
	Properties struct {
		DNS string `json:"dns"`
	} `json:"properties"`
}

// CreateMember creates the member and returns the consortium it joined.
func (c *Client) CreateMember(ctx context.Context, spec MemberSpec) (*models.AzureConsortium, error) {
	var req memberRequest
	req.Location = c.location
	req.Properties.Protocol = "Quorum"
	req.Properties.Consortium = spec.Consortium
	req.Properties.Password = spec.Password
	req.Properties.ConsortiumManagementAccountPassword = spec.ManagementPassword
	req.Properties.ValidatorNodesSku.Capacity = 1
	req.Sku.Name = "S0"
	req.Sku.Tier = "Standard"

	var out memberResponse
	path := fmt.Sprintf("%s/providers/%s/blockchainMembers/%s",
		c.subscriptionPath("resourceGroups", spec.ResourceGroup), blockchainProvider, spec.MemberName)
	if _, err := c.do(ctx, http.MethodPut, path, blockchainAPIVersion, req, &out); err != nil {
		return nil, err
	}
	dns := out.Properties.DNS
	if dns == "" {
		dns = fmt.Sprintf("%s.blockchain.azure.com", spec.MemberName)
	}
	c.log.Info("blockchain member created", zap.String("member", spec.MemberName), zap.String("dns", dns))
	return models.NewAzureConsortium(
		spec.Consortium,
		fmt.Sprintf("https://%s:%d", dns, memberPort),
		c.subscriptionID,
		spec.ResourceGroup,
		spec.MemberName,
		c.location,
	), nil
}
