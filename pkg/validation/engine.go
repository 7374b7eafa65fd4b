// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package validation

import (
	"context"

	"github.com/luxfi/deployer/pkg/constants"
)

const (
	keyResourceGroup = "resource-group"
	keyConsortium    = "consortium"
	keyMember        = "member"
)

// Engine validates the names and passwords needed to create a managed
// consortium. Format rules are checked locally first; only a well formed
// name reaches the remote availability check, which goes through the
// engine's Debouncer.
//
// Every method returns "" when the value is valid, otherwise a message for
// the user. The error is reserved for failed remote lookups.
type Engine struct {
	debouncer *Debouncer
}

func NewEngine(debouncer *Debouncer) *Engine {
	return &Engine{debouncer: debouncer}
}

// ExistsFunc adapts an existence check to an AvailabilityFunc.
func ExistsFunc(exists func(ctx context.Context, name string) (bool, error)) AvailabilityFunc {
	return func(ctx context.Context, name string) (bool, string, error) {
		found, err := exists(ctx, name)
		return !found, "", err
	}
}

func (*Engine) ValidateAccessPassword(password string) string {
	return New(password).
		IsNotEmpty().
		HasLowerCase().
		HasUpperCase().
		HasDigit().
		HasSpecialChar(passwordSpecialChars).
		HasNoForbiddenChar(passwordForbidden, UnresolvedSymbols(forbiddenPasswordSymbols)).
		InLengthRange(constants.MinPasswordLength, constants.MaxPasswordLength).
		Message()
}

func (e *Engine) ValidateResourceGroupName(ctx context.Context, name string, exists AvailabilityFunc) (string, error) {
	return e.ResourceGroupField(ctx, exists).Validate(name)
}

func (e *Engine) ValidateConsortiumName(ctx context.Context, name string, available AvailabilityFunc) (string, error) {
	return e.ConsortiumField(ctx, available).Validate(name)
}

func (e *Engine) ValidateMemberName(ctx context.Context, name string, available AvailabilityFunc) (string, error) {
	return e.MemberField(ctx, available).Validate(name)
}

func (e *Engine) ResourceGroupField(ctx context.Context, exists AvailabilityFunc) *Field {
	return e.field(ctx, keyResourceGroup, resourceGroupName, exists, ResourceGroupExists)
}

func (e *Engine) ConsortiumField(ctx context.Context, available AvailabilityFunc) *Field {
	return e.field(ctx, keyConsortium, azureName, available, nil)
}

func (e *Engine) MemberField(ctx context.Context, available AvailabilityFunc) *Field {
	return e.field(ctx, keyMember, azureName, available, nil)
}

func (e *Engine) field(
	ctx context.Context,
	key string,
	format func(string) string,
	available AvailabilityFunc,
	message func(string) string,
) *Field {
	return &Field{
		ctx:       ctx,
		debouncer: e.debouncer,
		key:       key,
		format:    format,
		available: available,
		message:   message,
	}
}

func resourceGroupName(name string) string {
	msg := New(name).
		IsNotEmpty().
		HasSpecialChar(groupNameChars).
		HasNoForbiddenChar(dotAtTheEnd, UnresolvedSymbols(forbiddenDotAtTheEnd)).
		HasNoForbiddenChar(groupNameForbidden, UnresolvedSymbols(forbiddenGroupNameSymbols)).
		InLengthRange(constants.MinResourceGroupLength, constants.MaxResourceGroupLength).
		Message()
	if msg != "" {
		return MsgInvalidGroupName
	}
	return ""
}

func azureName(name string) string {
	msg := New(name).
		IsNotEmpty().
		HasSpecialChar(consortiumMemberChars).
		InLengthRange(constants.MinConsortiumAndMemberLength, constants.MaxConsortiumAndMemberLength).
		Message()
	if msg != "" {
		return MsgInvalidAzureName
	}
	return ""
}
