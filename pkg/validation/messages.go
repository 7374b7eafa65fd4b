// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package validation

import (
	"fmt"
	"regexp"
)

const (
	MsgEmpty             = "Value cannot be empty."
	MsgNoLowerCase       = "Password should have at least one lowercase letter from a to z."
	MsgNoUpperCase       = "Password should have at least one uppercase letter from A to Z."
	MsgNoDigit           = "Password should have at least one digit."
	MsgNoSpecialChar     = "Password must have 1 special character."
	MsgInvalidConfirm    = "'yes' or 'no'"
	MsgNameAlreadyInUse  = "This name is already in use. Choose another one."
	MsgInvalidAzureName  = "Only lowercase letters and numbers are allowed. The name must start with a letter and be 2 to 20 characters long."
	MsgInvalidGroupName  = "Resource group names only allow alphanumeric characters, periods, underscores, hyphens and parenthesis and cannot end in a period."
	msgLengthRange       = "Length must be between %d and %d characters."
	msgUnresolvedSymbols = "Provided value has unresolved symbols: %s"
	msgGroupExists       = "Resource group %s already exists."

	forbiddenPasswordSymbols  = "#`*\"'-%;,"
	forbiddenDotAtTheEnd      = "'.' at the end"
	forbiddenGroupNameSymbols = "#`*\"'%;,!@$^&+=?/<>|[]{}:\\~"
)

var (
	passwordSpecialChars  = regexp.MustCompile(`[!@$^&()+=?/<>|\[\]{}_:.\\~]`)
	passwordForbidden     = regexp.MustCompile("[#`*\"'\\-%;,]")
	groupNameChars        = regexp.MustCompile(`[-\w.()]`)
	groupNameForbidden    = regexp.MustCompile("[#`*\"'%;,!@$^&+=?/<>|\\[\\]{}:\\\\~]")
	dotAtTheEnd           = regexp.MustCompile(`\.$`)
	consortiumMemberChars = regexp.MustCompile(`^[a-z][a-z0-9]*$`)
)

func lengthRange(minLen, maxLen int) string {
	return fmt.Sprintf(msgLengthRange, minLen, maxLen)
}

// UnresolvedSymbols formats the message reported for forbidden characters
func UnresolvedSymbols(symbols string) string {
	return fmt.Sprintf(msgUnresolvedSymbols, symbols)
}

// ResourceGroupExists formats the availability failure for resource groups
func ResourceGroupExists(name string) string {
	return fmt.Sprintf(msgGroupExists, name)
}
