// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package validation checks user supplied names and passwords before they
// are sent to the remote resource API.
package validation

import (
	"context"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// AvailabilityFunc reports whether name is free on the remote side. The
// returned reason, when set, is used as the failure message.
type AvailabilityFunc func(ctx context.Context, name string) (available bool, reason string, err error)

// Validator runs an ordered chain of checks over one value. Every check
// runs, but only the first recorded failure is reported.
type Validator struct {
	value  string
	errors []string
	err    error
}

func New(value string) *Validator {
	return &Validator{value: value}
}

func (v *Validator) fail(msg string) *Validator {
	v.errors = append(v.errors, msg)
	return v
}

func (v *Validator) check(ok bool, msg string) *Validator {
	if !ok {
		return v.fail(msg)
	}
	return v
}

func (v *Validator) IsNotEmpty() *Validator {
	return v.check(v.value != "", MsgEmpty)
}

func (v *Validator) HasLowerCase() *Validator {
	return v.check(strings.IndexFunc(v.value, unicode.IsLower) >= 0, MsgNoLowerCase)
}

func (v *Validator) HasUpperCase() *Validator {
	return v.check(strings.IndexFunc(v.value, unicode.IsUpper) >= 0, MsgNoUpperCase)
}

func (v *Validator) HasDigit() *Validator {
	return v.check(strings.IndexFunc(v.value, unicode.IsDigit) >= 0, MsgNoDigit)
}

// HasSpecialChar requires at least one match of re
func (v *Validator) HasSpecialChar(re *regexp.Regexp) *Validator {
	return v.check(re.MatchString(v.value), MsgNoSpecialChar)
}

// HasNoForbiddenChar fails with msg when re matches anywhere in the value
func (v *Validator) HasNoForbiddenChar(re *regexp.Regexp, msg string) *Validator {
	return v.check(!re.MatchString(v.value), msg)
}

// InLengthRange counts characters, not bytes.
func (v *Validator) InLengthRange(minLen, maxLen int) *Validator {
	n := utf8.RuneCountInString(v.value)
	return v.check(n >= minLen && n <= maxLen, lengthRange(minLen, maxLen))
}

func (v *Validator) IsConfirmationValue() *Validator {
	answer := strings.ToLower(v.value)
	return v.check(answer == "yes" || answer == "no", MsgInvalidConfirm)
}

// IsAvailable asks the remote side whether the value is free. format, if
// not nil, builds the failure message from the value. A lookup error is
// kept apart from validation failures and returned by Result.
func (v *Validator) IsAvailable(ctx context.Context, available AvailabilityFunc, format func(string) string) *Validator {
	ok, reason, err := available(ctx, v.value)
	if err != nil {
		v.err = err
		return v
	}
	if ok {
		return v
	}
	switch {
	case format != nil:
		return v.fail(format(v.value))
	case reason != "":
		return v.fail(reason)
	default:
		return v.fail(MsgNameAlreadyInUse)
	}
}

// Message returns the first failure, or "" if the value passed every check
func (v *Validator) Message() string {
	if len(v.errors) == 0 {
		return ""
	}
	return v.errors[0]
}

// Result returns the first failure and any remote lookup error
func (v *Validator) Result() (string, error) {
	return v.Message(), v.err
}
