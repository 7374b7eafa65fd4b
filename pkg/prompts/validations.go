// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"errors"
	"net/url"
	"os"
	"strings"

	"github.com/luxfi/deployer/pkg/validation"
)

func validateNewFilepath(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return errors.New("path cannot be empty")
	}
	if _, err := os.Stat(input); err != nil && os.IsNotExist(err) {
		return nil
	}
	return errors.New("file already exists")
}

func validateConfirmation(input string) error {
	if input == "" {
		return nil
	}
	if msg := validation.New(input).IsConfirmationValue().Message(); msg != "" {
		return errors.New(msg)
	}
	return nil
}

// ValidateURLFormat accepts absolute http(s) URLs
func ValidateURLFormat(input string) error {
	if input == "" {
		return errors.New("URL cannot be empty")
	}
	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.New("URL must have an http:// or https:// scheme")
	}
	if parsedURL.Host == "" {
		return errors.New("URL must have a host")
	}
	return nil
}
