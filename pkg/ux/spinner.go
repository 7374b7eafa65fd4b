// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"os"
	"sync"
	"time"

	"github.com/luxfi/deployer/pkg/constants"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// Spinner is an indeterminate progress indicator for steps of unknown length
type Spinner struct {
	bar  *progressbar.ProgressBar
	stop chan struct{}
	wg   sync.WaitGroup
}

// StartSpinner shows a spinner with the given description until Stop is called.
// Nothing is drawn when stdout is not a terminal.
func StartSpinner(description string) *Spinner {
	s := &Spinner{stop: make(chan struct{})}
	if Logger == nil || !term.IsTerminal(int(os.Stdout.Fd())) {
		return s
	}
	s.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(Logger.Writer()),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(constants.SpinnerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				_ = s.bar.Add(1)
			case <-s.stop:
				return
			}
		}
	}()
	return s
}

// Stop removes the spinner
func (s *Spinner) Stop() {
	if s.bar == nil {
		return
	}
	close(s.stop)
	s.wg.Wait()
	_ = s.bar.Finish()
}
