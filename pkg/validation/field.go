// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package validation

import (
	"context"
	"errors"
)

// Field validates one kind of name while it is typed. Check is meant as a
// prompt validator run on every keystroke: it only applies the format rules
// and schedules the remote check. Validate waits for the remote answer about
// the submitted value, which joins the window the keystrokes opened.
type Field struct {
	ctx       context.Context
	debouncer *Debouncer
	key       string
	format    func(string) string
	available AvailabilityFunc
	message   func(string) string
}

func (f *Field) Check(name string) error {
	if msg := f.format(name); msg != "" {
		return errors.New(msg)
	}
	f.debouncer.Schedule(f.ctx, f.key, name, f.work(name))
	return nil
}

// Validate returns "" when name is well formed and free, otherwise the
// message for the user. The error is a failed remote lookup.
func (f *Field) Validate(name string) (string, error) {
	if msg := f.format(name); msg != "" {
		return msg, nil
	}
	return f.debouncer.Debounced(f.ctx, f.key, name, f.work(name))
}

func (f *Field) work(name string) CheckFunc {
	return func(ctx context.Context) (string, error) {
		return New(name).IsAvailable(ctx, f.available, f.message).Result()
	}
}
