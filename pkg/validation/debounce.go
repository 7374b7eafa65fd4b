// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package validation

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// CheckFunc is a remote check producing a validation message.
type CheckFunc func(ctx context.Context) (string, error)

type debounceResult struct {
	msg string
	err error
}

type pendingCheck struct {
	timer   *time.Timer
	gen     uint64
	ctx     context.Context
	input   string
	work    CheckFunc
	waiters []chan debounceResult
}

// Debouncer collapses rapid checks for the same key. Each call restarts the
// key's timer and replaces the pending work; when the timer fires only the
// latest work runs and every caller that joined the window gets its result.
// Identical fires already in flight are shared through singleflight.
type Debouncer struct {
	interval time.Duration
	group    singleflight.Group

	mu      sync.Mutex
	pending map[string]*pendingCheck
}

func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{
		interval: interval,
		pending:  make(map[string]*pendingCheck),
	}
}

// Debounced schedules work for key and blocks until the window for key
// elapses or ctx is done. input identifies the value being checked.
func (d *Debouncer) Debounced(ctx context.Context, key, input string, work CheckFunc) (string, error) {
	ch := make(chan debounceResult, 1)
	d.schedule(ctx, key, input, work, ch)

	select {
	case r := <-ch:
		return r.msg, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Schedule restarts the window for key with work and returns at once. A
// later Debounced call for the same key inside the window shares one run.
func (d *Debouncer) Schedule(ctx context.Context, key, input string, work CheckFunc) {
	d.schedule(ctx, key, input, work, nil)
}

func (d *Debouncer) schedule(ctx context.Context, key, input string, work CheckFunc, ch chan debounceResult) {
	d.mu.Lock()
	defer d.mu.Unlock()
	p, ok := d.pending[key]
	if ok {
		p.timer.Stop()
	} else {
		p = &pendingCheck{}
		d.pending[key] = p
	}
	p.ctx = ctx
	p.input = input
	p.work = work
	if ch != nil {
		p.waiters = append(p.waiters, ch)
	}
	p.gen++
	gen := p.gen
	p.timer = time.AfterFunc(d.interval, func() { d.fire(key, p, gen) })
}

func (d *Debouncer) fire(key string, p *pendingCheck, gen uint64) {
	d.mu.Lock()
	if d.pending[key] != p || p.gen != gen {
		// a later call restarted the window after this timer had fired
		d.mu.Unlock()
		return
	}
	delete(d.pending, key)
	ctx, input, work, waiters := p.ctx, p.input, p.work, p.waiters
	d.mu.Unlock()

	v, err, _ := d.group.Do(key+"\x00"+input, func() (any, error) {
		return work(ctx)
	})
	msg, _ := v.(string)
	for _, ch := range waiters {
		ch <- debounceResult{msg: msg, err: err}
	}
}
