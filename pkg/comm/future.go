package comm

import (
	"context"
	"sync/atomic"

	"github.com/robotalks/roboclaw/pkg/roboclaw"
)

// State is the progress of a submitted command.
type State int32

// States.
const (
	StateQueued State = iota
	StateWriting
	StateAwaitingResponse
	StateDecoded
	StateTimeout
	StateLinkError
	StateCanceled
)

var stateNames = [...]string{
	"queued",
	"writing",
	"awaiting-response",
	"decoded",
	"timeout",
	"link-error",
	"canceled",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// IsTerminal reports whether the command has been resolved.
func (s State) IsTerminal() bool {
	return s >= StateDecoded
}

type stateBox struct {
	v atomic.Int32
}

func (b *stateBox) load() State   { return State(b.v.Load()) }
func (b *stateBox) store(s State) { b.v.Store(int32(s)) }

// Result is the outcome of a command.
type Result[T any] struct {
	Value T
	Err   error
}

// Future is a pending command result.
type Future[T any] struct {
	d        *Dispatcher
	p        *pending
	resultCh chan Result[T]
}

// ResultChan returns the chan delivering exactly one Result.
func (f *Future[T]) ResultChan() <-chan Result[T] {
	return f.resultCh
}

// State returns the current state of the command.
func (f *Future[T]) State() State {
	return f.p.state.load()
}

// Cancel removes the command if it hasn't been written yet, resolving it
// with ErrCanceled. It returns false once the command left the queue.
func (f *Future[T]) Cancel() bool {
	return f.d.cancel(f.p)
}

// Wait blocks for the result. When ctx is done first, the command is
// canceled if still queued and ctx.Err() returned otherwise.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case r := <-f.resultCh:
		return r.Value, r.Err
	case <-ctx.Done():
		if f.Cancel() {
			r := <-f.resultCh
			return r.Value, r.Err
		}
		var zero T
		return zero, ctx.Err()
	}
}

// Do submits cmd and returns its Future. Canceling ctx cancels the command
// while it is still queued.
func Do[T any](ctx context.Context, d *Dispatcher, cmd roboclaw.Command[T]) *Future[T] {
	f := &Future[T]{d: d, resultCh: make(chan Result[T], 1)}
	f.p = d.submit(ctx, cmd, func(resp []byte, err error) {
		var r Result[T]
		if r.Err = err; err == nil {
			r.Value, r.Err = cmd.Decode(resp)
		}
		f.resultCh <- r
		close(f.resultCh)
	})
	return f
}

// Exec runs cmd and waits for its result.
func Exec[T any](ctx context.Context, d *Dispatcher, cmd roboclaw.Command[T]) (T, error) {
	return Do(ctx, d, cmd).Wait(ctx)
}

// Submit queues req and returns the undecoded reply bytes.
func (d *Dispatcher) Submit(ctx context.Context, req roboclaw.Request) *Future[[]byte] {
	f := &Future[[]byte]{d: d, resultCh: make(chan Result[[]byte], 1)}
	f.p = d.submit(ctx, req, func(resp []byte, err error) {
		f.resultCh <- Result[[]byte]{Value: resp, Err: err}
		close(f.resultCh)
	})
	return f
}
