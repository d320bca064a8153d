package comm

import (
	"bytes"
	"context"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/roboclaw/pkg/roboclaw"
)

// DefaultTimeout is the reply timeout used when Dispatcher.Timeout is zero.
const DefaultTimeout = 100 * time.Millisecond

// Dispatcher serializes commands over a single link.
type Dispatcher struct {
	// Timeout limits the wait for a complete reply, measured from the end
	// of the write.
	Timeout time.Duration
	// ReplyTrailer is the number of bytes some firmware appends to query
	// replies (2 for a CRC). They are read and discarded.
	ReplyTrailer int
	// Metrics is optional and must be set before use.
	Metrics *Metrics

	link    io.ReadWriter
	running atomic.Bool

	lock   sync.Mutex
	head   *pending
	tail   *pending
	closed bool
	wakeCh chan struct{}

	byteCh chan byte
	errCh  chan error
}

type pending struct {
	req     roboclaw.Request
	ctx     context.Context
	state   stateBox
	resolve func(resp []byte, err error)
	stop    func() bool
	metrics *Metrics
	next    *pending
}

// NewDispatcher creates a Dispatcher on link. Commands are only written
// while Run is active.
func NewDispatcher(link io.ReadWriter) *Dispatcher {
	return &Dispatcher{
		link:   link,
		wakeCh: make(chan struct{}, 1),
		byteCh: make(chan byte, 64),
		errCh:  make(chan error, 1),
	}
}

func (d *Dispatcher) timeout() time.Duration {
	if d.Timeout > 0 {
		return d.Timeout
	}
	return DefaultTimeout
}

// submit enqueues req. resolve is called exactly once, from the worker or
// from the goroutine canceling the command.
func (d *Dispatcher) submit(ctx context.Context, req roboclaw.Request, resolve func([]byte, error)) *pending {
	p := &pending{req: req, ctx: ctx, resolve: resolve, metrics: d.Metrics}
	// Until p is linked, cancel is a no-op and the worker checks ctx
	// before writing.
	p.stop = context.AfterFunc(ctx, func() { d.cancel(p) })
	d.lock.Lock()
	if d.closed {
		d.lock.Unlock()
		p.finish(StateCanceled, nil, ErrClosed)
		return p
	}
	if d.head == nil {
		d.head = p
	} else {
		d.tail.next = p
	}
	d.tail = p
	d.Metrics.queue(1)
	d.lock.Unlock()

	select {
	case d.wakeCh <- struct{}{}:
	default:
	}
	return p
}

// cancel removes p if it is still queued.
func (d *Dispatcher) cancel(p *pending) bool {
	d.lock.Lock()
	if p.state.load() != StateQueued || !d.unlink(p) {
		d.lock.Unlock()
		return false
	}
	p.state.store(StateCanceled)
	d.Metrics.queue(-1)
	d.lock.Unlock()
	p.finish(StateCanceled, nil, ErrCanceled)
	return true
}

// unlink must be called with lock held.
func (d *Dispatcher) unlink(p *pending) bool {
	var prev *pending
	for curr := d.head; curr != nil; prev, curr = curr, curr.next {
		if curr != p {
			continue
		}
		if prev == nil {
			d.head = curr.next
		} else {
			prev.next = curr.next
		}
		if d.tail == curr {
			d.tail = prev
		}
		curr.next = nil
		return true
	}
	return false
}

// pop takes the head of the queue and marks it Writing.
func (d *Dispatcher) pop() *pending {
	d.lock.Lock()
	defer d.lock.Unlock()
	p := d.head
	if p == nil {
		return nil
	}
	if d.head = p.next; d.head == nil {
		d.tail = nil
	}
	p.next = nil
	p.state.store(StateWriting)
	d.Metrics.queue(-1)
	return p
}

func (p *pending) finish(state State, resp []byte, err error) {
	p.state.store(state)
	p.metrics.resolved(p.req.Opcode(), state)
	if p.stop != nil {
		p.stop()
	}
	p.resolve(resp, err)
}

// Run is the worker. It returns when ctx is done, or with a *LinkError
// when reading from the link fails. Commands still queued are resolved
// with ErrClosed and later submissions fail the same way.
// Only one Run may be active, another call returns ErrRunning. Once Run
// has returned, the Dispatcher is closed and Run returns ErrClosed.
func (d *Dispatcher) Run(ctx context.Context) error {
	if !d.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer d.running.Store(false)
	d.lock.Lock()
	closed := d.closed
	d.lock.Unlock()
	if closed {
		return ErrClosed
	}

	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go d.readLoop(subCtx)

	var err error
	for err == nil {
		var p *pending
		if p, err = d.next(ctx); p != nil {
			err = d.execute(ctx, p)
		}
	}
	d.close()
	return err
}

func (d *Dispatcher) next(ctx context.Context) (*pending, error) {
	for {
		if p := d.pop(); p != nil {
			if p.ctx.Err() != nil {
				p.finish(StateCanceled, nil, ErrCanceled)
				continue
			}
			return p, nil
		}
		select {
		case <-d.wakeCh:
		case err := <-d.errCh:
			glog.Errorf("roboclaw link read error: %v", err)
			return nil, &LinkError{Op: "read", Err: err}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// execute runs one command on the link. Only failures that leave the link
// unusable are returned.
func (d *Dispatcher) execute(ctx context.Context, p *pending) error {
	d.discard()
	start := time.Now()
	data := p.req.Encode()
	glog.V(4).Infof("roboclaw %v TX % x", p.req.Opcode(), data)
	n, err := d.link.Write(data)
	if err == nil && n != len(data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		glog.Warningf("roboclaw %v write error: %v", p.req.Opcode(), err)
		p.finish(StateLinkError, nil, &LinkError{Op: "write", Err: err})
		return nil
	}

	p.state.store(StateAwaitingResponse)
	resp, err := d.readReply(ctx, p.req.Reply())
	glog.V(4).Infof("roboclaw %v RX % x", p.req.Opcode(), resp)
	switch err.(type) {
	case nil:
		d.Metrics.replied(start)
		p.finish(StateDecoded, resp, nil)
		return nil
	case *LinkError:
		glog.Errorf("roboclaw link read error: %v", err)
		p.finish(StateLinkError, resp, err)
		return err
	}
	if err == ErrTimeout {
		glog.Warningf("roboclaw %v reply timeout after %d bytes", p.req.Opcode(), len(resp))
		p.finish(StateTimeout, resp, ErrTimeout)
		return nil
	}
	p.finish(StateCanceled, resp, ErrClosed)
	return err
}

func (d *Dispatcher) readReply(ctx context.Context, r roboclaw.Reply) ([]byte, error) {
	timer := time.NewTimer(d.timeout())
	defer timer.Stop()
	var buf []byte
	for !replyComplete(r, d.ReplyTrailer, buf) {
		select {
		case b := <-d.byteCh:
			buf = append(buf, b)
		case err := <-d.errCh:
			return buf, &LinkError{Op: "read", Err: err}
		case <-timer.C:
			return buf, ErrTimeout
		case <-ctx.Done():
			return buf, ctx.Err()
		}
	}
	return buf, nil
}

func replyComplete(r roboclaw.Reply, trailer int, buf []byte) bool {
	switch r.Kind {
	case roboclaw.ReplyAck:
		return len(buf) >= 1
	case roboclaw.ReplyDelimited:
		if n := bytes.Index(buf, r.Delimiter); n >= 0 {
			return len(buf) >= n+len(r.Delimiter)+trailer
		}
		return len(buf) >= r.Length
	default:
		return len(buf) >= r.Length+trailer
	}
}

// discard drops bytes left over from an earlier timed out reply.
func (d *Dispatcher) discard() {
	for {
		select {
		case b := <-d.byteCh:
			glog.V(4).Infof("roboclaw discard stale byte %02x", b)
		default:
			return
		}
	}
}

func (d *Dispatcher) readLoop(ctx context.Context) {
	buf := make([]byte, 64)
	for {
		n, err := d.link.Read(buf)
		for i := 0; i < n; i++ {
			select {
			case d.byteCh <- buf[i]:
			case <-ctx.Done():
				return
			}
		}
		if err != nil && !os.IsTimeout(err) {
			select {
			case d.errCh <- err:
			case <-ctx.Done():
			}
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

func (d *Dispatcher) close() {
	d.lock.Lock()
	d.closed = true
	head := d.head
	d.head, d.tail = nil, nil
	var n int
	for p := head; p != nil; p = p.next {
		p.state.store(StateCanceled)
		n++
	}
	d.lock.Unlock()
	d.Metrics.queue(-n)
	for p := head; p != nil; {
		next := p.next
		p.next = nil
		p.finish(StateCanceled, nil, ErrClosed)
		p = next
	}
}
