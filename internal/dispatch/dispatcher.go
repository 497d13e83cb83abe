package dispatch

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tidwall/gjson"

	"github.com/dshills/lspcore/internal/anyval"
	"github.com/dshills/lspcore/internal/pool"
	"github.com/dshills/lspcore/internal/protocol"
	"github.com/dshills/lspcore/internal/rpc"
)

// Dispatcher owns the inbound and outbound queues, a request pool for
// handling LSP messages end to end, and a worker pool the handler layer
// may use for background work. See the package comment for the ordering
// contract.
type Dispatcher struct {
	inbound  *rpc.MessageQueue
	outbound *rpc.MessageQueue
	requests *pool.Pool
	workers  *pool.Pool
	registry *Registry
	logger   *slog.Logger
	metrics  *Metrics

	// serialSendID is the next ordinal to assign; single producer (the
	// listener). pendingSendID is the lowest ordinal not yet released.
	serialSendID  atomic.Uint64
	pendingSendID atomic.Uint64

	// sentMu protects only the wait/notify handshake on sent.
	sentMu sync.Mutex
	sent   *sync.Cond

	terminated atomic.Bool

	// ready gates non-lifecycle methods until initialize completes.
	ready atomic.Bool
}

// Options configure a Dispatcher.
type Options struct {
	Inbound  *rpc.MessageQueue
	Outbound *rpc.MessageQueue
	Requests *pool.Pool
	Workers  *pool.Pool
	Registry *Registry
	Logger   *slog.Logger
	Metrics  *Metrics // nil disables collection
}

// New assembles a dispatcher from its collaborators.
func New(opts Options) *Dispatcher {
	d := &Dispatcher{
		inbound:  opts.Inbound,
		outbound: opts.Outbound,
		requests: opts.Requests,
		workers:  opts.Workers,
		registry: opts.Registry,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
	}
	d.sent = sync.NewCond(&d.sentMu)
	return d
}

// Registry returns the handler registry.
func (d *Dispatcher) Registry() *Registry { return d.registry }

// Workers returns the background worker pool available to handlers.
// Tasks submitted there do not participate in send ordering; use Send
// explicitly to emit from them.
func (d *Dispatcher) Workers() *pool.Pool { return d.workers }

// SetReady opens the gate held before initialize completes.
func (d *Dispatcher) SetReady() { d.ready.Store(true) }

// Ready reports whether initialize has completed.
func (d *Dispatcher) Ready() bool { return d.ready.Load() }

// Terminated reports whether Terminate has been called.
func (d *Dispatcher) Terminated() bool { return d.terminated.Load() }

// Listen pulls inbound payloads, assigns ordinals, and fans out to the
// request pool. It never parses; it only tags and dispatches. Listen
// returns when the inbound queue closes or the dispatcher terminates.
func (d *Dispatcher) Listen(ctx context.Context) error {
	for !d.terminated.Load() {
		raw, err := d.inbound.Dequeue()
		if err != nil {
			if errors.Is(err, rpc.ErrQueueClosed) {
				return nil
			}
			return err
		}
		if d.terminated.Load() {
			return nil
		}
		sendID := d.serialSendID.Add(1) - 1

		// A cheap peek for the task tag; full parsing happens on the
		// request pool.
		method := gjson.GetBytes(raw, "method").String()
		tag := method
		if tag == "" {
			tag = "(unclassified)"
		}

		if err := d.requests.Submit(tag, func(worker string, index int) {
			d.handle(ctx, raw, sendID, worker, index)
		}); err != nil {
			// Pool shut down under us; release the slot so any ordinals
			// already in flight behind this one are not stranded.
			d.release(sendID)
			return nil
		}
	}
	return nil
}

// NextSendID exposes ordinal assignment for tests and embedders driving
// handle directly. Production traffic flows through Listen.
func (d *Dispatcher) NextSendID() uint64 {
	return d.serialSendID.Add(1) - 1
}

// Handle parses and routes one raw payload under the given ordinal.
func (d *Dispatcher) Handle(ctx context.Context, raw []byte, sendID uint64, worker string, index int) {
	d.handle(ctx, raw, sendID, worker, index)
}

func (d *Dispatcher) handle(ctx context.Context, raw []byte, sendID uint64, worker string, index int) {
	released := false
	start := time.Now()
	method := "(parse-error)"
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("unhandled panic in message handler",
				"worker", worker,
				"index", index,
				"panic", r,
				"message", string(raw),
			)
			// The slot must be released on every exit path or every
			// later ordinal deadlocks.
			if !released {
				d.release(sendID)
			}
		}
		d.metrics.recordDone(method, time.Since(start).Seconds())
	}()

	tree, err := anyval.DecodeJSON(raw)
	if err != nil {
		// The id is unrecoverable; answer with a null-id parse error.
		d.emitError(rpc.NullResponseID, protocol.NewParseError(err.Error()), sendID)
		released = true
		return
	}

	msg, err := rpc.Classify(tree)
	if err != nil {
		respID := recoverID(tree)
		d.emitError(respID, protocol.NewInvalidRequest(err.Error()), sendID)
		released = true
		return
	}

	switch m := msg.(type) {
	case *rpc.Request:
		method = m.Name
		d.metrics.recordInbound("request", m.Name)
		d.handleRequest(ctx, m, sendID)
	case *rpc.Notification:
		method = m.Name
		d.metrics.recordInbound("notification", m.Name)
		d.handleNotification(ctx, m)
		d.release(sendID)
	case *rpc.Response:
		// Client answer to a server-initiated request: logged, not
		// correlated. The ordinal still releases.
		method = "(response)"
		d.metrics.recordInbound("response", "")
		d.logger.Debug("client response received", "id", m.ID.String(), "hasError", m.Err != nil)
		d.release(sendID)
	}
	released = true
}

func (d *Dispatcher) handleRequest(ctx context.Context, req *rpc.Request, sendID uint64) {
	if !d.ready.Load() && req.Name != protocol.MethodInitialize {
		d.emitError(rpc.EchoID(req.ID), protocol.NewServerNotInitialized(req.Name), sendID)
		return
	}

	isRequest, err := protocol.CheckIncoming(req.Name)
	if err != nil || !isRequest {
		d.emitError(rpc.EchoID(req.ID), protocol.NewMethodNotFound(req.Name), sendID)
		return
	}

	handler, ok := d.registry.Request(req.Name)
	if !ok {
		d.emitError(rpc.EchoID(req.ID), protocol.NewMethodNotFound(req.Name), sendID)
		return
	}

	result, respErr := handler(ctx, req.Params)
	if respErr != nil {
		d.emitError(rpc.EchoID(req.ID), respErr, sendID)
		return
	}
	payload, err := rpc.EncodeResponse(rpc.EchoID(req.ID), result)
	if err != nil {
		d.emitError(rpc.EchoID(req.ID), protocol.NewInternalError(err.Error()), sendID)
		return
	}
	d.metrics.recordResponse("ok")
	d.Send(payload, sendID)
}

func (d *Dispatcher) handleNotification(ctx context.Context, note *rpc.Notification) {
	if !d.ready.Load() && note.Name != protocol.MethodExit {
		d.logger.Warn("notification dropped before initialize", "method", note.Name)
		return
	}

	if isRequest, err := protocol.CheckIncoming(note.Name); err != nil || isRequest {
		d.logger.Warn("unknown notification method", "method", note.Name)
		return
	}

	handler, ok := d.registry.Notification(note.Name)
	if !ok {
		d.logger.Debug("no handler for notification", "method", note.Name)
		return
	}
	if err := handler(ctx, note.Params); err != nil {
		d.logger.Error("notification handler failed", "method", note.Name, "error", err)
	}
}

// Send blocks until every ordinal below sendID has been released, then
// enqueues the payload outbound and releases sendID. Termination
// short-circuits the wait; a payload arriving after termination is
// dropped without response.
func (d *Dispatcher) Send(payload []byte, sendID uint64) {
	if !d.waitTurn(sendID) {
		return
	}
	if err := d.outbound.Enqueue(payload); err != nil {
		d.logger.Warn("outbound queue closed, dropping payload", "sendId", sendID)
	}
	d.advance()
}

// emitError encodes and sends an error response at the given ordinal.
func (d *Dispatcher) emitError(id rpc.ResponseID, respErr *protocol.ResponseError, sendID uint64) {
	d.metrics.recordResponse("error")
	d.metrics.recordError(strconv.Itoa(respErr.Code))
	payload, err := rpc.EncodeErrorResponse(id, respErr)
	if err != nil {
		d.logger.Error("failed to encode error response", "error", err)
		d.release(sendID)
		return
	}
	d.Send(payload, sendID)
}

// release advances past an ordinal that emits nothing, keeping the
// ordinal sequence dense so later sends unblock.
func (d *Dispatcher) release(sendID uint64) {
	if !d.waitTurn(sendID) {
		return
	}
	d.advance()
}

// waitTurn blocks until pendingSendID reaches sendID or termination. It
// reports whether the caller may proceed to emit.
func (d *Dispatcher) waitTurn(sendID uint64) bool {
	d.sentMu.Lock()
	defer d.sentMu.Unlock()
	for d.pendingSendID.Load() < sendID && !d.terminated.Load() {
		d.sent.Wait()
	}
	return !d.terminated.Load()
}

func (d *Dispatcher) advance() {
	d.sentMu.Lock()
	next := d.pendingSendID.Add(1)
	d.metrics.setPending(next)
	d.sent.Broadcast()
	d.sentMu.Unlock()
}

// recoverID pulls a usable response id out of a message that failed
// classification, falling back to null.
func recoverID(v anyval.Value) rpc.ResponseID {
	idVal, ok := v.Get("id")
	if !ok || idVal.IsNull() {
		return rpc.NullResponseID
	}
	if s, ok := idVal.AsString(); ok {
		return rpc.EchoID(rpc.NewStringID(s))
	}
	if i, ok := idVal.AsInt(); ok {
		return rpc.EchoID(rpc.NewIntID(int64(i)))
	}
	if u, ok := idVal.AsUint(); ok {
		return rpc.EchoID(rpc.NewIntID(int64(u)))
	}
	return rpc.NullResponseID
}

// Terminate flips the flag and wakes all waiters. In-flight tasks abort
// at their next checkpoint without producing output; nothing is drained.
func (d *Dispatcher) Terminate() {
	if d.terminated.Swap(true) {
		return
	}
	d.sentMu.Lock()
	d.sent.Broadcast()
	d.sentMu.Unlock()
}
