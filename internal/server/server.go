package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/lspcore/internal/anyval"
	"github.com/dshills/lspcore/internal/codec"
	"github.com/dshills/lspcore/internal/config"
	"github.com/dshills/lspcore/internal/dispatch"
	"github.com/dshills/lspcore/internal/pool"
	"github.com/dshills/lspcore/internal/protocol"
	"github.com/dshills/lspcore/internal/rpc"
)

// State is the server lifecycle state.
type State int32

const (
	// StateUninitialized is the state before the initialize request.
	StateUninitialized State = iota
	// StateInitializing is the state while initialize is being handled.
	StateInitializing
	// StateRunning is the normal serving state.
	StateRunning
	// StateShuttingDown is entered by the shutdown request.
	StateShuttingDown
	// StateExited is terminal.
	StateExited
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateShuttingDown:
		return "shutting down"
	case StateExited:
		return "exited"
	default:
		return "unknown"
	}
}

// Server is the runtime core of an LSP server.
type Server struct {
	cfg    config.Config
	logger *slog.Logger

	in  io.Reader
	out io.Writer

	inbound    *rpc.MessageQueue
	outbound   *rpc.MessageQueue
	requests   *pool.Pool
	workers    *pool.Pool
	dispatcher *dispatch.Dispatcher
	client     *Client

	state        atomic.Int32
	shutdownSeen atomic.Bool
	exitOnce     atomic.Bool
	exited       chan struct{}

	initParams *protocol.InitializeParams

	// onCancel is invoked for every $/cancelRequest; delivery is
	// advisory, the dispatcher never interrupts in-flight work.
	onCancel atomic.Pointer[func(protocol.CancelParams)]
}

// New assembles a server. Handlers are registered afterwards through
// Registry; Run starts the loops.
func New(opts ...Option) *Server {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	s := &Server{
		cfg:      o.cfg,
		logger:   o.logger,
		in:       o.in,
		out:      o.out,
		inbound:  rpc.NewMessageQueue(o.cfg.Queues.InboundCapacity),
		outbound: rpc.NewMessageQueue(o.cfg.Queues.OutboundCapacity),
		requests: pool.New("request", o.cfg.Pools.RequestThreads, o.logger),
		workers:  pool.New("worker", o.cfg.Pools.WorkerThreads, o.logger),
		exited:   make(chan struct{}),
	}

	var metrics *dispatch.Metrics
	if o.metrics != nil {
		metrics = dispatch.NewMetrics(o.metrics)
	}
	s.dispatcher = dispatch.New(dispatch.Options{
		Inbound:  s.inbound,
		Outbound: s.outbound,
		Requests: s.requests,
		Workers:  s.workers,
		Registry: dispatch.NewRegistry(),
		Logger:   o.logger,
		Metrics:  metrics,
	})
	s.client = newClient(s.outbound, o.logger)
	s.client.SetTrace(o.cfg.TraceValue())

	s.registerLifecycleHandlers()
	return s
}

// Registry exposes the handler registry for the language-analysis layer.
func (s *Server) Registry() *dispatch.Registry { return s.dispatcher.Registry() }

// Client returns the proxy for server-to-client traffic.
func (s *Server) Client() *Client { return s.client }

// Workers returns the background pool available to handlers. Work run
// there is outside the response ordering.
func (s *Server) Workers() *pool.Pool { return s.workers }

// State reports the lifecycle state.
func (s *Server) State() State { return State(s.state.Load()) }

// InitializeParams returns the params the client initialized with, or nil
// before initialize.
func (s *Server) InitializeParams() *protocol.InitializeParams { return s.initParams }

// OnCancel installs the callback invoked for $/cancelRequest.
func (s *Server) OnCancel(fn func(protocol.CancelParams)) {
	s.onCancel.Store(&fn)
}

// ExitCode implements the LSP exit protocol: 0 when exit followed
// shutdown, 1 otherwise.
func (s *Server) ExitCode() int {
	if s.shutdownSeen.Load() {
		return 0
	}
	return 1
}

// Run drives the transport until exit or a transport failure. Codec and
// handler errors never end the session; transport errors do.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	// Transport reader → inbound queue. Runs detached: a blocking Read
	// cannot be cancelled on a plain byte stream, so Run must not wait on
	// it. The stream is closed after the group finishes to unblock it.
	readErr := make(chan error, 1)
	go func() {
		reader := rpc.NewReader(s.in)
		for {
			payload, err := reader.Read()
			if err != nil {
				if errors.Is(err, io.EOF) {
					s.logger.Info("transport closed by client")
					s.beginExit()
					readErr <- nil
					return
				}
				s.beginExit()
				readErr <- err
				return
			}
			if err := s.inbound.Enqueue(payload); err != nil {
				readErr <- nil // session ending
				return
			}
		}
	}()

	// Listener → request pool.
	g.Go(func() error {
		return s.dispatcher.Listen(ctx)
	})

	// Outbound queue → transport writer.
	g.Go(func() error {
		writer := rpc.NewWriter(s.out)
		for {
			payload, err := s.outbound.Dequeue()
			if err != nil {
				return nil // queue closed after drain
			}
			if err := writer.Write(payload); err != nil {
				s.beginExit()
				return err
			}
		}
	})

	// Context cancellation ends the session like exit without shutdown.
	g.Go(func() error {
		select {
		case <-ctx.Done():
			s.beginExit()
		case <-s.exited:
		}
		return nil
	})

	err := g.Wait()
	if closer, ok := s.in.(io.Closer); ok {
		closer.Close() //nolint:errcheck
	}
	select {
	case rerr := <-readErr:
		if err == nil {
			err = rerr
		}
	default:
	}
	s.state.Store(int32(StateExited))
	return err
}

// beginExit tears the session down once: stop intake, let in-flight work
// drain, then release the writer.
func (s *Server) beginExit() {
	if s.exitOnce.Swap(true) {
		return
	}
	go func() {
		s.inbound.Close()
		s.dispatcher.Terminate()
		s.requests.Shutdown()
		s.workers.Shutdown()
		s.outbound.Close()
		close(s.exited)
	}()
}

func (s *Server) registerLifecycleHandlers() {
	reg := s.dispatcher.Registry()

	reg.ReplaceRequest(protocol.MethodInitialize, s.handleInitialize) //nolint:errcheck
	reg.ReplaceRequest(protocol.MethodShutdown, s.handleShutdown)     //nolint:errcheck
	reg.ReplaceNotification(protocol.MethodInitialized, func(ctx context.Context, params anyval.Value) error {
		s.logger.Debug("client initialized")
		return nil
	}) //nolint:errcheck
	reg.ReplaceNotification(protocol.MethodExit, func(ctx context.Context, params anyval.Value) error {
		s.logger.Info("exit received", "afterShutdown", s.shutdownSeen.Load())
		s.beginExit()
		return nil
	}) //nolint:errcheck
	reg.ReplaceNotification(protocol.MethodSetTrace, dispatch.Notification(
		func(ctx context.Context, params *protocol.SetTraceParams) {
			s.logger.Debug("trace level changed", "value", string(params.Value))
			s.client.SetTrace(params.Value)
		})) //nolint:errcheck
	reg.ReplaceNotification(protocol.MethodCancelRequest, dispatch.Notification(
		func(ctx context.Context, params *protocol.CancelParams) {
			// Forwarded only; in-flight work is never interrupted here.
			if fn := s.onCancel.Load(); fn != nil {
				(*fn)(*params)
			} else {
				s.logger.Debug("cancel requested", "id", cancelIDString(params.ID))
			}
		})) //nolint:errcheck
}

func (s *Server) handleInitialize(ctx context.Context, params anyval.Value) (anyval.Value, *protocol.ResponseError) {
	if !s.state.CompareAndSwap(int32(StateUninitialized), int32(StateInitializing)) {
		return anyval.Value{}, protocol.NewInvalidRequest("initialize may only be sent once")
	}

	decoded, err := codec.As[protocol.InitializeParams](params)
	if err != nil {
		s.state.Store(int32(StateUninitialized))
		return anyval.Value{}, codec.AsResponseError(err)
	}
	s.initParams = &decoded
	if decoded.Trace != nil {
		s.client.SetTrace(*decoded.Trace)
	}

	result := protocol.InitializeResult{
		Capabilities: s.buildCapabilities(),
		ServerInfo: &protocol.ServerInfo{
			Name:    s.cfg.Server.Name,
			Version: &s.cfg.Server.Version,
		},
	}
	encoded, encErr := codec.Encode(result)
	if encErr != nil {
		s.state.Store(int32(StateUninitialized))
		return anyval.Value{}, protocol.NewInternalError(encErr.Error())
	}

	s.state.Store(int32(StateRunning))
	s.dispatcher.SetReady()
	s.logger.Info("initialized",
		"client", clientName(decoded.ClientInfo),
		"rootUri", rootURI(decoded.RootURI),
	)
	return encoded, nil
}

func (s *Server) handleShutdown(ctx context.Context, params anyval.Value) (anyval.Value, *protocol.ResponseError) {
	s.state.Store(int32(StateShuttingDown))
	s.shutdownSeen.Store(true)
	s.logger.Info("shutdown requested")
	return anyval.Null(), nil
}

func clientName(info *protocol.ClientInfo) string {
	if info == nil {
		return "unknown"
	}
	return info.Name
}

func rootURI(uri *protocol.DocumentURI) string {
	if uri == nil {
		return ""
	}
	return string(*uri)
}

func cancelIDString(id protocol.CancelID) string {
	if id.Str != nil {
		return *id.Str
	}
	if id.Int != nil {
		return strconv.Itoa(int(*id.Int))
	}
	return "<none>"
}
