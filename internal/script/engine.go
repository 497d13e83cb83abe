package script

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/lspcore/internal/anyval"
	"github.com/dshills/lspcore/internal/dispatch"
	"github.com/dshills/lspcore/internal/protocol"
)

// Engine hosts one Lua state and wires scripted handlers into the
// dispatcher registry.
type Engine struct {
	mu       sync.Mutex
	state    *lua.LState
	registry *dispatch.Registry
	logger   *slog.Logger
	closed   bool
}

// NewEngine builds an engine bound to the given registry. The Lua stdlib
// io, os, and debug modules are withheld; scripts get plain computation
// plus the lspcore API.
func NewEngine(registry *dispatch.Registry, logger *slog.Logger) *Engine {
	state := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, open := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		state.Push(state.NewFunction(open.fn))
		state.Push(lua.LString(open.name))
		state.Call(1, 0)
	}

	e := &Engine{
		state:    state,
		registry: registry,
		logger:   logger,
	}
	e.installAPI()
	return e
}

// installAPI exposes the lspcore table to scripts.
func (e *Engine) installAPI() {
	api := e.state.NewTable()
	e.state.SetGlobal("lspcore", api)
	e.state.SetField(api, "on_request", e.state.NewFunction(e.luaOnRequest))
	e.state.SetField(api, "on_notification", e.state.NewFunction(e.luaOnNotification))
	e.state.SetField(api, "log", e.state.NewFunction(e.luaLog))
}

// LoadFile executes one script file; registrations it performs take
// effect immediately.
func (e *Engine) LoadFile(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrEngineClosed
	}
	if err := e.state.DoFile(path); err != nil {
		return fmt.Errorf("script: load %s: %w", path, err)
	}
	return nil
}

// LoadString executes script source, mainly for tests.
func (e *Engine) LoadString(src string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrEngineClosed
	}
	if err := e.state.DoString(src); err != nil {
		return fmt.Errorf("script: load: %w", err)
	}
	return nil
}

// Close releases the Lua state. Registered handlers become inert errors.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.state.Close()
}

func (e *Engine) luaOnRequest(L *lua.LState) int {
	method := L.CheckString(1)
	fn := L.CheckFunction(2)

	err := e.registry.RegisterRequest(method, e.requestHandler(method, fn))
	if err != nil {
		L.RaiseError("on_request(%s): %s", method, err)
	}
	return 0
}

func (e *Engine) luaOnNotification(L *lua.LState) int {
	method := L.CheckString(1)
	fn := L.CheckFunction(2)

	err := e.registry.RegisterNotification(method, e.notificationHandler(method, fn))
	if err != nil {
		L.RaiseError("on_notification(%s): %s", method, err)
	}
	return 0
}

func (e *Engine) luaLog(L *lua.LState) int {
	level := L.CheckString(1)
	message := L.CheckString(2)
	switch level {
	case "debug":
		e.logger.Debug(message, "source", "script")
	case "warn":
		e.logger.Warn(message, "source", "script")
	case "error":
		e.logger.Error(message, "source", "script")
	default:
		e.logger.Info(message, "source", "script")
	}
	return 0
}

func (e *Engine) requestHandler(method string, fn *lua.LFunction) dispatch.RequestHandler {
	return func(ctx context.Context, params anyval.Value) (anyval.Value, *protocol.ResponseError) {
		result, err := e.call(fn, params)
		if err != nil {
			e.logger.Error("scripted request handler failed", "method", method, "error", err)
			return anyval.Value{}, protocol.NewInternalError(err.Error())
		}
		return result, nil
	}
}

func (e *Engine) notificationHandler(method string, fn *lua.LFunction) dispatch.NotificationHandler {
	return func(ctx context.Context, params anyval.Value) error {
		if _, err := e.call(fn, params); err != nil {
			return fmt.Errorf("scripted handler for %s: %w", method, err)
		}
		return nil
	}
}

// call invokes a Lua function with converted params under the state lock.
func (e *Engine) call(fn *lua.LFunction, params anyval.Value) (anyval.Value, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return anyval.Value{}, ErrEngineClosed
	}

	e.state.Push(fn)
	e.state.Push(toLua(e.state, params))
	if err := e.state.PCall(1, 1, nil); err != nil {
		return anyval.Value{}, err
	}
	ret := e.state.Get(-1)
	e.state.Pop(1)
	return fromLua(ret)
}
