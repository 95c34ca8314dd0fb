// Package script exposes a tempo Scheduler to Lua scripts.
//
// Scripts get a global "scheduler" table:
//
//	local id = scheduler.schedule(function(elapsed) ... end, 0.5)   -- every 0.5s
//	scheduler.schedule(fn, interval, repeat, delay, paused)         -- repeat < 0 or nil: forever
//	scheduler.once(function() ... end, 2.0)
//	scheduler.pause(id); scheduler.resume(id); scheduler.unschedule(id)
//	scheduler.time_scale(0.5)                                       -- returns the current scale
//
// Errors raised by a callback are logged and do not abort the frame.
package script

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/phanxgames/tempo"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

const callbackKey = "lua"

// entry is one scheduled Lua function. Each owns its own target so it can be
// paused and removed independently.
type entry struct {
	tempo.Handle
	id int
	fn *lua.LFunction
}

// Engine wraps a single gopher-lua VM bound to a Scheduler.
// Single-goroutine access only (the goroutine driving Scheduler.Update).
type Engine struct {
	vm        *lua.LState
	log       *zap.Logger
	scheduler *tempo.Scheduler
	entries   map[int]*entry
	nextID    int
}

// NewEngine creates a Lua VM with the scheduler table installed.
func NewEngine(s *tempo.Scheduler, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		vm:        lua.NewState(),
		log:       log,
		scheduler: s,
		entries:   make(map[int]*entry),
	}
	e.vm.SetGlobal("API_VERSION", lua.LNumber(1))
	e.vm.SetGlobal("scheduler", e.vm.SetFuncs(e.vm.NewTable(), map[string]lua.LGFunction{
		"schedule":   e.luaSchedule,
		"once":       e.luaOnce,
		"unschedule": e.luaUnschedule,
		"pause":      e.luaPause,
		"resume":     e.luaResume,
		"time_scale": e.luaTimeScale,
	}))
	return e
}

// DoString runs a chunk of Lua source.
func (e *Engine) DoString(src string) error {
	if err := e.vm.DoString(src); err != nil {
		return fmt.Errorf("run lua chunk: %w", err)
	}
	return nil
}

// DoFile runs a Lua file.
func (e *Engine) DoFile(path string) error {
	if err := e.vm.DoFile(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	e.log.Debug("loaded lua script", zap.String("file", path))
	return nil
}

// LoadDir runs every .lua file in dir in name order. A missing directory is
// not an error.
func (e *Engine) LoadDir(dir string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read script dir %s: %w", dir, err)
	}
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".lua" {
			continue
		}
		if err := e.DoFile(filepath.Join(dir, f.Name())); err != nil {
			return err
		}
	}
	return nil
}

// Entries returns the number of Lua callbacks still scheduled.
func (e *Engine) Entries() int {
	e.prune()
	return len(e.entries)
}

// Close unschedules every Lua callback and closes the VM.
func (e *Engine) Close() {
	for id, ent := range e.entries {
		e.scheduler.UnscheduleAllForTarget(ent)
		delete(e.entries, id)
	}
	e.vm.Close()
}

// prune forgets entries whose timer finished on its own.
func (e *Engine) prune() {
	for id, ent := range e.entries {
		if !e.scheduler.IsScheduled(ent, callbackKey) {
			delete(e.entries, id)
		}
	}
}

func (e *Engine) add(fn *lua.LFunction, interval float64, repeat int, delay float64, paused bool) int {
	e.prune()
	e.nextID++
	ent := &entry{Handle: tempo.NewHandle(), id: e.nextID, fn: fn}
	e.entries[ent.id] = ent
	e.scheduler.Schedule(ent, callbackKey, func(elapsed float64) {
		e.call(ent, elapsed)
	}, interval, repeat, delay, paused)
	return ent.id
}

func (e *Engine) call(ent *entry, elapsed float64) {
	if err := e.vm.CallByParam(lua.P{
		Fn:      ent.fn,
		NRet:    0,
		Protect: true,
	}, lua.LNumber(elapsed)); err != nil {
		e.log.Error("lua callback error", zap.Int("id", ent.id), zap.Error(err))
	}
}

// scheduler.schedule(fn, interval [, repeat [, delay [, paused]]]) -> id
func (e *Engine) luaSchedule(L *lua.LState) int {
	fn := L.CheckFunction(1)
	interval := float64(L.OptNumber(2, 0))
	repeat := L.OptInt(3, -1)
	delay := float64(L.OptNumber(4, 0))
	paused := L.OptBool(5, false)
	if interval < 0 {
		L.ArgError(2, "interval must not be negative")
		return 0
	}
	if delay < 0 {
		L.ArgError(4, "delay must not be negative")
		return 0
	}
	if repeat < 0 {
		repeat = tempo.RepeatForever
	}
	L.Push(lua.LNumber(e.add(fn, interval, repeat, delay, paused)))
	return 1
}

// scheduler.once(fn, delay) -> id
func (e *Engine) luaOnce(L *lua.LState) int {
	fn := L.CheckFunction(1)
	delay := float64(L.OptNumber(2, 0))
	if delay < 0 {
		L.ArgError(2, "delay must not be negative")
		return 0
	}
	L.Push(lua.LNumber(e.add(fn, 0, 0, delay, false)))
	return 1
}

func (e *Engine) lookup(L *lua.LState) *entry {
	return e.entries[L.CheckInt(1)]
}

// scheduler.unschedule(id)
func (e *Engine) luaUnschedule(L *lua.LState) int {
	if ent := e.lookup(L); ent != nil {
		e.scheduler.UnscheduleAllForTarget(ent)
		delete(e.entries, ent.id)
	}
	return 0
}

// scheduler.pause(id)
func (e *Engine) luaPause(L *lua.LState) int {
	if ent := e.lookup(L); ent != nil {
		e.scheduler.PauseTarget(ent)
	}
	return 0
}

// scheduler.resume(id)
func (e *Engine) luaResume(L *lua.LState) int {
	if ent := e.lookup(L); ent != nil {
		e.scheduler.ResumeTarget(ent)
	}
	return 0
}

// scheduler.time_scale([x]) -> x
func (e *Engine) luaTimeScale(L *lua.LState) int {
	if L.GetTop() >= 1 {
		scale := float64(L.CheckNumber(1))
		if scale < 0 {
			L.ArgError(1, "time scale must not be negative")
			return 0
		}
		e.scheduler.SetTimeScale(scale)
	}
	L.Push(lua.LNumber(e.scheduler.TimeScale()))
	return 1
}
