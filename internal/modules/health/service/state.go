package service

import (
	"sync/atomic"
	"time"
)

// State состояние цикла опроса для health эндпоинтов.
// Пишет горутина runner, читают HTTP хендлеры.
type State struct {
	ready     atomic.Bool
	startedAt time.Time

	symbols       atomic.Int64
	signals       atomic.Int64
	lastCycleUnix atomic.Int64 // unix seconds
}

func NewState() *State {
	s := &State{startedAt: time.Now()}
	s.ready.Store(false)
	return s
}

func (s *State) Ready() bool { return s.ready.Load() }

func (s *State) SetSymbols(n int) { s.symbols.Store(int64(n)) }
func (s *State) Symbols() int     { return int(s.symbols.Load()) }

func (s *State) AddSignal()     { s.signals.Add(1) }
func (s *State) Signals() int64 { return s.signals.Load() }

// TouchCycle отмечает завершённый цикл, после первого сервис считается готовым.
func (s *State) TouchCycle(t time.Time) {
	s.lastCycleUnix.Store(t.Unix())
	s.ready.Store(true)
}

func (s *State) LastCycle() time.Time {
	u := s.lastCycleUnix.Load()
	if u == 0 {
		return time.Time{}
	}
	return time.Unix(u, 0)
}

func (s *State) Uptime() time.Duration { return time.Since(s.startedAt) }
