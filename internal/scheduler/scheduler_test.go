package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewValidation(t *testing.T) {
	if _, err := New(0, func(context.Context) {}); err == nil {
		t.Error("zero interval accepted")
	}
	if _, err := New(time.Second, nil); err == nil {
		t.Error("nil tick function accepted")
	}
}

func TestSchedulerTicks(t *testing.T) {
	var ticks atomic.Int32
	s, err := New(10*time.Millisecond, func(context.Context) {
		ticks.Add(1)
	})
	if err != nil {
		t.Fatal(err)
	}

	if !s.Start() {
		t.Fatal("Start returned false on first call")
	}
	if s.Start() {
		t.Error("Start returned true while already running")
	}
	if !s.IsRunning() {
		t.Error("IsRunning = false after Start")
	}

	deadline := time.After(time.Second)
	for ticks.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("only %d ticks before deadline", ticks.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}

	if !s.Stop() {
		t.Error("Stop returned false while running")
	}
	if s.Stop() {
		t.Error("Stop returned true after stopping")
	}
	if s.IsRunning() {
		t.Error("IsRunning = true after Stop")
	}
}

func TestSchedulerSurvivesPanickingTick(t *testing.T) {
	var ticks atomic.Int32
	s, err := New(10*time.Millisecond, func(context.Context) {
		ticks.Add(1)
		panic("tick exploded")
	})
	if err != nil {
		t.Fatal(err)
	}

	s.Start()
	defer s.Stop()

	deadline := time.After(time.Second)
	for ticks.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("scheduler died after panic, ticks = %d", ticks.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestSchedulerRestart(t *testing.T) {
	var ticks atomic.Int32
	s, err := New(10*time.Millisecond, func(context.Context) {
		ticks.Add(1)
	})
	if err != nil {
		t.Fatal(err)
	}

	s.Start()
	s.Stop()

	if !s.Start() {
		t.Fatal("Start returned false after a stop")
	}
	defer s.Stop()

	before := ticks.Load()
	deadline := time.After(time.Second)
	for ticks.Load() == before {
		select {
		case <-deadline:
			t.Fatal("no ticks after restart")
		case <-time.After(5 * time.Millisecond):
		}
	}
}
