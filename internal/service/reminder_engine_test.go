package service

import (
	"testing"
	"time"

	"studyplanner/internal/model"
)

func urgentFixture() *stubPlanner {
	p := newStubPlanner()
	p.tasks = []model.Task{{
		ID:       "t1",
		Title:    "lab report",
		Priority: model.PriorityHigh,
		Status:   model.StatusPending,
		Deadline: localStamp(checkNow.Add(2 * time.Hour)),
	}}
	return p
}

func TestEngineDisabledTickEmitsNothing(t *testing.T) {
	p := urgentFixture()
	p.settings.Reminders = false
	sink := &captureSink{}
	engine := NewReminderEngine(p, sink, time.Second, nil)

	if events := engine.runTick(checkNow); events != nil {
		t.Errorf("disabled tick returned events: %+v", events)
	}
	if len(sink.events) != 0 {
		t.Errorf("disabled tick notified the sink: %+v", sink.events)
	}
}

func TestEngineSettingsReadEveryTick(t *testing.T) {
	p := urgentFixture()
	sink := &captureSink{}
	engine := NewReminderEngine(p, sink, time.Second, nil)

	if events := engine.runTick(checkNow); len(events) != 1 {
		t.Fatalf("armed tick events = %d, want 1", len(events))
	}

	// Toggle off: takes effect on the very next tick.
	p.settings.Reminders = false
	if events := engine.runTick(checkNow.Add(30 * time.Second)); len(events) != 0 {
		t.Errorf("tick after disabling emitted %d events", len(events))
	}

	// Toggle back on: the re-arming tick checks immediately.
	p.settings.Reminders = true
	if events := engine.runTick(checkNow.Add(time.Minute)); len(events) != 1 {
		t.Errorf("re-armed tick events = %d, want 1", len(events))
	}
}

func TestEngineRepeatsEventsEveryTick(t *testing.T) {
	p := urgentFixture()
	sink := &captureSink{}
	engine := NewReminderEngine(p, sink, time.Second, nil)

	for tick := 0; tick < 3; tick++ {
		engine.runTick(checkNow.Add(time.Duration(tick) * 30 * time.Second))
	}
	if len(sink.events) != 3 {
		t.Errorf("sink received %d events, want one per tick", len(sink.events))
	}
}

func TestEngineStartStop(t *testing.T) {
	p := newStubPlanner()
	sink := &captureSink{}
	engine := NewReminderEngine(p, sink, time.Hour, nil)

	if err := engine.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	// Stop must always return; a hung drain here means an orphaned
	// timer would outlive its owner.
	done := make(chan struct{})
	go func() {
		engine.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("engine did not stop")
	}
}
