package service

import (
	"time"

	"go.uber.org/zap"

	"studyplanner/internal/notify"
)

// DefaultCheckInterval is the reminder tick cadence.
const DefaultCheckInterval = 30 * time.Second

// ReminderEngine drives periodic reminder checks. It has two states,
// armed and disabled, following the reminders setting: the setting is
// read on every tick, so toggling it takes effect on the next tick
// without restarting the engine. A disabled tick emits nothing; the
// tick that observes the setting turned back on checks immediately.
type ReminderEngine struct {
	planner  PlannerView
	checker  *ReminderService
	sink     notify.Notifier
	sched    *SchedulerService
	interval time.Duration
	log      *zap.Logger
	armed    bool
}

func NewReminderEngine(planner PlannerView, sink notify.Notifier, interval time.Duration, log *zap.Logger) *ReminderEngine {
	if interval <= 0 {
		interval = DefaultCheckInterval
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ReminderEngine{
		planner:  planner,
		checker:  NewReminderService(planner),
		sink:     sink,
		sched:    NewSchedulerService(time.Local),
		interval: interval,
		log:      log,
	}
}

// Start schedules the periodic check and runs one immediately.
// Callers must pair it with Stop on every exit path so no orphaned
// timer keeps firing after the owner is gone.
func (e *ReminderEngine) Start() error {
	if _, err := e.sched.ScheduleInterval(e.interval, e.tick); err != nil {
		return err
	}
	e.sched.Start()
	e.log.Info("reminder engine started", zap.Duration("interval", e.interval))
	e.tick()
	return nil
}

// Stop halts the periodic check and waits for a running tick.
func (e *ReminderEngine) Stop() {
	e.sched.Stop()
	e.log.Info("reminder engine stopped")
}

func (e *ReminderEngine) tick() {
	e.runTick(time.Now())
}

// runTick evaluates one check cycle at the given instant and forwards
// every due event to the sink. Returns the events for inspection.
func (e *ReminderEngine) runTick(now time.Time) []notify.Event {
	if !e.planner.Settings().Reminders {
		if e.armed {
			e.armed = false
			e.log.Info("reminder engine disabled by settings")
		}
		return nil
	}
	if !e.armed {
		e.armed = true
		e.log.Info("reminder engine armed")
	}

	events := e.checker.Check(now)
	for _, event := range events {
		e.sink.Notify(event)
	}
	return events
}
