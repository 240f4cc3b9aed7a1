package form

import "time"

// Scheduler abstracts timer creation so the widget retry machinery can be
// driven without real timers in tests.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type Timer interface {
	Stop() bool
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// NewScheduler returns a Scheduler backed by real timers.
func NewScheduler() Scheduler {
	return realScheduler{}
}
