package service

import (
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
)

// Options tunes the lifecycle engine. Zero values fall back to the defaults in the domain package.
type Options struct {
	CheckInterval     time.Duration
	ReminderWindow    time.Duration
	SideEffectTimeout time.Duration
	SweepConcurrency  int

	// Now is the clock used for every transition
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.CheckInterval <= 0 {
		o.CheckInterval = domain.CheckInterval
	}
	if o.ReminderWindow <= 0 {
		o.ReminderWindow = domain.ReminderWindow
	}
	if o.SideEffectTimeout <= 0 {
		o.SideEffectTimeout = domain.SideEffectTimeout
	}
	if o.SweepConcurrency < 1 {
		o.SweepConcurrency = 1
	}
	if o.Now == nil {
		o.Now = func() time.Time { return time.Now().UTC() }
	}
	return o
}
