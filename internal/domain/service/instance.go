package service

import (
	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"go.uber.org/zap"
)

type Instance struct {
	Staff      *staffService
	Reconciler *Reconciler
	Scheduler  *scheduler
}

func NewInstance(dm contract.DataManager, roles contract.RoleSync, notifier contract.Notifier, log *zap.Logger, opts Options) *Instance {
	opts = opts.withDefaults()

	fx := newEffects(roles, notifier, opts.SideEffectTimeout, log.Named("effects"))
	reconciler := newReconciler(dm, opts.ReminderWindow, opts.SweepConcurrency, log.Named("reconciler"))

	return &Instance{
		Staff:      newStaff(dm, roles, fx, NewCooldowns(), opts.Now, log.Named("staff")),
		Reconciler: reconciler,
		Scheduler:  newScheduler(dm, reconciler, fx, opts.CheckInterval, opts.Now, log.Named("scheduler")),
	}
}
