package service

import (
	"context"
	"sync"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"go.uber.org/zap"
)

type scheduler struct {
	dm         contract.DataManager
	reconciler *Reconciler
	effects    *effects
	interval   time.Duration
	now        func() time.Time
	log        *zap.Logger

	mu       sync.Mutex
	stopChan chan struct{}
	done     chan struct{}
	running  bool
}

func newScheduler(dm contract.DataManager, reconciler *Reconciler, fx *effects, interval time.Duration, now func() time.Time, log *zap.Logger) *scheduler {
	return &scheduler{
		dm:         dm,
		reconciler: reconciler,
		effects:    fx,
		interval:   interval,
		now:        now,
		log:        log,
	}
}

func (s *scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.stopChan = make(chan struct{})
	s.done = make(chan struct{})

	s.log.Info("scheduler starting", zap.Duration("interval", s.interval))
	go s.mainLoop(s.stopChan, s.done)
}

// Stop waits for an in-flight sweep to finish
func (s *scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.log.Info("scheduler stopping")
	close(s.stopChan)
	s.running = false
	done := s.done
	s.mu.Unlock()

	<-done
}

func (s *scheduler) mainLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// catch up on anything that expired while the process was down
	s.sweep(ctx)

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-stop:
			return
		}
	}
}

// sweep runs one reconciliation tick and executes its intents. Ticks never
// overlap since the loop only reads the ticker after a sweep returns.
func (s *scheduler) sweep(ctx context.Context) {
	teamIDs, err := s.dm.Organization().ListTeamIDs(ctx)
	if err != nil {
		s.log.Error("failed to list organizations", zap.Error(err))
		return
	}
	if len(teamIDs) == 0 {
		return
	}

	intents := s.reconciler.Tick(ctx, teamIDs, s.now())
	if len(intents) == 0 {
		return
	}

	failed := s.effects.Execute(ctx, intents)
	s.log.Debug("sweep completed",
		zap.Int("organizations", len(teamIDs)),
		zap.Int("intents", len(intents)),
		zap.Int("failed", failed),
	)
}
