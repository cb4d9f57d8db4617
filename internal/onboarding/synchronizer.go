package onboarding

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lthibault/jitterbug/v2"
	"go.uber.org/zap"
)

const defaultPersistTimeout = 10 * time.Second

// Synchronizer writes snapshots to the account record in the background.
// At most one write is in flight; a Persist call made while busy is dropped
// and the next transition carries the newer state.
type Synchronizer struct {
	backend Backend
	timeout time.Duration
	busy    atomic.Bool
	wg      sync.WaitGroup
	onError func(error)
	log     *zap.SugaredLogger
}

func NewSynchronizer(backend Backend, timeout time.Duration) *Synchronizer {
	if timeout <= 0 {
		timeout = defaultPersistTimeout
	}
	return &Synchronizer{
		backend: backend,
		timeout: timeout,
		log:     zap.S().Named("onboarding_sync"),
	}
}

// OnError registers a hook called with every failed write.
func (s *Synchronizer) OnError(fn func(error)) {
	s.onError = fn
}

// Persist starts writing snap and returns immediately. It reports whether a
// write was started. The status is sent only while the wizard is in progress
// so a late write can never move the account out of a terminal status.
func (s *Synchronizer) Persist(snap Snapshot, status Status) bool {
	payload, err := json.Marshal(snap)
	if err != nil {
		s.log.Errorw("failed to encode snapshot", "error", err)
		return false
	}

	if !s.busy.CompareAndSwap(false, true) {
		s.log.Debugw("write in flight, snapshot dropped", "step", snap.CurrentStep)
		return false
	}

	patch := AccountPatch{OnboardingMetadata: payload}
	if status == StatusInProgress {
		patch.OnboardingStatus = &status
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.busy.Store(false)

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if _, err := s.backend.UpdateAccount(ctx, patch); err != nil {
			s.log.Warnw("failed to save onboarding progress", "step", snap.CurrentStep, "error", err)
			if s.onError != nil {
				s.onError(err)
			}
			return
		}
		s.log.Debugw("onboarding progress saved", "step", snap.CurrentStep)
	}()

	return true
}

// Busy reports whether a write is in flight.
func (s *Synchronizer) Busy() bool {
	return s.busy.Load()
}

// Wait blocks until every started write and auto flush loop has returned.
func (s *Synchronizer) Wait() {
	s.wg.Wait()
}

// AutoFlush persists the snapshot returned by source on a jittered interval
// until ctx is done. source returns false when there is nothing to write.
func (s *Synchronizer) AutoFlush(ctx context.Context, interval time.Duration, source func() (Snapshot, Status, bool)) {
	ticker := jitterbug.New(interval, &jitterbug.Norm{Stdev: interval / 10})

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if snap, status, ok := source(); ok {
					s.Persist(snap, status)
				}
			}
		}
	}()
}
