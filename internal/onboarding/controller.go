package onboarding

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Controller runs the step transitions of one session. Its methods are meant
// for a single caller; background writes and the completion redirect only
// read the session under the lock.
type Controller struct {
	mu         sync.Mutex
	session    Session
	backend    Backend
	navigator  Navigator
	syncer     *Synchronizer
	opts       options
	navigated  bool
	redirectAt *time.Timer
	log        *zap.SugaredLogger
}

func newController(session Session, backend Backend, navigator Navigator, opts options) *Controller {
	return &Controller{
		session:   session,
		backend:   backend,
		navigator: navigator,
		syncer:    NewSynchronizer(backend, opts.persistTimeout),
		opts:      opts,
		log:       zap.S().Named("onboarding"),
	}
}

// State returns a copy of the session.
func (c *Controller) State() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copySession()
}

func (c *Controller) copySession() Session {
	s := c.session
	s.ProfileData = c.session.ProfileData.Clone()
	if c.session.CandidateID != nil {
		id := *c.session.CandidateID
		s.CandidateID = &id
	}
	return s
}

// Synchronizer exposes the progress writer, mostly to wait for it.
func (c *Controller) Synchronizer() *Synchronizer {
	return c.syncer
}

// SkipOffered reports whether the skip action should be shown. The engine
// itself accepts Skip on any step.
func (c *Controller) SkipOffered() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.CurrentStep >= StepContact && c.session.CurrentStep <= StepResume
}

// GoToStep moves to step n, forwards or backwards, and saves progress in
// the background.
func (c *Controller) GoToStep(n Step) error {
	if !n.Navigable() {
		return ErrInvalidStep
	}

	c.mu.Lock()
	if err := c.transitionAllowedLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	c.session.CurrentStep = n
	if c.session.Status == StatusPending && n > StepContact {
		c.session.Status = StatusInProgress
	}
	snap, status := c.snapshotLocked()
	c.mu.Unlock()

	c.syncer.Persist(snap, status)
	return nil
}

// UpdateFields merges partial into the collected answers. Nothing is saved
// until the next step change or Flush.
func (c *Controller) UpdateFields(partial ProfileData) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.ProfileData = c.session.ProfileData.Merge(partial)
}

// Flush saves the current progress in the background. It reports whether a
// write was started.
func (c *Controller) Flush() bool {
	snap, status, ok := c.flushSource()
	if !ok {
		return false
	}
	return c.syncer.Persist(snap, status)
}

// AutoFlush saves progress periodically until ctx is done.
func (c *Controller) AutoFlush(ctx context.Context, interval time.Duration) {
	c.syncer.AutoFlush(ctx, interval, c.flushSource)
}

func (c *Controller) flushSource() (Snapshot, Status, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.navigated {
		return Snapshot{}, "", false
	}
	snap, status := c.snapshotLocked()
	return snap, status, true
}

func (c *Controller) snapshotLocked() (Snapshot, Status) {
	return newSnapshot(c.session, c.opts.device, c.opts.now()), c.session.Status
}

// Submit writes the collected answers and marks onboarding completed. Both
// writes run concurrently and both must succeed. On success the session
// moves to the summary step and a redirect is scheduled.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if err := c.transitionAllowedLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	if c.session.CandidateID == nil {
		c.session.Error = ErrNoProfile.Error()
		c.mu.Unlock()
		return ErrNoProfile
	}
	c.session.Submitting = true
	c.session.Error = ""
	candidateID := *c.session.CandidateID
	fields := c.session.ProfileData.Writable()
	c.mu.Unlock()

	completed := StatusCompleted
	completedAt := c.opts.now().UTC()

	var g errgroup.Group
	if len(fields) > 0 {
		g.Go(func() error {
			_, err := c.backend.UpdateProfile(ctx, candidateID, fields)
			return err
		})
	}
	g.Go(func() error {
		_, err := c.backend.UpdateAccount(ctx, AccountPatch{
			OnboardingStatus:      &completed,
			OnboardingCompletedAt: &completedAt,
		})
		return err
	})
	err := g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.Submitting = false
	if err != nil {
		c.session.Error = err.Error()
		c.log.Errorw("failed to submit onboarding", "candidate", candidateID, "error", err)
		return err
	}

	c.session.CurrentStep = StepComplete
	c.session.Status = StatusCompleted
	c.log.Infow("onboarding completed", "candidate", candidateID, "fields", len(fields))
	c.redirectAt = time.AfterFunc(c.opts.completionDwell, func() {
		c.hardNavigate(c.opts.completionURL)
	})
	return nil
}

// Skip marks onboarding skipped and leaves the wizard. The summary step is
// never shown.
func (c *Controller) Skip(ctx context.Context) error {
	c.mu.Lock()
	if err := c.transitionAllowedLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	c.session.Submitting = true
	c.session.Error = ""
	c.mu.Unlock()

	skipped := StatusSkipped
	_, err := c.backend.UpdateAccount(ctx, AccountPatch{OnboardingStatus: &skipped})

	c.mu.Lock()
	c.session.Submitting = false
	if err != nil {
		c.session.Error = err.Error()
		c.mu.Unlock()
		c.log.Errorw("failed to skip onboarding", "error", err)
		return err
	}
	c.session.Status = StatusSkipped
	c.mu.Unlock()

	c.log.Info("onboarding skipped")
	c.hardNavigate(c.opts.skipDestination)
	return nil
}

// transitionAllowedLocked refuses transitions after a hard navigation, once
// the status is terminal, and while a submit or skip is in flight.
func (c *Controller) transitionAllowedLocked() error {
	switch {
	case c.navigated:
		return ErrNavigatedAway
	case c.session.Status.Terminal():
		return ErrFinished
	case c.session.Submitting:
		return ErrSubmitting
	}
	return nil
}

// hardNavigate leaves the wizard at most once per session.
func (c *Controller) hardNavigate(dest string) {
	c.mu.Lock()
	if c.navigated {
		c.mu.Unlock()
		return
	}
	c.navigated = true
	c.mu.Unlock()

	c.navigator.Navigate(dest)
}

// Close cancels a pending completion redirect and waits for background
// writes to finish.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.redirectAt != nil {
		c.redirectAt.Stop()
	}
	c.mu.Unlock()
	c.syncer.Wait()
}
