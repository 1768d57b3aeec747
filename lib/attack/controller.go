// Package attack implements the attack lifecycle: a controller that drives a
// candidate source against the hash oracle on its own goroutine, with pause,
// resume, and stop control, and a registry that owns the live controllers.
package attack

import (
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/cracklab-io/attacksim/enginestate"
	"github.com/cracklab-io/attacksim/lib/candidates"
	"github.com/cracklab-io/attacksim/lib/hashes"
	"github.com/cracklab-io/attacksim/lib/stats"
)

// Phase is the lifecycle state of an attack.
type Phase string

// Lifecycle phases. Completed and Stopped are terminal.
const (
	PhasePending   Phase = "pending"
	PhaseRunning   Phase = "running"
	PhasePaused    Phase = "paused"
	PhaseStopping  Phase = "stopping"
	PhaseStopped   Phase = "stopped"
	PhaseCompleted Phase = "completed"
)

const progressBuffer = 16

// Snapshot is a point-in-time view of an attack's state and counters.
type Snapshot struct {
	ID            string        `json:"id"`
	Phase         Phase         `json:"phase"`
	Attempts      uint64        `json:"attempts"`
	Elapsed       time.Duration `json:"elapsed"`
	Throughput    float64       `json:"throughput"`
	Percent       float64       `json:"percent"`
	LastCandidate string        `json:"last_candidate"`
	Recent        []string      `json:"recent"`
	Err           string        `json:"error,omitempty"`
}

// controllerConfig carries the knobs a controller needs; the registry fills it
// from its settings so controllers never read globals.
type controllerConfig struct {
	progressEvery    uint64
	progressInterval time.Duration
	recentWindow     int
	onRetire         func()
}

// Controller drives one attack on a dedicated worker goroutine. All lifecycle
// transitions go through the mutex; the worker re-checks the phase at a
// checkpoint before pulling each candidate, so pause and stop take effect at
// candidate granularity and never lose or repeat a position in the sequence.
type Controller struct {
	id        string
	algorithm hashes.Algorithm
	target    string
	source    candidates.Source
	space     *big.Int
	tracker   *stats.Tracker
	cfg       controllerConfig

	mu     sync.Mutex
	cond   *sync.Cond
	phase  Phase
	last   string
	recent []string
	runErr error

	progress chan ProgressEvent
	terminal chan TerminalEvent
	done     chan struct{}
}

func newController(id string, algo hashes.Algorithm, targetDigest string, source candidates.Source, cfg controllerConfig) *Controller {
	c := &Controller{
		id:        id,
		algorithm: algo,
		target:    targetDigest,
		source:    source,
		tracker:   stats.NewTracker(),
		cfg:       cfg,
		phase:     PhasePending,
		progress:  make(chan ProgressEvent, progressBuffer),
		terminal:  make(chan TerminalEvent, 1),
		done:      make(chan struct{}),
	}

	c.cond = sync.NewCond(&c.mu)

	if sizer, ok := source.(candidates.SpaceSizer); ok {
		c.space = sizer.SpaceSize()
	}

	return c
}

// ID returns the attack's registry identifier.
func (c *Controller) ID() string { return c.id }

// Algorithm returns the hash algorithm the attack matches against.
func (c *Controller) Algorithm() hashes.Algorithm { return c.algorithm }

// SpaceSize returns the total search space, or nil when unknown.
func (c *Controller) SpaceSize() *big.Int { return c.space }

// Progress returns the best-effort progress event stream.
func (c *Controller) Progress() <-chan ProgressEvent { return c.progress }

// Terminal returns the channel carrying the single terminal event.
func (c *Controller) Terminal() <-chan TerminalEvent { return c.terminal }

// Done returns a channel closed after the terminal event is buffered and the
// attack has retired from its registry.
func (c *Controller) Done() <-chan struct{} { return c.done }

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.phase
}

// Snapshot returns the attack's current counters and recent candidates.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	phase := c.phase
	last := c.last
	recent := make([]string, len(c.recent))
	copy(recent, c.recent)

	errText := ""
	if c.runErr != nil {
		errText = c.runErr.Error()
	}
	c.mu.Unlock()

	attempts := c.tracker.Attempts()

	return Snapshot{
		ID:            c.id,
		Phase:         phase,
		Attempts:      attempts,
		Elapsed:       c.tracker.Elapsed(),
		Throughput:    c.tracker.Throughput(),
		Percent:       stats.Percent(attempts, c.space),
		LastCandidate: last,
		Recent:        recent,
		Err:           errText,
	}
}

// start transitions the attack to running and launches the worker goroutine.
func (c *Controller) start() {
	c.mu.Lock()
	c.phase = PhaseRunning
	c.mu.Unlock()

	go c.run()
}

// Pause suspends candidate generation at the next checkpoint. Attempts made
// before the pause are retained; resuming continues from the same position.
func (c *Controller) Pause() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.phase {
	case PhaseRunning:
		c.phase = PhasePaused
		return nil
	case PhasePaused:
		return nil
	default:
		return fmt.Errorf("%w: %s is %s", ErrAttackAlreadyTerminal, c.id, c.phase)
	}
}

// Resume continues a paused attack from its exact pause position.
func (c *Controller) Resume() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.phase {
	case PhasePaused:
		c.phase = PhaseRunning
		c.cond.Broadcast()

		return nil
	case PhaseRunning:
		return nil
	default:
		return fmt.Errorf("%w: %s is %s", ErrAttackAlreadyTerminal, c.id, c.phase)
	}
}

// Stop requests termination. The worker observes the request at its next
// checkpoint; no attempts are counted after that point. Stop returns
// immediately, use Done to wait for the terminal event.
func (c *Controller) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.phase {
	case PhaseRunning, PhasePaused, PhasePending:
		c.phase = PhaseStopping
		c.cond.Broadcast()

		return nil
	case PhaseStopping:
		return nil
	default:
		return fmt.Errorf("%w: %s is %s", ErrAttackAlreadyTerminal, c.id, c.phase)
	}
}

// checkpoint blocks while the attack is paused and reports whether the worker
// may pull another candidate.
func (c *Controller) checkpoint() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for c.phase == PhasePaused {
		c.cond.Wait()
	}

	return c.phase == PhaseRunning
}

func (c *Controller) run() {
	defer func() {
		if r := recover(); r != nil {
			enginestate.ErrorLogger.Error("Attack worker panicked", "attack_id", c.id, "panic", r)
			c.finish(OutcomeStopped, "", fmt.Errorf("attack worker panicked: %v", r))
		}
	}()

	c.tracker.Start()

	lastEmit := time.Now()

	for {
		if !c.checkpoint() {
			c.finish(OutcomeStopped, "", nil)

			return
		}

		candidate, ok := c.source.Next()
		if !ok {
			c.finish(OutcomeExhausted, "", nil)

			return
		}

		attempts := c.tracker.Increment()
		c.recordCandidate(candidate)

		if enginestate.State.ExtraDebugging {
			enginestate.Logger.Debug("Tried candidate", "attack_id", c.id, "candidate", candidate, "attempts", attempts)
		}

		if hashes.Matches(candidate, c.target, c.algorithm) {
			c.finish(OutcomeFound, candidate, nil)

			return
		}

		c.maybeEmitProgress(attempts, candidate, &lastEmit)
	}
}

func (c *Controller) recordCandidate(candidate string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.last = candidate

	if c.cfg.recentWindow <= 0 {
		return
	}

	c.recent = append(c.recent, candidate)
	if len(c.recent) > c.cfg.recentWindow {
		c.recent = c.recent[len(c.recent)-c.cfg.recentWindow:]
	}
}

// maybeEmitProgress sends a progress event when either the attempt-count or
// wall-clock threshold is crossed. The send never blocks; a slow or absent
// consumer just misses events.
func (c *Controller) maybeEmitProgress(attempts uint64, candidate string, lastEmit *time.Time) {
	countDue := c.cfg.progressEvery > 0 && attempts%c.cfg.progressEvery == 0
	timeDue := c.cfg.progressInterval > 0 && time.Since(*lastEmit) >= c.cfg.progressInterval

	if !countDue && !timeDue {
		return
	}

	*lastEmit = time.Now()

	event := ProgressEvent{
		AttackID:      c.id,
		Attempts:      attempts,
		LastCandidate: candidate,
		Percent:       stats.Percent(attempts, c.space),
	}

	select {
	case c.progress <- event:
	default:
	}
}

// finish records the terminal phase, retires the attack from its registry,
// buffers the guaranteed terminal event, and closes the done channel, in that
// order. Once Done is closed the registry no longer knows the attack.
func (c *Controller) finish(outcome Outcome, password string, runErr error) {
	c.mu.Lock()

	switch outcome {
	case OutcomeFound, OutcomeExhausted:
		c.phase = PhaseCompleted
	case OutcomeStopped:
		c.phase = PhaseStopped
	}

	c.runErr = runErr
	c.mu.Unlock()

	event := TerminalEvent{
		AttackID:   c.id,
		Outcome:    outcome,
		Password:   password,
		Attempts:   c.tracker.Attempts(),
		Elapsed:    c.tracker.Elapsed(),
		Throughput: c.tracker.Throughput(),
		Resources:  stats.CaptureResources(),
	}

	if runErr != nil {
		event.Err = runErr.Error()
	}

	if c.cfg.onRetire != nil {
		c.cfg.onRetire()
	}

	c.terminal <- event
	close(c.done)

	enginestate.Logger.Info("Attack finished",
		"attack_id", c.id,
		"outcome", outcome,
		"attempts", event.Attempts,
		"elapsed", event.Elapsed,
	)
}
