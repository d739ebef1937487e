package profile

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// CheckState is the advisory availability state of a username under edit.
type CheckState int

const (
	// StateIdle means no check is pending: the value is empty, equals
	// the confirmed username, or no input has arrived yet.
	StateIdle CheckState = iota
	// StateChecking means the debounce window elapsed and a lookup is
	// in flight.
	StateChecking
	// StateAvailable means the last settled lookup found no profile
	// holding the value.
	StateAvailable
	// StateTaken means the last settled lookup found the value in use.
	StateTaken
)

func (s CheckState) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAvailable:
		return "available"
	case StateTaken:
		return "taken"
	default:
		return "idle"
	}
}

type usernameLookup interface {
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// Checker debounces username availability lookups for one account.
//
// Every Observe restarts the quiescence timer and bumps a generation
// counter; a lookup result is applied only while its generation is
// still current, so a settled response for an abandoned value can
// never overwrite the state for a newer one.
type Checker struct {
	log     *slog.Logger
	lookup  usernameLookup
	delay   time.Duration
	timeout time.Duration

	mu         sync.Mutex
	state      CheckState
	confirmed  string
	generation uint64
	timer      *time.Timer
}

// NewChecker creates a checker for one account. confirmed is the
// account's current username; observing it never triggers a lookup.
func NewChecker(logger *slog.Logger, lookup usernameLookup, confirmed string, delay, timeout time.Duration) *Checker {
	return &Checker{
		log:       logger,
		lookup:    lookup,
		delay:     delay,
		timeout:   timeout,
		confirmed: confirmed,
	}
}

// Observe feeds one input change. The confirmed username and the empty
// string settle to Idle immediately and cancel any pending check;
// anything else restarts the debounce timer.
func (c *Checker) Observe(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	if value == "" || value == c.confirmed {
		c.state = StateIdle
		return
	}

	c.state = StateIdle
	gen := c.generation
	c.timer = time.AfterFunc(c.delay, func() {
		c.check(gen, value)
	})
}

// check runs after the debounce window. It rechecks the generation on
// both sides of the lookup: once before spending a query on a value
// already superseded, once before applying the result.
func (c *Checker) check(gen uint64, value string) {
	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return
	}
	c.state = StateChecking
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	exists, err := c.lookup.ExistsByUsername(ctx, value)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return
	}

	if err != nil {
		c.log.Warn("username lookup failed",
			slog.String("error", err.Error()))
		c.state = StateIdle
		return
	}

	if exists {
		c.state = StateTaken
	} else {
		c.state = StateAvailable
	}
}

// State returns the current availability state.
func (c *Checker) State() CheckState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Confirmed returns the current skip sentinel.
func (c *Checker) Confirmed() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.confirmed
}

// SetConfirmed installs a new skip sentinel after a committed save and
// settles the checker back to Idle, invalidating any in-flight lookup.
func (c *Checker) SetConfirmed(username string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.confirmed = username
	c.generation++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.state = StateIdle
}

// Stop cancels any pending timer. The checker must not be used after.
func (c *Checker) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
