package domain

import (
	"fmt"
	"time"
)

type State string

const (
	StateNotStarted State = "not_started"
	StateReady      State = "ready"
	StateInProgress State = "in_progress"
	StateFailed     State = "failed"
	StatePassed     State = "passed"
)

// Backend attempt statuses.
const (
	StatusApproved = "aprobado"
	StatusFailed   = "fallado"
)

// Gate is the single source of truth for whether the evaluation can be
// taken. Cooldown is the local countdown, in seconds, still blocking retry.
type Gate struct {
	State       State
	Cooldown    int
	RetryLocked bool
	Message     string
}

// Derive computes the gate from the completion flag and the latest attempt
// status. A passed attempt wins over everything else.
func Derive(allCompleted bool, status string) Gate {
	switch {
	case status == StatusApproved:
		return Gate{State: StatePassed}
	case !allCompleted:
		return Gate{State: StateNotStarted}
	case status == StatusFailed:
		return Gate{State: StateFailed}
	}
	return Gate{State: StateReady}
}

func (g Gate) Begin() (Gate, error) {
	switch g.State {
	case StateReady:
		return Gate{State: StateInProgress}, nil
	case StateInProgress:
		return g, nil
	}
	return g, fmt.Errorf("cannot begin evaluation from %s", g.State)
}

// Grant moves a failed gate back into the evaluation after the backend
// accepted a retry.
func (g Gate) Grant(message string) (Gate, error) {
	if g.State != StateFailed {
		return g, fmt.Errorf("cannot retry from %s", g.State)
	}
	return Gate{State: StateInProgress, Message: message}, nil
}

func (g Gate) Complete(passed bool) (Gate, error) {
	if g.State != StateInProgress && g.State != StateReady {
		return g, fmt.Errorf("cannot complete evaluation from %s", g.State)
	}
	if passed {
		return Gate{State: StatePassed}, nil
	}
	return Gate{State: StateFailed}, nil
}

func (g Gate) ArmCooldown(seconds int, message string) Gate {
	if g.State != StateFailed || seconds <= 0 {
		return g
	}
	g.Cooldown = seconds
	g.Message = message
	return g
}

func (g Gate) LockRetry(message string) Gate {
	if g.State != StateFailed {
		return g
	}
	g.RetryLocked = true
	g.Cooldown = 0
	g.Message = message
	return g
}

func (g Gate) CanRetry() bool {
	return g.State == StateFailed && !g.RetryLocked && g.Cooldown <= 0
}

// CooldownSeconds rounds a remaining duration up to whole seconds.
func CooldownSeconds(remaining time.Duration) int {
	if remaining <= 0 {
		return 0
	}
	return int((remaining + time.Second - 1) / time.Second)
}

// FormatCountdown renders seconds as m:ss.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
