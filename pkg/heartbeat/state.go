package heartbeat

// State is the scheduler's lifecycle position. Exactly one state holds at
// any time, replacing the independent enabled/active/timer flags that tend
// to drift into incoherent combinations.
type State int

const (
	// StateIdle means no timer is pending but the scheduler remains
	// enabled: fresh activity restarts the loop. This is both the initial
	// state and the soft-pause state after prolonged inactivity.
	StateIdle State = iota

	// StateScheduled means a single timer is pending; scheduling again is
	// a no-op until it fires.
	StateScheduled

	// StatePaused means the tab is hidden: the pending timer has been
	// cancelled and nothing fires until Resume.
	StatePaused

	// StateTerminated is absorbing. Entered on hard session timeout or
	// Close; no transition leaves it.
	StateTerminated
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScheduled:
		return "scheduled"
	case StatePaused:
		return "paused"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
