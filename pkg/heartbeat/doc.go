// Package heartbeat runs the self-rescheduling liveness loop that
// estimates engaged time for an active session.
//
// The loop emits a heartbeat event on every tick while the session is
// active and the tab visible, backing off through a fixed interval ladder
// (15s, 1m, 5m, 15m, 30m by default) as the session idles. Two idle
// thresholds bound the loop: past the soft limit (2 minutes) the loop
// pauses but stays restartable; past the hard limit (30 minutes, matching
// the session timeout) it terminates permanently, so heartbeats can never
// keep a dead session alive.
//
// The backoff trades timeliness for event volume on idle tabs; fresh
// activity snaps the cadence back to its minimum immediately.
//
// # States
//
// The scheduler's lifecycle is a single tagged state — Idle, Scheduled,
// Paused, Terminated — with transitions:
//
//	Schedule: Idle -> Scheduled (no-op elsewhere; one timer at a time)
//	Poke:     Idle -> Scheduled, resets the ladder; Scheduled pulls the
//	          pending tick in to the minimum interval
//	Pause:    any non-terminal -> Paused, cancelling the pending timer
//	Resume:   Paused -> Scheduled with the ladder reset
//	tick:     Scheduled -> Idle past the soft limit,
//	          Scheduled -> Terminated past the hard limit
//	Close:    any -> Terminated
//
// Terminated is absorbing.
//
// # Usage
//
//	import "github.com/dmitrymomot/trackkit/pkg/heartbeat"
//
//	scheduler := heartbeat.New(sessionIdle, emitHeartbeat,
//		heartbeat.WithSoftIdleTimeout(2*time.Minute),
//		heartbeat.WithHardTimeout(30*time.Minute),
//	)
//	scheduler.Schedule()
//	defer scheduler.Close()
package heartbeat
