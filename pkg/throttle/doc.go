// Package throttle bounds the rate of activity handling under rapid-fire
// interaction events.
//
// The throttle guarantees leading plus trailing execution: a burst of N
// calls within one window collapses to exactly two runs of the wrapped
// function, one at the burst's start and one at the window's end. Pure
// debouncing would drop the leading call and pure sampling could drop the
// trailing one; both would lose activity the session clock depends on.
//
// # Usage
//
//	import "github.com/dmitrymomot/trackkit/pkg/throttle"
//
//	th := throttle.New(250*time.Millisecond, tracker.onActivity)
//	defer th.Close()
//
//	// wire th.Call into click/keydown/touchstart/scroll handlers
package throttle
