// Package environment defines the runtime environment values the SDK
// recognizes and helpers for carrying an environment through a
// context.Context.
//
// Tracking is only ever active in Production; Parse deliberately maps
// anything it does not recognize to Development so a typo in configuration
// fails closed (no events leave the process) rather than open.
//
// # Usage
//
//	import "github.com/dmitrymomot/trackkit/pkg/environment"
//
//	env := environment.Parse(os.Getenv("TRACK_ENVIRONMENT"))
//	if env == environment.Production {
//	    // start tracking
//	}
//
// The context helpers exist for hosts that resolve the environment once per
// process and want downstream code to read it without plumbing a parameter:
//
//	ctx = environment.WithContext(ctx, "production")
//	environment.IsProduction(ctx) // true
package environment
