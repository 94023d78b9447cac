// Package trackkit is a client-and-edge analytics SDK for web
// applications: it detects bots, tracks visitor sessions, and collects Web
// Vitals performance data, delivering everything to a remote ingestion
// endpoint fire-and-forget.
//
// One Tracker instance owns one visitor runtime. The hosting application
// feeds signals in and the engine decides what to emit and when:
//
//	tracker := trackkit.New(cfg,
//		trackkit.WithProps(edge.FromRequest(r)),
//		trackkit.WithDurableStore(redisStore),
//		trackkit.WithLogger(log),
//	)
//	defer tracker.Close()
//
//	tracker.Page(ctx, "/pricing") // mount or route change
//	tracker.Activity()            // genuine user interaction, throttled
//	tracker.SetVisible(false)     // tab hidden: heartbeats stop immediately
//	tracker.Vitals(ctx, vitals.Metric{Name: vitals.LCP, Value: 1830})
//
// # Sessions and heartbeats
//
// A session closes after 30 minutes of inactivity; only genuine
// interaction moves its clock. While a session is active and the tab
// visible, the tracker emits heartbeat events on a backoff ladder (15s up
// to 30m) that resets to its minimum on fresh activity. See pkg/session
// and pkg/heartbeat for the lifecycle details.
//
// # Failure semantics
//
// Tracking never throws into the host: outside production the tracker is
// inert, bot clients are reported once and then ignored, and every
// storage or delivery failure is logged and swallowed.
//
// Known limitation: two runtimes sharing a durable store coordinate
// nothing beyond the visitor id — concurrent sessions for the same
// visitor are independent, exactly like two browser tabs.
package trackkit
