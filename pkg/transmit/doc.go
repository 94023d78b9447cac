// Package transmit delivers event records to the remote ingestion
// endpoint, fire-and-forget.
//
// One delivery is one time-bounded POST: no retries, no queueing, and no
// error ever surfaces to the tracking path. Failures are classified —
// timeout, network, status, config — and logged so an operator can tell a
// slow endpoint from a broken deployment, but the hosting application
// never sees them.
//
// A transmitter built on an invalid endpoint comes up disabled rather than
// failing: every Send is a no-op and the misconfiguration is logged
// exactly once per instance, keeping a bad deploy from spamming logs.
//
// # Usage
//
//	import "github.com/dmitrymomot/trackkit/pkg/transmit"
//
//	tx := transmit.New(transmit.Config{
//		Endpoint:    "https://ingest.example.com",
//		SendTimeout: 15 * time.Second,
//	}, transmit.WithLogger(log))
//	defer tx.Close()
//
//	go tx.Send(ctx, transmit.CategoryEvent, event)
package transmit
