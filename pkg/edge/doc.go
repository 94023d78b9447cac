// Package edge extracts tracker props from inbound HTTP requests: client
// IP behind the usual proxy chains, the geo headers edge platforms inject
// (x-vercel-ip-* with cf-* fallbacks), deployment context, and the raw
// user agent.
//
// Middleware stores the extracted props in the request context so handlers
// deeper in the chain reach them through FromContext without re-parsing
// headers.
//
// # Usage
//
//	import "github.com/dmitrymomot/trackkit/pkg/edge"
//
//	r := chi.NewRouter()
//	r.Use(edge.Middleware)
//	r.Get("/{path}", func(w http.ResponseWriter, req *http.Request) {
//		props := edge.FromContext(req.Context())
//		// feed props into the tracker
//	})
package edge
