// Package api exposes the aerodex lookup engine over HTTP.
//
// The surface is deliberately thin: query parameters map directly onto the
// engine's pagination and search contracts, and responses are the engine's
// Page values serialized as JSON.
//
//	srv := api.New(lk,
//	    api.WithLogger(logger),
//	    api.WithGzip(),
//	    api.WithPrometheus(registry),
//	    api.WithRateLimit(100, 50),
//	)
//	http.ListenAndServe(":8080", srv)
//
// Numeric pagination parameters follow the engine's permissive contract:
// absent, unparsable, or out-of-range values are clamped, never rejected.
// The only request-level error is a missing q on the search endpoint,
// answered with a 400 and a structured {"error": "..."} body.
package api
